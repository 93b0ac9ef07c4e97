package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/Eng-RSMY/vtkwrite/vtk"
)

var (
	sampleKind string
	sampleOut  string
	sampleOpen bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a demo dataset and write it as a VTK file",
	Long: `Sample writes a small synthetic dataset of the requested kind: a Gaussian
ridge for structured points, a warped sheet with a velocity field for the
grid kinds, and a helix polyline for polydata. Useful for smoke-testing a
viewer pipeline without real data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSample(cmd, sampleKind, sampleOut, sampleOpen)
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleKind, "kind", "k", "structured_points", "dataset kind to generate")
	sampleCmd.Flags().StringVarP(&sampleOut, "output", "o", vtk.DefaultExportFile, "output file path")
	sampleCmd.Flags().BoolVar(&sampleOpen, "open", false, "open the written file in the system viewer")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, kindToken, out string, open bool) error {
	kind, err := vtk.ParseKind(kindToken)
	if err != nil {
		return err
	}

	ds, err := sampleDataset(kind)
	if err != nil {
		return err
	}

	if err := vtk.Write(out, ds, vtk.WithViewerHook(launchViewer)); err != nil {
		return err
	}
	if verbose {
		cmd.Printf("wrote %s (%s)\n", out, kind)
	}
	if open && filepath.Base(out) != vtk.DefaultExportFile {
		return launchViewer(out)
	}
	return nil
}

// sampleDataset builds the demo dataset for one kind.
func sampleDataset(kind vtk.Kind) (vtk.Dataset, error) {
	switch kind {
	case vtk.KindStructuredPoints:
		return samplePoints()
	case vtk.KindStructuredGrid, vtk.KindUnstructuredGrid:
		return sampleGrid(kind)
	case vtk.KindPolyData:
		return sampleHelix(), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, vtk.ErrUnsupportedDatasetKind)
	}
}

// samplePoints builds a 32x32 Gaussian ridge.
func samplePoints() (vtk.Dataset, error) {
	const n = 32
	ax := floats.Span(make([]float64, n), -2, 2)

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = math.Exp(-(ax[i]*ax[i] + ax[j]*ax[j]))
		}
	}
	grid, err := vtk.GridFromSlice(m)
	if err != nil {
		return nil, err
	}
	return vtk.NewStructuredPoints("gaussian", grid, vtk.WithSpacing(4.0/(n-1), 4.0/(n-1), 1)), nil
}

// sampleGrid builds a 20x20 warped sheet carrying a velocity field and its
// magnitude.
func sampleGrid(kind vtk.Kind) (vtk.Dataset, error) {
	const n = 20
	ax := floats.Span(make([]float64, n), 0, 2*math.Pi)

	x := make([][]float64, n)
	y := make([][]float64, n)
	z := make([][]float64, n)
	u := make([][]float64, n)
	v := make([][]float64, n)
	w := make([][]float64, n)
	mag := make([][]float64, n)
	for i := range x {
		x[i] = make([]float64, n)
		y[i] = make([]float64, n)
		z[i] = make([]float64, n)
		u[i] = make([]float64, n)
		v[i] = make([]float64, n)
		w[i] = make([]float64, n)
		mag[i] = make([]float64, n)
		for j := range x[i] {
			x[i][j] = ax[i]
			y[i][j] = ax[j]
			z[i][j] = math.Sin(ax[i]) * math.Cos(ax[j])
			u[i][j] = math.Cos(ax[i])
			v[i][j] = -math.Sin(ax[j])
			w[i][j] = 0.5
			mag[i][j] = floats.Norm([]float64{u[i][j], v[i][j], w[i][j]}, 2)
		}
	}

	grids := make([]*vtk.Grid, 0, 7)
	for _, m := range [][][]float64{x, y, z, u, v, w, mag} {
		g, err := vtk.GridFromSlice(m)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}

	attrs := []vtk.Attribute{
		vtk.Vectors("velocity", grids[3], grids[4], grids[5]),
		vtk.Scalars("speed", grids[6]),
	}
	if kind == vtk.KindStructuredGrid {
		return vtk.NewStructuredGrid(grids[0], grids[1], grids[2], attrs...), nil
	}
	return vtk.NewUnstructuredGrid(grids[0], grids[1], grids[2], attrs...), nil
}

// sampleHelix builds a 100-point helix polyline.
func sampleHelix() vtk.Dataset {
	const n = 100
	t := floats.Span(make([]float64, n), 0, 6*math.Pi)

	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i, ti := range t {
		x[i] = math.Cos(ti)
		y[i] = math.Sin(ti)
		z[i] = ti / (2 * math.Pi)
	}
	return vtk.NewLines(x, y, z, vtk.WithPrecision(4))
}
