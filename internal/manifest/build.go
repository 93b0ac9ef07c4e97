package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/Eng-RSMY/vtkwrite/vtk"
)

// Build turns a manifest entry into a ready-to-write dataset, reading its
// CSV sources relative to baseDir (usually the manifest's directory).
func (e Entry) Build(baseDir string) (vtk.Dataset, error) {
	kind, err := vtk.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case vtk.KindStructuredPoints:
		return e.buildStructuredPoints(baseDir)
	case vtk.KindStructuredGrid, vtk.KindUnstructuredGrid:
		return e.buildGrid(baseDir, kind)
	default:
		return e.buildPolyData(baseDir)
	}
}

func (e Entry) buildStructuredPoints(baseDir string) (vtk.Dataset, error) {
	m, err := ReadMatrix(filepath.Join(baseDir, e.Data))
	if err != nil {
		return nil, err
	}
	grid, err := vtk.GridFromSlice(m)
	if err != nil {
		return nil, fmt.Errorf("data %q: %w", e.Data, err)
	}

	var opts []vtk.PointsOption
	if len(e.Spacing) == 3 {
		opts = append(opts, vtk.WithSpacing(e.Spacing[0], e.Spacing[1], e.Spacing[2]))
	}
	if len(e.Origin) == 3 {
		opts = append(opts, vtk.WithOrigin(e.Origin[0], e.Origin[1], e.Origin[2]))
	}
	return vtk.NewStructuredPoints(e.Title, grid, opts...), nil
}

func (e Entry) buildGrid(baseDir string, kind vtk.Kind) (vtk.Dataset, error) {
	readGrid := func(name string) (*vtk.Grid, error) {
		m, err := ReadMatrix(filepath.Join(baseDir, name))
		if err != nil {
			return nil, err
		}
		g, err := vtk.GridFromSlice(m)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		return g, nil
	}

	x, err := readGrid(e.X)
	if err != nil {
		return nil, err
	}
	y, err := readGrid(e.Y)
	if err != nil {
		return nil, err
	}
	z, err := readGrid(e.Z)
	if err != nil {
		return nil, err
	}

	var attrs []vtk.Attribute
	for _, v := range e.Vectors {
		u, err := readGrid(v.U)
		if err != nil {
			return nil, err
		}
		vv, err := readGrid(v.V)
		if err != nil {
			return nil, err
		}
		w, err := readGrid(v.W)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, vtk.Vectors(v.Name, u, vv, w))
	}
	for _, s := range e.Scalars {
		r, err := readGrid(s.Data)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, vtk.Scalars(s.Name, r))
	}

	if kind == vtk.KindStructuredGrid {
		return vtk.NewStructuredGrid(x, y, z, attrs...), nil
	}
	return vtk.NewUnstructuredGrid(x, y, z, attrs...), nil
}

func (e Entry) buildPolyData(baseDir string) (vtk.Dataset, error) {
	prim, err := vtk.ParsePrimitive(e.Primitive)
	if err != nil {
		return nil, err
	}

	x, err := ReadVector(filepath.Join(baseDir, e.X))
	if err != nil {
		return nil, err
	}
	y, err := ReadVector(filepath.Join(baseDir, e.Y))
	if err != nil {
		return nil, err
	}
	z, err := ReadVector(filepath.Join(baseDir, e.Z))
	if err != nil {
		return nil, err
	}

	var cells [][]int
	if e.Cells != "" {
		cells, err = ReadIndexMatrix(filepath.Join(baseDir, e.Cells))
		if err != nil {
			return nil, err
		}
	}

	var opts []vtk.PolyOption
	if e.Precision != nil {
		opts = append(opts, vtk.WithPrecision(*e.Precision))
	}
	return vtk.NewPolyData(prim, x, y, z, cells, opts...), nil
}
