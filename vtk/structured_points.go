package vtk

import (
	"fmt"

	"github.com/Eng-RSMY/vtkwrite/internal/binary"
)

// StructuredPoints is a regular lattice of scalar samples. Point positions
// are implicit from the grid dimensions, spacing and origin; the file
// carries a single named SCALARS block with the sample values as big-endian
// 32-bit floats in the grid's column-major order.
type StructuredPoints struct {
	title string
	grid  *Grid
	opts  *pointsOptions
}

// NewStructuredPoints builds a structured points dataset from a sample grid.
// The title names the SCALARS block in the output.
func NewStructuredPoints(title string, grid *Grid, opts ...PointsOption) *StructuredPoints {
	options := defaultPointsOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &StructuredPoints{
		title: title,
		grid:  grid,
		opts:  options,
	}
}

// Kind returns KindStructuredPoints.
func (sp *StructuredPoints) Kind() Kind {
	return KindStructuredPoints
}

func (sp *StructuredPoints) validate() error {
	if sp.title == "" || sp.grid == nil {
		return fmt.Errorf("structured points needs a title and a sample grid: %w", ErrInsufficientArguments)
	}
	if sp.grid.Len() == 0 {
		return fmt.Errorf("structured points sample grid is empty: %w", ErrInsufficientArguments)
	}
	return nil
}

func (sp *StructuredPoints) encode(w *binary.Writer) error {
	nx, ny, nz := sp.grid.Dims()

	writeHeader(w, "BINARY")
	w.WriteString("DATASET STRUCTURED_POINTS\n")
	w.Printf("DIMENSIONS %d %d %d\n", nx, ny, nz)
	w.Printf("SPACING %s %s %s\n", ftoa(sp.opts.spacing[0]), ftoa(sp.opts.spacing[1]), ftoa(sp.opts.spacing[2]))
	w.Printf("ORIGIN %s %s %s\n", ftoa(sp.opts.origin[0]), ftoa(sp.opts.origin[1]), ftoa(sp.opts.origin[2]))
	w.Printf("POINT_DATA %d\n", sp.grid.Len())
	w.Printf("SCALARS %s float 1\n", sp.title)
	w.WriteString("LOOKUP_TABLE default\n")
	w.WriteFloat32s(sp.grid.Values())
	return w.Err()
}
