package vtk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Eng-RSMY/vtkwrite/internal/array"
)

// Grid holds a 1-D, 2-D or 3-D block of scalar samples in column-major
// linear order (the first axis varies fastest). It is the unit of geometry
// and attribute data for every dataset kind: structured points carry one
// Grid of samples, grid datasets carry one Grid per coordinate axis.
type Grid struct {
	dims [3]int
	data []float64
}

// NewGrid creates a grid from dimensions and flat column-major data.
// Trailing dimensions of size 0 are treated as size 1.
func NewGrid(dims [3]int, data []float64) (*Grid, error) {
	for i, d := range dims {
		if d == 0 {
			dims[i] = 1
		}
		if dims[i] < 0 {
			return nil, fmt.Errorf("dimension %d is negative: %w", i, ErrShapeMismatch)
		}
	}
	if n := dims[0] * dims[1] * dims[2]; n != len(data) {
		return nil, fmt.Errorf("data length %d does not match dimensions %v (%d elements): %w",
			len(data), dims, n, ErrShapeMismatch)
	}
	return &Grid{dims: dims, data: data}, nil
}

// GridFromSlice creates a grid from a nested Go slice of samples:
// []float64, [][]float64 or [][][]float64. The slice is flattened into
// column-major order; ragged inputs are rejected.
func GridFromSlice(v any) (*Grid, error) {
	dims, data, err := array.Infer(v)
	if err != nil {
		return nil, fmt.Errorf("inferring dimensions: %w", err)
	}
	return NewGrid(dims, data)
}

// GridFromDense creates a 2-D grid from a gonum matrix. Dense matrices are
// stored row-major, so the values are transposed into column-major order.
func GridFromDense(m *mat.Dense) *Grid {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			data[i+r*j] = m.At(i, j)
		}
	}
	return &Grid{dims: [3]int{r, c, 1}, data: data}
}

// Dims returns the per-axis extents.
func (g *Grid) Dims() (nx, ny, nz int) {
	return g.dims[0], g.dims[1], g.dims[2]
}

// Len returns the total number of samples.
func (g *Grid) Len() int {
	return len(g.data)
}

// Values returns the samples in column-major linear order. The slice is
// the grid's backing store; callers must not modify it.
func (g *Grid) Values() []float64 {
	return g.data
}

// sameShape reports whether two grids have elementwise equal dimensions.
func (g *Grid) sameShape(o *Grid) bool {
	return g.dims == o.dims
}
