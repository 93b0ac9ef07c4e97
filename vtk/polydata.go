package vtk

import (
	"fmt"
	"strings"

	"github.com/Eng-RSMY/vtkwrite/internal/binary"
)

// Primitive selects the polydata connectivity sub-grammar.
type Primitive int

const (
	// Lines connects the points as an implicit polyline: the forward
	// chain of segments (i, i+1) followed by the same chain reversed.
	Lines Primitive = iota
	// Triangles takes an explicit m x 3 matrix of 1-based point indices.
	Triangles
	// Tetrahedra takes an explicit m x 4 matrix of 1-based point indices.
	Tetrahedra
)

// ParsePrimitive resolves a polydata primitive token, case-insensitively.
func ParsePrimitive(token string) (Primitive, error) {
	switch strings.ToLower(token) {
	case "lines":
		return Lines, nil
	case "triangle", "triangles":
		return Triangles, nil
	case "tetrahedron", "tetrahedra":
		return Tetrahedra, nil
	default:
		return 0, fmt.Errorf("polydata primitive %q: %w", token, ErrUnsupportedDatasetKind)
	}
}

// String returns the primitive token.
func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case Triangles:
		return "triangle"
	case Tetrahedra:
		return "tetrahedron"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// PolyData is an ASCII-mode point set with line, triangle or tetrahedron
// connectivity. Coordinates are written three points per line; if the point
// count is not a multiple of 3, synthetic zero points pad the final line.
// Padded points appear in the POINTS count but never in connectivity.
type PolyData struct {
	prim    Primitive
	x, y, z []float64
	cells   [][]int // 1-based point indices; nil for Lines
	opts    *polyOptions
}

// NewLines builds a polyline over the given points, connecting each point
// to the next.
func NewLines(x, y, z []float64, opts ...PolyOption) *PolyData {
	return newPolyData(Lines, x, y, z, nil, opts)
}

// NewTriangles builds a triangle surface. Each row of tris holds three
// 1-based point indices.
func NewTriangles(x, y, z []float64, tris [][3]int, opts ...PolyOption) *PolyData {
	cells := make([][]int, len(tris))
	for i, t := range tris {
		cells[i] = []int{t[0], t[1], t[2]}
	}
	return newPolyData(Triangles, x, y, z, cells, opts)
}

// NewTetrahedra builds a tetrahedral volume. Each row of tets holds four
// 1-based point indices.
func NewTetrahedra(x, y, z []float64, tets [][4]int, opts ...PolyOption) *PolyData {
	cells := make([][]int, len(tets))
	for i, t := range tets {
		cells[i] = []int{t[0], t[1], t[2], t[3]}
	}
	return newPolyData(Tetrahedra, x, y, z, cells, opts)
}

// NewPolyData builds a polydata dataset from a primitive kind and a generic
// 1-based index matrix. Lines ignore the cells argument. Row widths are
// checked against the primitive's arity at write time.
func NewPolyData(prim Primitive, x, y, z []float64, cells [][]int, opts ...PolyOption) *PolyData {
	return newPolyData(prim, x, y, z, cells, opts)
}

func newPolyData(prim Primitive, x, y, z []float64, cells [][]int, opts []PolyOption) *PolyData {
	options := defaultPolyOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &PolyData{prim: prim, x: x, y: y, z: z, cells: cells, opts: options}
}

// Kind returns KindPolyData.
func (pd *PolyData) Kind() Kind {
	return KindPolyData
}

// cellArity returns the points-per-cell count for explicit primitives.
func (pd *PolyData) cellArity() int {
	if pd.prim == Tetrahedra {
		return 4
	}
	return 3
}

func (pd *PolyData) validate() error {
	if pd.opts.precision < 0 {
		return fmt.Errorf("precision %d: %w", pd.opts.precision, ErrInvalidPrecision)
	}
	if len(pd.x) == 0 {
		return fmt.Errorf("polydata needs point coordinates: %w", ErrInsufficientArguments)
	}
	if len(pd.x) != len(pd.y) || len(pd.x) != len(pd.z) {
		return fmt.Errorf("coordinate arrays x, y, z differ in length: %w", ErrShapeMismatch)
	}
	if pd.prim == Lines {
		return nil
	}
	if len(pd.cells) == 0 {
		return fmt.Errorf("polydata %s needs an index matrix: %w", pd.prim, ErrInsufficientArguments)
	}
	arity := pd.cellArity()
	for i, c := range pd.cells {
		if len(c) != arity {
			return fmt.Errorf("%s cell %d has %d indices, want %d: %w", pd.prim, i, len(c), arity, ErrShapeMismatch)
		}
	}
	return nil
}

func (pd *PolyData) encode(w *binary.Writer) error {
	n := len(pd.x)

	writeHeader(w, "ASCII")
	w.WriteString("DATASET POLYDATA\n")

	// Pad the coordinate arrays with zero points so the final
	// three-points-per-line group is complete. Connectivity below always
	// uses the original count n.
	x, y, z := pd.x, pd.y, pd.z
	if pad := (3 - n%3) % 3; pad > 0 {
		zeros := make([]float64, pad)
		x = append(append([]float64{}, x...), zeros...)
		y = append(append([]float64{}, y...), zeros...)
		z = append(append([]float64{}, z...), zeros...)
	}

	w.Printf("POINTS %d float\n", len(x))
	prec := pd.opts.precision
	for g := 0; g < len(x); g += 3 {
		for i := g; i < g+3; i++ {
			w.Printf("%.*f %.*f %.*f ", prec, x[i], prec, y[i], prec, z[i])
		}
		w.WriteString("\n")
	}

	switch pd.prim {
	case Lines:
		// Forward chain then reversed chain, 2(n-1) segments in total.
		// Consumers depend on this exact sequence.
		nb := 0
		if n > 1 {
			nb = 2 * (n - 1)
		}
		w.Printf("\nLINES %d %d\n", nb, 3*nb)
		for i := 0; i < nb/2; i++ {
			w.Printf("2 %d %d\n", i, i+1)
		}
		for i := 0; i < nb/2; i++ {
			w.Printf("2 %d %d\n", i+1, i)
		}
	case Triangles:
		m := len(pd.cells)
		w.Printf("\nPOLYGONS %d %d\n", m, 4*m)
		for _, c := range pd.cells {
			w.Printf("3 %d %d %d\n", c[0]-1, c[1]-1, c[2]-1)
		}
	case Tetrahedra:
		m := len(pd.cells)
		w.Printf("\nPOLYGONS %d %d\n", m, 5*m)
		for _, c := range pd.cells {
			w.Printf("4 %d %d %d %d\n", c[0]-1, c[1]-1, c[2]-1, c[3]-1)
		}
	}
	return w.Err()
}
