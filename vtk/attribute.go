package vtk

import "fmt"

type attrKind uint8

const (
	attrVectors attrKind = iota
	attrScalars
)

// Attribute is a named VECTORS or SCALARS block attached to the point set
// of a grid dataset. Attachment order is preserved in the output, except
// that all vector blocks are written before any scalar block.
type Attribute struct {
	name    string
	kind    attrKind
	u, v, w *Grid // vectors
	r       *Grid // scalars
}

// Vectors builds a named vector attribute from three component grids.
func Vectors(name string, u, v, w *Grid) Attribute {
	return Attribute{name: name, kind: attrVectors, u: u, v: v, w: w}
}

// Scalars builds a named scalar attribute from one grid.
func Scalars(name string, r *Grid) Attribute {
	return Attribute{name: name, kind: attrScalars, r: r}
}

// Name returns the attribute's block title.
func (a Attribute) Name() string {
	return a.name
}

// validate checks the attribute against the geometry grid it annotates.
func (a Attribute) validate(geom *Grid) error {
	switch a.kind {
	case attrVectors:
		for i, c := range []*Grid{a.u, a.v, a.w} {
			if c == nil {
				return fmt.Errorf("vectors %q: missing component %d: %w", a.name, i, ErrInsufficientArguments)
			}
			if !c.sameShape(geom) {
				return fmt.Errorf("vectors %q: component %d shape does not match geometry: %w", a.name, i, ErrShapeMismatch)
			}
		}
	case attrScalars:
		if a.r == nil {
			return fmt.Errorf("scalars %q: missing data: %w", a.name, ErrInsufficientArguments)
		}
		if !a.r.sameShape(geom) {
			return fmt.Errorf("scalars %q: shape does not match geometry: %w", a.name, ErrShapeMismatch)
		}
	}
	return nil
}
