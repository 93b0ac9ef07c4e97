package vtk

import (
	"fmt"

	"github.com/Eng-RSMY/vtkwrite/internal/binary"
)

// GridDataset is a point cloud given by three same-shaped coordinate grids,
// written either as a STRUCTURED_GRID (connectivity implied by the grid
// dimensions) or an UNSTRUCTURED_GRID (points only, no dimensions line).
// Any number of named vector and scalar attributes may annotate the points.
type GridDataset struct {
	kind    Kind
	x, y, z *Grid
	attrs   []Attribute
}

// NewStructuredGrid builds a structured grid dataset from coordinate grids
// x, y, z. Attributes are written in attachment order, vectors first.
func NewStructuredGrid(x, y, z *Grid, attrs ...Attribute) *GridDataset {
	return &GridDataset{kind: KindStructuredGrid, x: x, y: y, z: z, attrs: attrs}
}

// NewUnstructuredGrid builds an unstructured grid dataset from coordinate
// grids x, y, z. Attributes are written in attachment order, vectors first.
func NewUnstructuredGrid(x, y, z *Grid, attrs ...Attribute) *GridDataset {
	return &GridDataset{kind: KindUnstructuredGrid, x: x, y: y, z: z, attrs: attrs}
}

// Kind returns KindStructuredGrid or KindUnstructuredGrid.
func (gd *GridDataset) Kind() Kind {
	return gd.kind
}

func (gd *GridDataset) validate() error {
	if gd.x == nil || gd.y == nil || gd.z == nil {
		return fmt.Errorf("%s needs x, y and z coordinate grids: %w", gd.kind, ErrInsufficientArguments)
	}
	if gd.x.Len() == 0 {
		return fmt.Errorf("%s coordinate grids are empty: %w", gd.kind, ErrInsufficientArguments)
	}
	if !gd.x.sameShape(gd.y) || !gd.y.sameShape(gd.z) {
		return fmt.Errorf("coordinate grids x, y, z differ in shape: %w", ErrShapeMismatch)
	}
	for _, a := range gd.attrs {
		if err := a.validate(gd.x); err != nil {
			return err
		}
	}
	return nil
}

func (gd *GridDataset) encode(w *binary.Writer) error {
	n := gd.x.Len()

	writeHeader(w, "BINARY")
	if gd.kind == KindStructuredGrid {
		nx, ny, nz := gd.x.Dims()
		w.WriteString("DATASET STRUCTURED_GRID\n")
		w.Printf("DIMENSIONS %d %d %d\n", nx, ny, nz)
	} else {
		w.WriteString("DATASET UNSTRUCTURED_GRID\n")
	}

	w.Printf("POINTS %d float\n", n)
	w.WriteFloat32Triples(gd.x.Values(), gd.y.Values(), gd.z.Values())

	// The POINT_DATA line carries no trailing newline; every attribute
	// block opens with one.
	w.Printf("\nPOINT_DATA %d", n)
	for _, a := range gd.attrs {
		if a.kind != attrVectors {
			continue
		}
		w.Printf("\nVECTORS %s float\n", a.name)
		w.WriteFloat32Triples(a.u.Values(), a.v.Values(), a.w.Values())
	}
	for _, a := range gd.attrs {
		if a.kind != attrScalars {
			continue
		}
		w.Printf("\nSCALARS %s float\n", a.name)
		w.WriteString("LOOKUP_TABLE default\n")
		w.WriteFloat32s(a.r.Values())
	}
	return w.Err()
}
