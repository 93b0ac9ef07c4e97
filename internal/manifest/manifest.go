// Package manifest describes batch VTK exports: a YAML document naming
// datasets, their kind tokens, and the CSV files holding their arrays.
package manifest

import (
	"fmt"

	"github.com/Eng-RSMY/vtkwrite/vtk"
)

// Manifest is one export batch.
type Manifest struct {
	// OutputDir receives the written .vtk files. Relative paths resolve
	// against the manifest's own directory. Defaults to ".".
	OutputDir string  `yaml:"output_dir"`
	Datasets  []Entry `yaml:"datasets"`
}

// Entry describes one output file. Which fields are required depends on
// the dataset kind; Validate enforces the combinations.
type Entry struct {
	Name string `yaml:"name"` // output filename, e.g. wave.vtk
	Kind string `yaml:"kind"` // structured_points | structured_grid | unstructured_grid | polydata

	// Structured points.
	Title   string    `yaml:"title,omitempty"`
	Data    string    `yaml:"data,omitempty"` // CSV matrix of samples
	Spacing []float64 `yaml:"spacing,omitempty"`
	Origin  []float64 `yaml:"origin,omitempty"`

	// Grid kinds and polydata geometry.
	X string `yaml:"x,omitempty"`
	Y string `yaml:"y,omitempty"`
	Z string `yaml:"z,omitempty"`

	// Grid-kind attributes, written vectors first.
	Vectors []VectorSource `yaml:"vectors,omitempty"`
	Scalars []ScalarSource `yaml:"scalars,omitempty"`

	// Polydata.
	Primitive string `yaml:"primitive,omitempty"` // lines | triangle | tetrahedron
	Cells     string `yaml:"cells,omitempty"`     // CSV matrix of 1-based indices
	Precision *int   `yaml:"precision,omitempty"`
}

// VectorSource names a VECTORS attribute and its three component CSVs.
type VectorSource struct {
	Name string `yaml:"name"`
	U    string `yaml:"u"`
	V    string `yaml:"v"`
	W    string `yaml:"w"`
}

// ScalarSource names a SCALARS attribute and its data CSV.
type ScalarSource struct {
	Name string `yaml:"name"`
	Data string `yaml:"data"`
}

// ApplyDefaults fills optional manifest fields.
func ApplyDefaults(m *Manifest) {
	if m.OutputDir == "" {
		m.OutputDir = "."
	}
	for i := range m.Datasets {
		e := &m.Datasets[i]
		if e.Kind == "structured_points" && e.Title == "" {
			e.Title = "data"
		}
	}
}

// Validate checks the manifest for structural problems before any CSV is
// read or any file is written.
func Validate(m *Manifest) error {
	if len(m.Datasets) == 0 {
		return fmt.Errorf("manifest lists no datasets")
	}
	for i, e := range m.Datasets {
		if err := validateEntry(e); err != nil {
			return fmt.Errorf("dataset %d (%q): %w", i, e.Name, err)
		}
	}
	return nil
}

func validateEntry(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("missing output name")
	}
	kind, err := vtk.ParseKind(e.Kind)
	if err != nil {
		return err
	}
	switch kind {
	case vtk.KindStructuredPoints:
		if e.Data == "" {
			return fmt.Errorf("structured_points needs a data CSV")
		}
		if len(e.Spacing) != 0 && len(e.Spacing) != 3 {
			return fmt.Errorf("spacing needs 3 values, got %d", len(e.Spacing))
		}
		if len(e.Origin) != 0 && len(e.Origin) != 3 {
			return fmt.Errorf("origin needs 3 values, got %d", len(e.Origin))
		}
	case vtk.KindStructuredGrid, vtk.KindUnstructuredGrid:
		if e.X == "" || e.Y == "" || e.Z == "" {
			return fmt.Errorf("%s needs x, y and z CSVs", kind)
		}
		for _, v := range e.Vectors {
			if v.Name == "" || v.U == "" || v.V == "" || v.W == "" {
				return fmt.Errorf("vectors attribute needs a name and u, v, w CSVs")
			}
		}
		for _, s := range e.Scalars {
			if s.Name == "" || s.Data == "" {
				return fmt.Errorf("scalars attribute needs a name and a data CSV")
			}
		}
	case vtk.KindPolyData:
		if e.X == "" || e.Y == "" || e.Z == "" {
			return fmt.Errorf("polydata needs x, y and z CSVs")
		}
		prim, err := vtk.ParsePrimitive(e.Primitive)
		if err != nil {
			return err
		}
		if prim != vtk.Lines && e.Cells == "" {
			return fmt.Errorf("polydata %s needs a cells CSV", prim)
		}
	}
	return nil
}
