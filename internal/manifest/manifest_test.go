package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeFile(t, dir, "scene.yaml", `
output_dir: out
datasets:
  - name: wave.vtk
    kind: structured_points
    title: height
    data: wave.csv
    spacing: [0.5, 0.5, 1]
  - name: flow.vtk
    kind: unstructured_grid
    x: x.csv
    y: y.csv
    z: z.csv
    vectors:
      - name: velocity
        u: u.csv
        v: v.csv
        w: w.csv
    scalars:
      - name: pressure
        data: p.csv
  - name: path.vtk
    kind: polydata
    primitive: lines
    x: px.csv
    y: py.csv
    z: pz.csv
    precision: 4
`)

	m, err := Load(path)
	require.NoError(t, err)

	four := 4
	want := &Manifest{
		OutputDir: "out",
		Datasets: []Entry{
			{
				Name:    "wave.vtk",
				Kind:    "structured_points",
				Title:   "height",
				Data:    "wave.csv",
				Spacing: []float64{0.5, 0.5, 1},
			},
			{
				Name: "flow.vtk",
				Kind: "unstructured_grid",
				X:    "x.csv", Y: "y.csv", Z: "z.csv",
				Vectors: []VectorSource{{Name: "velocity", U: "u.csv", V: "v.csv", W: "w.csv"}},
				Scalars: []ScalarSource{{Name: "pressure", Data: "p.csv"}},
			},
			{
				Name:      "path.vtk",
				Kind:      "polydata",
				Primitive: "lines",
				X:         "px.csv", Y: "py.csv", Z: "pz.csv",
				Precision: &four,
			},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeFile(t, dir, "scene.yaml", `
datasets:
  - name: a.vtk
    kind: structured_points
    data: a.csv
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".", m.OutputDir)
	assert.Equal(t, "data", m.Datasets[0].Title)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
	}{
		{"no datasets", `output_dir: .`},
		{"missing name", "datasets:\n  - kind: polydata\n    primitive: lines\n    x: a\n    y: b\n    z: c"},
		{"bad kind", "datasets:\n  - name: a.vtk\n    kind: rectilinear"},
		{"points without data", "datasets:\n  - name: a.vtk\n    kind: structured_points"},
		{"grid without z", "datasets:\n  - name: a.vtk\n    kind: structured_grid\n    x: a\n    y: b"},
		{"bad spacing arity", "datasets:\n  - name: a.vtk\n    kind: structured_points\n    data: a.csv\n    spacing: [1, 2]"},
		{"triangle without cells", "datasets:\n  - name: a.vtk\n    kind: polydata\n    primitive: triangle\n    x: a\n    y: b\n    z: c"},
		{"bad primitive", "datasets:\n  - name: a.vtk\n    kind: polydata\n    primitive: hexahedron\n    x: a\n    y: b\n    z: c"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := writeFile(t, dir, "scene.yaml", tc.yaml)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
