package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExport(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"wave.csv": "1,2,3\n4,5,6\n",
		"px.csv":   "0\n1\n2\n3\n",
		"py.csv":   "0\n1\n0\n1\n",
		"pz.csv":   "0\n0\n1\n1\n",
		"scene.yaml": `
datasets:
  - name: wave.vtk
    kind: structured_points
    title: height
    data: wave.csv
  - name: path.vtk
    kind: polydata
    primitive: lines
    x: px.csv
    y: py.csv
    z: pz.csv
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	err := runExport(&cobra.Command{}, filepath.Join(dir, "scene.yaml"), "", false)
	require.NoError(t, err)

	wave, err := os.ReadFile(filepath.Join(dir, "wave.vtk"))
	require.NoError(t, err)
	assert.Contains(t, string(wave), "DATASET STRUCTURED_POINTS\n")
	assert.Contains(t, string(wave), "SCALARS height float 1\n")

	path, err := os.ReadFile(filepath.Join(dir, "path.vtk"))
	require.NoError(t, err)
	assert.Contains(t, string(path), "DATASET POLYDATA\n")
	assert.Contains(t, string(path), "POINTS 6 float\n")
	assert.Contains(t, string(path), "LINES 6 18\n")
}

func TestRunExportOutDirOverride(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "m.csv"), []byte("1,2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(`
output_dir: ignored
datasets:
  - name: a.vtk
    kind: structured_points
    data: m.csv
`), 0o644))

	err := runExport(&cobra.Command{}, filepath.Join(dir, "scene.yaml"), outDir, false)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "a.vtk"))
	assert.NoError(t, err)
}

func TestRunExportBadManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(`
datasets:
  - name: a.vtk
    kind: rectilinear
`), 0o644))

	err := runExport(&cobra.Command{}, filepath.Join(dir, "scene.yaml"), "", false)
	assert.Error(t, err)
}
