package vtk

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sentinelGrid(t *testing.T, dims [3]int, base float64) *Grid {
	t.Helper()
	n := dims[0] * dims[1] * dims[2]
	data := make([]float64, n)
	for i := range data {
		data[i] = base + float64(i)
	}
	g, err := NewGrid(dims, data)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestStructuredGridPoints(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtkwrite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	x := sentinelGrid(t, [3]int{2, 2, 2}, 0)
	y := sentinelGrid(t, [3]int{2, 2, 2}, 100)
	z := sentinelGrid(t, [3]int{2, 2, 2}, 200)

	path := filepath.Join(tmpDir, "grid.vtk")
	if err := Write(path, NewStructuredGrid(x, y, z)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !bytes.Contains(data, []byte("DATASET STRUCTURED_GRID\n")) {
		t.Error("Missing DATASET STRUCTURED_GRID line")
	}
	if !bytes.Contains(data, []byte("DIMENSIONS 2 2 2\n")) {
		t.Error("Missing DIMENSIONS 2 2 2 line")
	}

	_, rest := splitAfter(t, data, "POINTS 8 float\n")
	payload, tail := rest[:8*3*4], rest[8*3*4:]
	if !bytes.HasPrefix(tail, []byte("\nPOINT_DATA 8")) {
		t.Errorf("Expected \\nPOINT_DATA 8 after the points payload, got %q", tail)
	}

	got := decodeBE32(t, payload)
	for i := 0; i < 8; i++ {
		wantX, wantY, wantZ := float32(i), float32(100+i), float32(200+i)
		if got[3*i] != wantX || got[3*i+1] != wantY || got[3*i+2] != wantZ {
			t.Errorf("Point %d: expected (%v %v %v), got (%v %v %v)",
				i, wantX, wantY, wantZ, got[3*i], got[3*i+1], got[3*i+2])
		}
	}
}

func TestUnstructuredGridHasNoDimensions(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtkwrite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	x := sentinelGrid(t, [3]int{4, 1, 1}, 0)
	y := sentinelGrid(t, [3]int{4, 1, 1}, 0)
	z := sentinelGrid(t, [3]int{4, 1, 1}, 0)

	path := filepath.Join(tmpDir, "ugrid.vtk")
	if err := Write(path, NewUnstructuredGrid(x, y, z)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Contains(data, []byte("DATASET UNSTRUCTURED_GRID\n")) {
		t.Error("Missing DATASET UNSTRUCTURED_GRID line")
	}
	if bytes.Contains(data, []byte("DIMENSIONS")) {
		t.Error("Unstructured grid must not emit a DIMENSIONS line")
	}
}

func TestGridShapeMismatch(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtkwrite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	x := sentinelGrid(t, [3]int{2, 2, 2}, 0)
	y := sentinelGrid(t, [3]int{2, 2, 3}, 0)
	z := sentinelGrid(t, [3]int{2, 2, 2}, 0)

	path := filepath.Join(tmpDir, "mismatch.vtk")
	err = Write(path, NewStructuredGrid(x, y, z))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected ErrShapeMismatch, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Shape mismatch must fail before any write")
	}
}

func TestVectorsPrecedeScalars(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtkwrite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	shape := [3]int{3, 1, 1}
	x := sentinelGrid(t, shape, 0)
	y := sentinelGrid(t, shape, 0)
	z := sentinelGrid(t, shape, 0)
	r := sentinelGrid(t, shape, 5)
	u := sentinelGrid(t, shape, 1)

	// Scalars attached first; vectors must still come first in the file.
	ds := NewUnstructuredGrid(x, y, z,
		Scalars("pressure", r),
		Vectors("velocity", u, u, u),
		Scalars("density", r),
	)

	path := filepath.Join(tmpDir, "attrs.vtk")
	if err := Write(path, ds); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	vec := bytes.Index(data, []byte("\nVECTORS velocity float\n"))
	sc1 := bytes.Index(data, []byte("\nSCALARS pressure float\n"))
	sc2 := bytes.Index(data, []byte("\nSCALARS density float\n"))
	if vec < 0 || sc1 < 0 || sc2 < 0 {
		t.Fatalf("Missing attribute blocks: vec=%d sc1=%d sc2=%d", vec, sc1, sc2)
	}
	if !(vec < sc1 && sc1 < sc2) {
		t.Errorf("Expected vectors before scalars (in attachment order), got offsets vec=%d sc1=%d sc2=%d", vec, sc1, sc2)
	}
	if !bytes.Contains(data, []byte("LOOKUP_TABLE default\n")) {
		t.Error("Scalar blocks must carry a LOOKUP_TABLE default line")
	}
}

func TestAttributeShapeMismatch(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtkwrite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	x := sentinelGrid(t, [3]int{3, 1, 1}, 0)
	bad := sentinelGrid(t, [3]int{4, 1, 1}, 0)

	err = Write(filepath.Join(tmpDir, "badattr.vtk"),
		NewUnstructuredGrid(x, x, x, Scalars("s", bad)))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Expected ErrShapeMismatch for attribute shape, got %v", err)
	}
}

func TestGridMissingCoordinates(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtkwrite-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	x := sentinelGrid(t, [3]int{2, 1, 1}, 0)
	err = Write(filepath.Join(tmpDir, "missing.vtk"), NewStructuredGrid(x, nil, x))
	if !errors.Is(err, ErrInsufficientArguments) {
		t.Fatalf("Expected ErrInsufficientArguments, got %v", err)
	}
}
