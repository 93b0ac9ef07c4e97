package vtk

import (
	stdbinary "encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Eng-RSMY/vtkwrite/internal/binary"
)

// Write validates the dataset and writes it to path as a legacy VTK file.
//
// Validation runs before any file is created, so a bad request never leaves
// a truncated file behind. The file is written to a temporary name in the
// destination directory and renamed into place on success; on any failure
// the temporary file is removed.
//
// When the target filename is the reserved DefaultExportFile and a viewer
// hook is installed, the hook fires asynchronously after the rename.
func Write(path string, ds Dataset, opts ...WriteOption) error {
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := ds.validate(); err != nil {
		return fmt.Errorf("validating %s dataset: %w", ds.Kind(), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".vtkwrite-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	w := binary.NewWriter(tmp, binary.Config{ByteOrder: stdbinary.BigEndian})
	encErr := ds.encode(w)
	if encErr == nil {
		encErr = w.Flush()
	}
	if encErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding %s dataset: %w", ds.Kind(), encErr)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming into place: %w", err)
	}

	if options.viewerHook != nil && filepath.Base(path) == DefaultExportFile {
		go options.viewerHook(path)
	}
	return nil
}
