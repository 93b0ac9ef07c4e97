// Package vtk writes datasets in the legacy VTK file format (version 2.0).
package vtk

import "errors"

// Common errors
var (
	ErrInsufficientArguments  = errors.New("insufficient arguments for dataset kind")
	ErrShapeMismatch          = errors.New("input dimensions do not match")
	ErrInvalidPrecision       = errors.New("precision must be non-negative")
	ErrUnsupportedDatasetKind = errors.New("unsupported dataset kind")
)
