package vtk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Eng-RSMY/vtkwrite/internal/binary"
)

// Kind identifies one of the four legacy VTK dataset grammars.
type Kind int

const (
	KindStructuredPoints Kind = iota
	KindStructuredGrid
	KindUnstructuredGrid
	KindPolyData
)

// Kinds lists all dataset kind tokens accepted by ParseKind.
func Kinds() []string {
	return []string{"structured_points", "structured_grid", "unstructured_grid", "polydata"}
}

// ParseKind resolves a dataset-kind token, case-insensitively.
// Unrecognized tokens return ErrUnsupportedDatasetKind; there is no silent
// fallthrough.
func ParseKind(token string) (Kind, error) {
	switch strings.ToLower(token) {
	case "structured_points":
		return KindStructuredPoints, nil
	case "structured_grid":
		return KindStructuredGrid, nil
	case "unstructured_grid":
		return KindUnstructuredGrid, nil
	case "polydata":
		return KindPolyData, nil
	default:
		return 0, fmt.Errorf("%q: %w", token, ErrUnsupportedDatasetKind)
	}
}

// String returns the dataset kind token.
func (k Kind) String() string {
	switch k {
	case KindStructuredPoints:
		return "structured_points"
	case KindStructuredGrid:
		return "structured_grid"
	case KindUnstructuredGrid:
		return "unstructured_grid"
	case KindPolyData:
		return "polydata"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dataset is a fully specified export request for one legacy VTK file.
// Implementations validate before any file is created and encode the
// complete header and payload.
type Dataset interface {
	Kind() Kind

	validate() error
	encode(w *binary.Writer) error
}

// writeHeader emits the fixed two header lines and the mode declaration.
func writeHeader(w *binary.Writer, mode string) {
	w.WriteString("# vtk DataFile Version 2.0\n")
	w.WriteString("VTK from Matlab\n")
	w.WriteString(mode + "\n")
}

// ftoa formats spacing/origin values with the shortest decimal
// representation that round-trips.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
