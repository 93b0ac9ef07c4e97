package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readRecords reads a CSV file into trimmed string records. The csv reader
// enforces a rectangular record shape.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%q is empty", path)
	}
	return records, nil
}

// ReadMatrix reads a CSV file as a 2-D float matrix, one row per record.
func ReadMatrix(path string) ([][]float64, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	m := make([][]float64, len(records))
	for i, rec := range records {
		m[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%q row %d col %d: %w", path, i+1, j+1, err)
			}
			m[i][j] = v
		}
	}
	return m, nil
}

// ReadVector reads a CSV file and flattens it row by row into one array.
// Both a single row and a single column work naturally.
func ReadVector(path string) ([]float64, error) {
	m, err := ReadMatrix(path)
	if err != nil {
		return nil, err
	}
	var flat []float64
	for _, row := range m {
		flat = append(flat, row...)
	}
	return flat, nil
}

// ReadIndexMatrix reads a CSV file as a matrix of 1-based integer point
// indices, one cell per record.
func ReadIndexMatrix(path string) ([][]int, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	m := make([][]int, len(records))
	for i, rec := range records {
		m[i] = make([]int, len(rec))
		for j, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%q row %d col %d: %w", path, i+1, j+1, err)
			}
			m[i][j] = v
		}
	}
	return m, nil
}
