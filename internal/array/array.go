// Package array flattens nested Go slices into the column-major linear
// order the legacy VTK grammar expects.
//
// VTK structured datasets index points with the first axis varying fastest.
// A Go [][]float64 is laid out row-major, so flattening transposes the
// storage: element (i,j,k) of the input lands at linear index
// i + n1*(j + n2*k). Missing trailing dimensions are treated as size 1.
package array

import "fmt"

// Infer determines the dimensions of a 1-D, 2-D or 3-D nested float64
// slice and returns its samples in column-major linear order.
//
// Ragged inputs (inner slices of unequal length) are rejected.
func Infer(v any) (dims [3]int, data []float64, err error) {
	switch m := v.(type) {
	case []float64:
		return infer1D(m)
	case [][]float64:
		return infer2D(m)
	case [][][]float64:
		return infer3D(m)
	default:
		return dims, nil, fmt.Errorf("unsupported grid type %T (want []float64, [][]float64 or [][][]float64)", v)
	}
}

func infer1D(m []float64) (dims [3]int, data []float64, err error) {
	dims = [3]int{len(m), 1, 1}
	data = make([]float64, len(m))
	copy(data, m)
	return dims, data, nil
}

func infer2D(m [][]float64) (dims [3]int, data []float64, err error) {
	n1 := len(m)
	if n1 == 0 {
		return [3]int{0, 1, 1}, nil, nil
	}
	n2 := len(m[0])
	dims = [3]int{n1, n2, 1}
	data = make([]float64, n1*n2)
	for i, row := range m {
		if len(row) != n2 {
			return dims, nil, fmt.Errorf("ragged slice: row %d has %d elements, want %d", i, len(row), n2)
		}
		for j, val := range row {
			data[i+n1*j] = val
		}
	}
	return dims, data, nil
}

func infer3D(m [][][]float64) (dims [3]int, data []float64, err error) {
	n1 := len(m)
	if n1 == 0 {
		return [3]int{0, 1, 1}, nil, nil
	}
	n2 := len(m[0])
	n3 := 0
	if n2 > 0 {
		n3 = len(m[0][0])
	}
	dims = [3]int{n1, n2, n3}
	data = make([]float64, n1*n2*n3)
	for i, plane := range m {
		if len(plane) != n2 {
			return dims, nil, fmt.Errorf("ragged slice: plane %d has %d rows, want %d", i, len(plane), n2)
		}
		for j, row := range plane {
			if len(row) != n3 {
				return dims, nil, fmt.Errorf("ragged slice: row (%d,%d) has %d elements, want %d", i, j, len(row), n3)
			}
			for k, val := range row {
				data[i+n1*(j+n2*k)] = val
			}
		}
	}
	return dims, data, nil
}
