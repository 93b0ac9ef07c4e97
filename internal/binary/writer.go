// Package binary provides low-level binary I/O for writing legacy VTK files.
package binary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Config controls how numeric payloads are encoded.
type Config struct {
	// ByteOrder for binary payloads. Legacy VTK requires big-endian;
	// a nil value defaults to binary.BigEndian.
	ByteOrder binary.ByteOrder
}

// Writer emits the text/binary hybrid stream of a legacy VTK file.
//
// The stream is strictly sequential, so all write methods record the first
// error and turn subsequent calls into no-ops; callers check Err (or Flush)
// once after a run of writes instead of after every line.
type Writer struct {
	w     *bufio.Writer
	order binary.ByteOrder
	buf   [4]byte
	err   error
}

// NewWriter creates a writer with the given configuration.
func NewWriter(w io.Writer, cfg Config) *Writer {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.BigEndian
	}
	return &Writer{
		w:     bufio.NewWriter(w),
		order: order,
	}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// ByteOrder returns the configured byte order.
func (w *Writer) ByteOrder() binary.ByteOrder {
	return w.order
}

// WriteString writes a literal text segment.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Printf writes a formatted text segment.
func (w *Writer) Printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// WriteFloat32 writes one value as an IEEE-754 32-bit float in the
// configured byte order.
func (w *Writer) WriteFloat32(v float64) {
	if w.err != nil {
		return
	}
	w.order.PutUint32(w.buf[:], math.Float32bits(float32(v)))
	_, w.err = w.w.Write(w.buf[:])
}

// WriteFloat32s writes each value as a 32-bit float, no padding between
// values.
func (w *Writer) WriteFloat32s(vals []float64) {
	for _, v := range vals {
		w.WriteFloat32(v)
		if w.err != nil {
			return
		}
	}
}

// WriteFloat32Triples interleaves three equally sized arrays as
// (a[i], b[i], c[i]) 32-bit float triples.
func (w *Writer) WriteFloat32Triples(a, b, c []float64) {
	for i := range a {
		w.WriteFloat32(a[i])
		w.WriteFloat32(b[i])
		w.WriteFloat32(c[i])
		if w.err != nil {
			return
		}
	}
}

// Flush writes buffered data to the underlying stream and reports the
// first error of the whole write sequence.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}
