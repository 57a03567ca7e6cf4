// Package rows reads and writes raw CSV records without imposing a schema.
//
// Records are plain []string field slices; row order is significant and is
// preserved by every function here.
package rows

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadAll reads every record from r. Records may have differing field counts.
func ReadAll(r io.Reader) ([][]string, error) {
	var recs [][]string
	err := Scan(r, func(rec []string) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Scan visits each record of r in order. A non-nil error from fn stops the
// scan and is returned unchanged.
func Scan(r io.Reader, fn func(rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Write writes records to w with standard CSV quoting.
func Write(w io.Writer, recs [][]string) error {
	cw := NewWriter(w)
	for _, rec := range recs {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// Writer appends records to an underlying CSV stream one at a time.
type Writer struct {
	cw *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

func (w *Writer) Write(rec []string) error {
	return w.cw.Write(rec)
}

// Flush writes buffered records and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
