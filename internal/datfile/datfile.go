// Package datfile reads and writes the plain-text sample/spectrum record
// format.
//
// Each line holds four fields, x, y, Re(F) and Im(F), formatted as
// %23.16e and separated by a single space.
package datfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-harmonics/dsp/signal"
)

// FieldFormat is the verb used for every field.
const FieldFormat = "%23.16e"

const recordFormat = FieldFormat + " " + FieldFormat + " " + FieldFormat + " " + FieldFormat + "\n"

var (
	// ErrLengthMismatch is returned when table and spectrum lengths differ.
	ErrLengthMismatch = errors.New("datfile: table and spectrum lengths differ")
	// ErrMalformedRecord is returned by Read for a line that is not four floats.
	ErrMalformedRecord = errors.New("datfile: malformed record")
)

// Record is one parsed line.
type Record struct {
	X     float64
	Y     float64
	Coeff complex128
}

// AppendRecord appends the formatted line for one sample to dst.
func AppendRecord(dst []byte, x, y float64, c complex128) []byte {
	return fmt.Appendf(dst, recordFormat, x, y, real(c), imag(c))
}

// Write emits one record per table row. Lengths are validated before
// anything is written.
func Write(w io.Writer, table signal.Table, spectrum []complex128) error {
	if len(table) != len(spectrum) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(table), len(spectrum))
	}

	bw := bufio.NewWriter(w)
	var line []byte
	for i, p := range table {
		line = AppendRecord(line[:0], p.X, p.Y, spectrum[i])
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("datfile: write record %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("datfile: flush: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes the records to it.
// The file is closed on every return path; a close error is reported
// together with any write error.
func WriteFile(path string, table signal.Table, spectrum []complex128) (err error) {
	if len(table) != len(spectrum) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(table), len(spectrum))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("datfile: close %s: %w", path, cerr))
		}
	}()

	return Write(f, table, spectrum)
}

// Read parses records until EOF. Blank lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedRecord, line, len(fields))
		}

		var v [4]float64
		for i, s := range fields {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, line, err)
			}
			v[i] = f
		}
		out = append(out, Record{X: v[0], Y: v[1], Coeff: complex(v[2], v[3])})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("datfile: read: %w", err)
	}
	return out, nil
}

// ReadFile parses the records stored at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}
