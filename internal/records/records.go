// Package records reads and writes the numeric record files used by the
// mergesort command: a count n followed by n whitespace separated numbers.
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrShortInput is returned when the input holds fewer values than its count
// announces.
var ErrShortInput = errors.New("records: fewer values than announced")

// maxPrealloc bounds the capacity reserved before any value has been read.
const maxPrealloc = 1 << 16

// Read parses a record stream. Values past the announced count are ignored.
func Read(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading count: %w", err)
		}
		return nil, fmt.Errorf("reading count: %w", io.ErrUnexpectedEOF)
	}
	n, err := strconv.ParseUint(sc.Text(), 10, 31)
	if err != nil {
		return nil, fmt.Errorf("parsing count %q: %w", sc.Text(), err)
	}

	// n comes from the input; grow with append instead of trusting it.
	values := make([]float64, 0, min(n, maxPrealloc))
	for uint64(len(values)) < n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading value %d: %w", len(values), err)
			}
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, len(values), n)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing value %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Write prints one value per line with six decimals.
func Write(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := fmt.Fprintf(bw, "%f\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
