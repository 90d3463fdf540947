package trajectory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty is returned when a file holds no numeric rows.
	ErrEmpty = errors.New("no data rows")
	// ErrRaggedRows is returned when rows disagree on their column count.
	ErrRaggedRows = errors.New("inconsistent column count")
	// ErrNonFinite is returned for NaN or infinite fields.
	ErrNonFinite = errors.New("non-finite value")
)

// maxLineBytes bounds a single row of text.
const maxLineBytes = 1 << 20

// ParseError reports the 1-based line at which parsing failed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads whitespace-separated numeric rows into an N×M matrix.
// Blank lines and anything after a '#' are ignored. Every remaining row must
// have the same number of finite fields.
func Parse(r io.Reader) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		values []float64
		rows   int
		cols   int
		line   int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("%w: expected %d columns, got %d", ErrRaggedRows, cols, len(fields)),
			}
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: %q", ErrNonFinite, field)}
			}
			values = append(values, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmpty
	}

	return mat.NewDense(rows, cols, values), nil
}
