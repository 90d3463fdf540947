package trajectory

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MinColumns is the narrowest row that carries a full pose.
const MinColumns = 7

// ErrUnrecognizedFormat is returned for arrays too narrow to hold a pose.
var ErrUnrecognizedFormat = errors.New("data format not recognized")

// Layout identifies where the position fields sit within a row.
type Layout int

const (
	LayoutUnknown Layout = iota
	// LayoutPose is tx ty tz qx qy qz qw.
	LayoutPose
	// LayoutTimestamped is timestamp tx ty tz qx qy qz qw.
	LayoutTimestamped
)

func (l Layout) String() string {
	switch l {
	case LayoutPose:
		return "pose"
	case LayoutTimestamped:
		return "timestamped"
	default:
		return "unknown"
	}
}

// PositionColumns returns the x, y and z column indices for the layout.
func (l Layout) PositionColumns() [3]int {
	if l == LayoutTimestamped {
		return [3]int{1, 2, 3}
	}
	return [3]int{0, 1, 2}
}

// DetectLayout maps a column count to a layout. Only exactly eight columns
// is treated as timestamped; every other count of seven or more reads the
// position from the first three columns.
func DetectLayout(cols int) (Layout, error) {
	switch {
	case cols == 8:
		return LayoutTimestamped, nil
	case cols >= MinColumns:
		return LayoutPose, nil
	default:
		return LayoutUnknown, fmt.Errorf("%w: expected at least %d columns, got %d",
			ErrUnrecognizedFormat, MinColumns, cols)
	}
}

// ExtractPositions selects the x, y and z columns of data according to its
// layout. The returned slices are copies.
func ExtractPositions(data mat.Matrix) (*Positions, error) {
	_, cols := data.Dims()
	layout, err := DetectLayout(cols)
	if err != nil {
		return nil, err
	}

	idx := layout.PositionColumns()
	p := &Positions{
		Layout: layout,
		X:      mat.Col(nil, idx[0], data),
		Y:      mat.Col(nil, idx[1], data),
		Z:      mat.Col(nil, idx[2], data),
	}
	if layout == LayoutTimestamped {
		p.Time = mat.Col(nil, 0, data)
	}
	return p, nil
}

// Extract is ExtractPositions for a loaded trajectory. A nil trajectory or an
// unrecognized layout yields nil; the latter is logged on the ops stream.
func Extract(t *Trajectory) *Positions {
	if t == nil {
		return nil
	}

	p, err := ExtractPositions(t.Data)
	if err != nil {
		opsf("Data format not recognized. Expected at least %d columns, got %d (%s)", MinColumns, t.Cols(), t.Path)
		return nil
	}
	return p
}
