package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

var (
	// ErrMissingSeries is returned when a series has no positions to draw.
	ErrMissingSeries = errors.New("missing trajectory positions")
	// ErrNonFinite is returned when a series holds NaN or infinite positions.
	ErrNonFinite = errors.New("non-finite trajectory positions")
)

// Style is the colour family of one trajectory.
type Style struct {
	Line  color.RGBA
	Start color.RGBA
	End   color.RGBA
}

// DefaultStyles are assigned to series in order: blues for the first
// trajectory, reds for the second.
var DefaultStyles = []Style{
	{
		Line:  color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Start: color.RGBA{R: 0, G: 255, B: 255, A: 255},
		End:   color.RGBA{R: 0, G: 0, B: 255, A: 255},
	},
	{
		Line:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Start: color.RGBA{R: 255, G: 0, B: 255, A: 255},
		End:   color.RGBA{R: 139, G: 0, B: 0, A: 255},
	},
}

// Series is one labelled trajectory in a scene.
type Series struct {
	Label     string
	Positions *trajectory.Positions
	Style     Style
}

// LineName is the legend entry for the series path.
func (s Series) LineName() string { return "Trajectory: " + s.Label }

// StartName is the legend entry for the first sample marker.
func (s Series) StartName() string { return s.Label + " Start" }

// EndName is the legend entry for the last sample marker.
func (s Series) EndName() string { return s.Label + " End" }

// Mark identifies what a legend entry stands for.
type Mark int

const (
	MarkLine Mark = iota
	MarkStart
	MarkEnd
)

// LegendEntry is one row of the chart legend.
type LegendEntry struct {
	Name  string
	Mark  Mark
	Color color.RGBA
}

// Scene is everything a renderer needs to draw one comparison chart.
type Scene struct {
	View   View
	Series []Series
}

// NewScene validates series and fills in default styles for any series
// without one.
func NewScene(view View, series ...Series) (*Scene, error) {
	out := make([]Series, len(series))
	for i, s := range series {
		if s.Positions == nil || s.Positions.Len() == 0 {
			return nil, fmt.Errorf("series %d (%q): %w", i, s.Label, ErrMissingSeries)
		}
		if !finite(s.Positions) {
			return nil, fmt.Errorf("series %d (%q): %w", i, s.Label, ErrNonFinite)
		}
		if s.Style == (Style{}) {
			s.Style = DefaultStyles[i%len(DefaultStyles)]
		}
		out[i] = s
	}
	return &Scene{View: view, Series: out}, nil
}

func finite(p *trajectory.Positions) bool {
	for _, axis := range [][]float64{p.X, p.Y, p.Z} {
		if floats.HasNaN(axis) {
			return false
		}
		for _, v := range axis {
			if math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Title describes the comparison and the view mode.
func (s *Scene) Title() string {
	return fmt.Sprintf("Trajectory Comparison (%s)", s.View.Description())
}

// Legend lists a line, start and end entry for every series.
func (s *Scene) Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, 3*len(s.Series))
	for _, ser := range s.Series {
		entries = append(entries,
			LegendEntry{Name: ser.LineName(), Mark: MarkLine, Color: ser.Style.Line},
			LegendEntry{Name: ser.StartName(), Mark: MarkStart, Color: ser.Style.Start},
			LegendEntry{Name: ser.EndName(), Mark: MarkEnd, Color: ser.Style.End},
		)
	}
	return entries
}

// extent is an axis-aligned box covering every sample in the scene.
type extent struct {
	min, max [3]float64
}

func (s *Scene) extent() extent {
	var e extent
	for i, ser := range s.Series {
		lo, hi := ser.Positions.Bounds()
		l := [3]float64{lo.X, lo.Y, lo.Z}
		h := [3]float64{hi.X, hi.Y, hi.Z}
		for k := 0; k < 3; k++ {
			if i == 0 || l[k] < e.min[k] {
				e.min[k] = l[k]
			}
			if i == 0 || h[k] > e.max[k] {
				e.max[k] = h[k]
			}
		}
	}
	return e
}

// equalRanges widens the given axes of e so that one data unit covers the
// same length on each, given the relative lengths of the axes on screen.
func (e extent) equalRanges(axes []int, screen []float64) (lo, hi []float64) {
	scale := 0.0
	for i, k := range axes {
		if span := (e.max[k] - e.min[k]) / screen[i]; span > scale {
			scale = span
		}
	}
	if scale == 0 {
		scale = 1
	}

	lo = make([]float64, len(axes))
	hi = make([]float64, len(axes))
	for i, k := range axes {
		mid := (e.min[k] + e.max[k]) / 2
		half := scale * screen[i] / 2
		lo[i], hi[i] = mid-half, mid+half
	}
	return lo, hi
}
