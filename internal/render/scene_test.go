package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

func TestNewScene_MissingPositions(t *testing.T) {
	_, err := NewScene(View3D,
		Series{Label: "a", Positions: positions(t, 3, 7)},
		Series{Label: "b"},
	)
	assert.ErrorIs(t, err, ErrMissingSeries)

	_, err = NewScene(View3D, Series{Label: "empty", Positions: &trajectory.Positions{}})
	assert.ErrorIs(t, err, ErrMissingSeries)
}

func TestNewScene_NonFinitePositions(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := positions(t, 3, 7)
			p.Z[1] = tt.value

			_, err := NewScene(View3D, Series{Label: "bad", Positions: p})
			assert.ErrorIs(t, err, ErrNonFinite)
		})
	}
}

func TestNewScene_DefaultStyles(t *testing.T) {
	s := comparisonScene(t, View3D)

	require.Len(t, s.Series, 2)
	assert.Equal(t, DefaultStyles[0], s.Series[0].Style)
	assert.Equal(t, DefaultStyles[1], s.Series[1].Style)
	assert.NotEqual(t, s.Series[0].Style.Line, s.Series[1].Style.Line)
}

func TestNewScene_KeepsExplicitStyle(t *testing.T) {
	green := color.RGBA{G: 128, A: 255}
	s, err := NewScene(ViewTopDown, Series{
		Label:     "custom",
		Positions: positions(t, 3, 7),
		Style:     Style{Line: green, Start: green, End: green},
	})
	require.NoError(t, err)
	assert.Equal(t, green, s.Series[0].Style.Line)
}

func TestScene_Title(t *testing.T) {
	assert.Equal(t, "Trajectory Comparison (3D View)", comparisonScene(t, View3D).Title())
	assert.Equal(t, "Trajectory Comparison (Top-Down View)", comparisonScene(t, ViewTopDown).Title())
}

func TestScene_Legend(t *testing.T) {
	legend := comparisonScene(t, View3D).Legend()

	names := make([]string, len(legend))
	for i, e := range legend {
		names[i] = e.Name
	}
	assert.Equal(t, []string{
		"Trajectory: Frame Trajectory",
		"Frame Trajectory Start",
		"Frame Trajectory End",
		"Trajectory: Keyframe Trajectory",
		"Keyframe Trajectory Start",
		"Keyframe Trajectory End",
	}, names)
	assert.Equal(t, MarkStart, legend[1].Mark)
	assert.Equal(t, DefaultStyles[1].End, legend[5].Color)
}

func TestExtent_EqualRanges(t *testing.T) {
	e := extent{min: [3]float64{0, 0, 0}, max: [3]float64{10, 2, 0}}

	lo, hi := e.equalRanges([]int{0, 1}, []float64{1, 1})
	assert.Equal(t, []float64{0, -4}, lo)
	assert.Equal(t, []float64{10, 6}, hi)

	// A wide canvas needs a wider x range for the same y range.
	lo, hi = e.equalRanges([]int{0, 1}, []float64{2, 1})
	assert.InDelta(t, 10.0, hi[0]-lo[0], 1e-12)
	assert.InDelta(t, 5.0, hi[1]-lo[1], 1e-12)
}

func TestExtent_Degenerate(t *testing.T) {
	e := extent{min: [3]float64{1, 1, 1}, max: [3]float64{1, 1, 1}}

	lo, hi := e.equalRanges([]int{0, 1, 2}, []float64{1, 1, 1})
	for k := 0; k < 3; k++ {
		assert.Less(t, lo[k], 1.0)
		assert.Greater(t, hi[k], 1.0)
	}
}

func TestScene_ExtentCoversAllSeries(t *testing.T) {
	e := comparisonScene(t, View3D).extent()

	// Frame: x = col 1 over 10 rows; Keyframe: x = col 0 over 15 rows.
	assert.Equal(t, 0.0, e.min[0])
	assert.Equal(t, 1400.0, e.max[0])
	assert.Equal(t, 1.0, e.min[1])
	assert.Equal(t, 1401.0, e.max[1])
}
