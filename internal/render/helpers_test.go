package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/testutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

// positions builds a rows×cols fixture and extracts its positions.
func positions(t *testing.T, rows, cols int) *trajectory.Positions {
	t.Helper()
	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, testutil.Value(i, j))
		}
	}
	p, err := trajectory.ExtractPositions(m)
	require.NoError(t, err)
	return p
}

// comparisonScene is the 10×8 against 15×7 comparison.
func comparisonScene(t *testing.T, view View) *Scene {
	t.Helper()
	s, err := NewScene(view,
		Series{Label: "Frame Trajectory", Positions: positions(t, 10, 8)},
		Series{Label: "Keyframe Trajectory", Positions: positions(t, 15, 7)},
	)
	require.NoError(t, err)
	return s
}

func captureLogs(t *testing.T) (ops, diag *bytes.Buffer) {
	t.Helper()
	ops, diag = &bytes.Buffer{}, &bytes.Buffer{}
	SetLogWriters(ops, diag)
	t.Cleanup(func() { SetLogWriters(nil, nil) })
	return ops, diag
}
