// Package testutil provides trajectory fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Value is the fixture value at row i, column j. Column j of every row is
// distinguishable from its neighbours, which makes column selection easy to
// assert.
func Value(i, j int) float64 {
	return float64(i)*100 + float64(j)
}

// Column returns the expected values of column j over rows fixture rows.
func Column(rows, j int) []float64 {
	out := make([]float64, rows)
	for i := range out {
		out[i] = Value(i, j)
	}
	return out
}

// TrajectoryText renders a rows×cols fixture in the whitespace-separated
// trajectory format.
func TrajectoryText(rows, cols int) string {
	var b strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(Value(i, j), 'f', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTrajectory writes a rows×cols fixture into dir and returns its path.
func WriteTrajectory(t *testing.T, dir, name string, rows, cols int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(TrajectoryText(rows, cols)), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}
