// Package trajectory loads pose trajectory files and derives the position
// track used for plotting.
//
// A trajectory file is plain text, one pose per line, either
//
//	tx ty tz qx qy qz qw
//
// or, with a leading timestamp,
//
//	timestamp tx ty tz qx qy qz qw
package trajectory

import (
	"fmt"
	"strings"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
	"gonum.org/v1/gonum/mat"
)

// Trajectory is an ordered sequence of pose samples loaded from one file.
// Row order is the path order.
type Trajectory struct {
	Path string
	Data *mat.Dense
}

// Shape returns the row and column counts of the loaded array.
func (t *Trajectory) Shape() (rows, cols int) {
	return t.Data.Dims()
}

// Rows returns the number of samples.
func (t *Trajectory) Rows() int {
	r, _ := t.Data.Dims()
	return r
}

// Cols returns the number of fields per sample.
func (t *Trajectory) Cols() int {
	_, c := t.Data.Dims()
	return c
}

// Load expands path and parses the file it names.
func Load(fsys fsutil.FileSystem, path string) (*Trajectory, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", expanded, err)
	}

	return &Trajectory{Path: expanded, Data: data}, nil
}

// Read is Load for callers that only need to know whether a trajectory is
// available. Failures are logged on the ops stream and yield nil; on success
// the shape is logged on the diag stream.
func Read(fsys fsutil.FileSystem, path string) *Trajectory {
	t, err := Load(fsys, path)
	if err != nil {
		opsf("Error reading file '%s': %v", strings.TrimSpace(path), err)
		return nil
	}

	rows, cols := t.Shape()
	diagf("Successfully loaded %s with shape (%d, %d)", t.Path, rows, cols)
	return t
}
