// Package compare runs the load, extract and render pipeline for a pair of
// trajectory files.
package compare

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/render"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/timeutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

// ErrNotRendered is returned when a trajectory could not be loaded or has an
// unrecognized layout, so no chart was produced.
var ErrNotRendered = errors.New("trajectory comparison not rendered")

// Input names one trajectory file and its legend label.
type Input struct {
	Path  string
	Label string
}

// Config holds everything needed for one comparison run.
type Config struct {
	First  Input
	Second Input

	View         render.View
	Capabilities render.Capabilities
	Options      render.Options

	OutputDir  string
	OutputName string
	// StampOutput appends the run start time to OutputName.
	StampOutput bool

	FS     fsutil.FileSystem // nil means the OS filesystem
	Clock  timeutil.Clock    // nil means the real clock
	Logger *log.Logger       // nil means log.Default()
}

// InputResult describes one loaded trajectory.
type InputResult struct {
	Path    string             `json:"path"`
	Label   string             `json:"label"`
	Rows    int                `json:"rows"`
	Cols    int                `json:"cols"`
	Summary trajectory.Summary `json:"summary"`
}

// Result describes a completed run.
type Result struct {
	RunID       string
	View        render.View
	Inputs      []InputResult
	OutputPath  string
	ContentType string
}

type loaded struct {
	input Input
	traj  *trajectory.Trajectory
	pos   *trajectory.Positions
}

// Run loads both trajectories, extracts their positions and writes one chart
// containing both. If either trajectory is unusable nothing is drawn and the
// returned error wraps ErrNotRendered.
func Run(cfg Config) (*Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	fsys := cfg.FS
	if fsys == nil {
		fsys = fsutil.OSFileSystem{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	started := clock.Now()

	pair := []loaded{{input: cfg.First}, {input: cfg.Second}}

	var failed []string
	for i := range pair {
		pair[i].traj = trajectory.Read(fsys, pair[i].input.Path)
		if pair[i].traj == nil {
			failed = append(failed, strings.TrimSpace(pair[i].input.Path))
		}
	}
	if len(failed) > 0 {
		logger.Printf("Failed to load one or both trajectory files")
		return nil, fmt.Errorf("%w: could not load %s", ErrNotRendered, strings.Join(failed, ", "))
	}

	for i := range pair {
		pair[i].pos = trajectory.Extract(pair[i].traj)
		if pair[i].pos == nil {
			failed = append(failed, pair[i].traj.Path)
		}
	}
	if len(failed) > 0 {
		return nil, fmt.Errorf("%w: unrecognized layout in %s", ErrNotRendered, strings.Join(failed, ", "))
	}

	view := render.SelectView(cfg.View, cfg.Capabilities)
	series := make([]render.Series, len(pair))
	inputs := make([]InputResult, len(pair))
	for i, l := range pair {
		series[i] = render.Series{Label: l.input.Label, Positions: l.pos}

		rows, cols := l.traj.Shape()
		summary := trajectory.Summarize(l.pos)
		trajectory.LogSummary(l.input.Label, summary)
		inputs[i] = InputResult{Path: l.traj.Path, Label: l.input.Label, Rows: rows, Cols: cols, Summary: summary}
	}

	scene, err := render.NewScene(view, series...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRendered, err)
	}

	name := cfg.OutputName
	if cfg.StampOutput {
		name += "_" + timeutil.FormatTimestamp(started)
	}

	r := render.New(view, cfg.Options)
	path, err := render.WriteFile(fsys, cfg.OutputDir, name, r, scene)
	if err != nil {
		return nil, err
	}

	logger.Printf("Rendered %s to %s in %s", scene.Title(), path, clock.Since(started))
	return &Result{
		RunID:       uuid.NewString(),
		View:        view,
		Inputs:      inputs,
		OutputPath:  path,
		ContentType: r.ContentType(),
	}, nil
}
