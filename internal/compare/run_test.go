package compare

import (
	"bytes"
	"encoding/json"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/render"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/testutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/timeutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

// newFixture returns a filesystem holding a 10×8 and a 15×7 trajectory and
// a run config comparing them.
func newFixture(t *testing.T) (*fsutil.MemoryFileSystem, Config, *bytes.Buffer) {
	t.Helper()

	mfs := fsutil.NewMemoryFileSystem()
	mfs.AddFile("/data/f_dataset-MH02_mono.txt", []byte(testutil.TrajectoryText(10, 8)))
	mfs.AddFile("/data/kf_dataset-MH02_mono.txt", []byte(testutil.TrajectoryText(15, 7)))

	var logBuf bytes.Buffer
	cfg := Config{
		First:        Input{Path: "/data/f_dataset-MH02_mono.txt", Label: "Frame Trajectory"},
		Second:       Input{Path: "/data/kf_dataset-MH02_mono.txt", Label: "Keyframe Trajectory"},
		View:         render.View3D,
		Capabilities: render.Capabilities{ThreeD: true},
		Options:      render.DefaultOptions(),
		OutputDir:    "/out",
		OutputName:   "comparison",
		FS:           mfs,
		Clock:        timeutil.FixedClock{T: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
		Logger:       log.New(&logBuf, "", 0),
	}
	return mfs, cfg, &logBuf
}

func captureTrajectoryLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var ops bytes.Buffer
	trajectory.SetLogWriters(&ops, nil)
	t.Cleanup(func() { trajectory.SetLogWriters(nil, nil) })
	return &ops
}

func TestRun_3D(t *testing.T) {
	mfs, cfg, logBuf := newFixture(t)

	res, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, render.View3D, res.View)
	assert.Equal(t, "/out/comparison.html", res.OutputPath)
	assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)

	require.Len(t, res.Inputs, 2)
	assert.Equal(t, 10, res.Inputs[0].Rows)
	assert.Equal(t, 8, res.Inputs[0].Cols)
	assert.Equal(t, "timestamped", res.Inputs[0].Summary.Layout)
	assert.Equal(t, 15, res.Inputs[1].Rows)
	assert.Equal(t, 7, res.Inputs[1].Cols)
	assert.Equal(t, "pose", res.Inputs[1].Summary.Layout)

	html, err := mfs.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Trajectory: Frame Trajectory")
	assert.Contains(t, string(html), "Keyframe Trajectory End")
	assert.Contains(t, logBuf.String(), "Rendered Trajectory Comparison (3D View) to /out/comparison.html")
}

func TestRun_FallsBackWithout3D(t *testing.T) {
	mfs, cfg, _ := newFixture(t)
	cfg.Capabilities = render.Capabilities{ThreeD: false}

	res, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, render.ViewTopDown, res.View)
	assert.Equal(t, "/out/comparison.png", res.OutputPath)
	assert.Equal(t, []string{
		"/data/f_dataset-MH02_mono.txt",
		"/data/kf_dataset-MH02_mono.txt",
		"/out/comparison.png",
	}, mfs.Files())
}

func TestRun_MissingFirstFile(t *testing.T) {
	ops := captureTrajectoryLogs(t)
	mfs, cfg, logBuf := newFixture(t)
	cfg.First.Path = "/data/missing.txt"

	res, err := Run(cfg)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotRendered)
	assert.Contains(t, err.Error(), "/data/missing.txt")
	assert.NotContains(t, err.Error(), "kf_dataset")

	assert.Contains(t, ops.String(), "Error reading file '/data/missing.txt'")
	assert.Contains(t, logBuf.String(), "Failed to load one or both trajectory files")

	// Nothing drawn.
	assert.Len(t, mfs.Files(), 2)
}

func TestRun_StampedOutputName(t *testing.T) {
	_, cfg, _ := newFixture(t)
	cfg.StampOutput = true

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/out/comparison_20261018_093000.html", res.OutputPath)
}

func TestRun_NonFiniteInput(t *testing.T) {
	tests := []struct {
		name string
		view render.View
	}{
		{"3d", render.View3D},
		{"top-down", render.ViewTopDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := captureTrajectoryLogs(t)
			mfs, cfg, _ := newFixture(t)
			mfs.AddFile("/data/nan.txt", []byte("0 0 0 0 0 0 1\nnan 1 1 0 0 0 1\n2 2 2 0 0 0 1\n"))
			cfg.Second.Path = "/data/nan.txt"
			cfg.View = tt.view
			before := mfs.Files()

			res, err := Run(cfg)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrNotRendered)
			assert.Contains(t, err.Error(), "/data/nan.txt")
			assert.Contains(t, ops.String(), "line 2")
			assert.Equal(t, before, mfs.Files())
		})
	}
}

func TestRun_UnrecognizedLayout(t *testing.T) {
	ops := captureTrajectoryLogs(t)
	mfs, cfg, _ := newFixture(t)
	mfs.AddFile("/data/narrow.txt", []byte(testutil.TrajectoryText(5, 6)))
	cfg.Second.Path = "/data/narrow.txt"

	res, err := Run(cfg)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotRendered)
	assert.Contains(t, err.Error(), "unrecognized layout in /data/narrow.txt")
	assert.Contains(t, ops.String(), "Data format not recognized")
	assert.Len(t, mfs.Files(), 3)
}

func TestResult_Manifest(t *testing.T) {
	mfs, cfg, _ := newFixture(t)

	res, err := Run(cfg)
	require.NoError(t, err)

	created := cfg.Clock.Now()
	require.NoError(t, WriteManifest(mfs, "/out/manifest.json", res.Manifest(created)))

	data, err := mfs.ReadFile("/out/manifest.json")
	require.NoError(t, err)

	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, res.RunID, got.RunID)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Equal(t, "3d", got.View)
	assert.Equal(t, "/out/comparison.html", got.Output)
	require.Len(t, got.Inputs, 2)
	assert.Equal(t, "Keyframe Trajectory", got.Inputs[1].Label)
	assert.Equal(t, 15, got.Inputs[1].Summary.Samples)
	assert.NotEmpty(t, got.Version)
}
