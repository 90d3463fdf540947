// Package render draws trajectory comparison charts. The 3D view is an
// interactive HTML page built with go-echarts; the top-down view is a static
// image built with gonum/plot.
package render

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
)

// Options controls chart size and mark styling.
type Options struct {
	WidthInches  float64
	HeightInches float64
	// LineWidth is in points.
	LineWidth float64
	// MarkerSize is the start/end marker diameter in points.
	MarkerSize float64
	// Format is the image format for the top-down view: png, svg or pdf.
	Format string
	// AssetsHost overrides where the 3D page loads its scripts from.
	AssetsHost string
}

// DefaultOptions returns a 12×10 inch chart with 2pt lines and 10pt markers.
func DefaultOptions() Options {
	return Options{
		WidthInches:  12,
		HeightInches: 10,
		LineWidth:    2,
		MarkerSize:   10,
		Format:       "png",
	}
}

// Renderer draws a scene to w.
type Renderer interface {
	Render(w io.Writer, s *Scene) error
	// Extension is the file extension, including the dot.
	Extension() string
	ContentType() string
}

// New returns the renderer for view.
func New(view View, o Options) Renderer {
	if view == View3D {
		return &Chart3D{opts: o}
	}
	return &TopDown{opts: o}
}

// WriteFile renders s into dir/name plus the renderer's extension and
// returns the path written. Nothing is created unless rendering succeeds.
func WriteFile(fsys fsutil.FileSystem, dir, name string, r Renderer, s *Scene) (string, error) {
	path := filepath.Join(dir, name+r.Extension())

	var buf bytes.Buffer
	if err := r.Render(&buf, s); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := fsys.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	diagf("wrote %s chart to %s", s.View, path)
	return path, nil
}
