package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
)

// maxConfigSize bounds the config file read into memory.
const maxConfigSize = 1 * 1024 * 1024 // 1MB

// PlotConfig holds the chart settings for a comparison run. Every field is
// optional; the Get* accessors supply defaults for anything left unset, so a
// partial file is safe.
type PlotConfig struct {
	// Series labels
	Label1 *string `json:"label1,omitempty"`
	Label2 *string `json:"label2,omitempty"`

	// View selection
	View     *string `json:"view,omitempty"` // "3d" or "2d"
	Enable3D *bool   `json:"enable_3d,omitempty"`

	// Output
	OutputDir  *string `json:"output_dir,omitempty"`
	OutputName *string `json:"output_name,omitempty"`
	Format     *string `json:"format,omitempty"` // top-down image: png, svg, pdf
	// Append the run start time (YYYYMMDD_HHMMSS) to output_name
	TimestampName *bool `json:"timestamp_name,omitempty"`

	// Chart geometry
	WidthInches  *float64 `json:"width_inches,omitempty"`
	HeightInches *float64 `json:"height_inches,omitempty"`
	LineWidth    *float64 `json:"line_width,omitempty"`
	MarkerSize   *float64 `json:"marker_size,omitempty"`

	// 3D page script host, empty for the go-echarts CDN
	AssetsHost *string `json:"assets_host,omitempty"`

	// Interactive viewer address, empty for headless output only
	Listen *string `json:"listen,omitempty"`
}

// LoadPlotConfig reads a PlotConfig from a JSON file. The path must have a
// .json extension and the file must be under 1MB.
func LoadPlotConfig(fsys fsutil.FileSystem, path string) (*PlotConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &PlotConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c *PlotConfig) Validate() error {
	if c.View != nil {
		switch strings.ToLower(strings.TrimSpace(*c.View)) {
		case "3d", "2d", "top-down", "topdown":
		default:
			return fmt.Errorf("view must be 3d or 2d, got %q", *c.View)
		}
	}

	if c.Format != nil {
		switch *c.Format {
		case "png", "svg", "pdf":
		default:
			return fmt.Errorf("format must be png, svg or pdf, got %q", *c.Format)
		}
	}

	if c.OutputName != nil && strings.ContainsRune(*c.OutputName, filepath.Separator) {
		return fmt.Errorf("output_name must not contain a path separator, got %q", *c.OutputName)
	}

	for name, v := range map[string]*float64{
		"width_inches":  c.WidthInches,
		"height_inches": c.HeightInches,
		"line_width":    c.LineWidth,
		"marker_size":   c.MarkerSize,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %f", name, *v)
		}
	}

	return nil
}

// GetLabel1 returns the first series label or the default.
func (c *PlotConfig) GetLabel1() string {
	if c.Label1 == nil {
		return "Frame Trajectory"
	}
	return *c.Label1
}

// GetLabel2 returns the second series label or the default.
func (c *PlotConfig) GetLabel2() string {
	if c.Label2 == nil {
		return "Keyframe Trajectory"
	}
	return *c.Label2
}

// GetView returns the requested view or "3d".
func (c *PlotConfig) GetView() string {
	if c.View == nil || *c.View == "" {
		return "3d"
	}
	return *c.View
}

// GetEnable3D reports whether 3D output is available.
func (c *PlotConfig) GetEnable3D() bool {
	if c.Enable3D == nil {
		return true
	}
	return *c.Enable3D
}

func (c *PlotConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "."
	}
	return *c.OutputDir
}

func (c *PlotConfig) GetOutputName() string {
	if c.OutputName == nil || *c.OutputName == "" {
		return "trajectory_comparison"
	}
	return *c.OutputName
}

func (c *PlotConfig) GetTimestampName() bool {
	if c.TimestampName == nil {
		return false
	}
	return *c.TimestampName
}

func (c *PlotConfig) GetFormat() string {
	if c.Format == nil || *c.Format == "" {
		return "png"
	}
	return *c.Format
}

func (c *PlotConfig) GetWidthInches() float64 {
	if c.WidthInches == nil {
		return 12
	}
	return *c.WidthInches
}

func (c *PlotConfig) GetHeightInches() float64 {
	if c.HeightInches == nil {
		return 10
	}
	return *c.HeightInches
}

func (c *PlotConfig) GetLineWidth() float64 {
	if c.LineWidth == nil {
		return 2
	}
	return *c.LineWidth
}

func (c *PlotConfig) GetMarkerSize() float64 {
	if c.MarkerSize == nil {
		return 10
	}
	return *c.MarkerSize
}

func (c *PlotConfig) GetAssetsHost() string {
	if c.AssetsHost == nil {
		return ""
	}
	return *c.AssetsHost
}

func (c *PlotConfig) GetListen() string {
	if c.Listen == nil {
		return ""
	}
	return *c.Listen
}
