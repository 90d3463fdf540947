// Command trajplot draws two pose trajectory files on one chart for visual
// comparison.
//
// Usage:
//
//	trajplot [flags] <first-trajectory> <second-trajectory>
//
// Each file holds one pose per line, "tx ty tz qx qy qz qw" optionally
// preceded by a timestamp. By default a rotatable 3D chart is written as an
// HTML page; -view 2d (or -no-3d) writes a top-down X-Y image instead. With
// -listen the chart is also served over HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/compare"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/config"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/render"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/timeutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/version"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	ConfigPath   string
	Label1       string
	Label2       string
	View         string
	No3D         bool
	OutputDir    string
	OutputName   string
	Stamp        bool
	Format       string
	ManifestPath string
	Listen       string
	ShowVersion  bool

	Paths []string
	// set records which flags were given explicitly.
	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("trajplot", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a JSON plot config file")
	fs.StringVar(&f.Label1, "label1", "", "Legend label for the first trajectory")
	fs.StringVar(&f.Label2, "label2", "", "Legend label for the second trajectory")
	fs.StringVar(&f.View, "view", "", "Chart view: 3d or 2d (top-down)")
	fs.BoolVar(&f.No3D, "no-3d", false, "Treat 3D output as unavailable and fall back to the top-down view")
	fs.StringVar(&f.OutputDir, "out", "", "Output directory for the chart")
	fs.StringVar(&f.OutputName, "name", "", "Chart file name without extension")
	fs.BoolVar(&f.Stamp, "stamp", false, "Append the run time (YYYYMMDD_HHMMSS) to the chart file name")
	fs.StringVar(&f.Format, "format", "", "Top-down image format: png, svg or pdf")
	fs.StringVar(&f.ManifestPath, "manifest", "", "Write a JSON run manifest to this path")
	fs.StringVar(&f.Listen, "listen", "", "Serve the chart on this address until interrupted (e.g. localhost:8080)")
	fs.BoolVar(&f.ShowVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: trajplot [flags] <first-trajectory> <second-trajectory>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.ShowVersion {
		return f, nil
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, fmt.Errorf("expected 2 trajectory paths, got %d", fs.NArg())
	}
	f.Paths = fs.Args()
	return f, nil
}

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(cfg *config.PlotConfig, f *cliFlags) {
	overlay := map[string]**string{
		"label1": &cfg.Label1,
		"label2": &cfg.Label2,
		"view":   &cfg.View,
		"out":    &cfg.OutputDir,
		"name":   &cfg.OutputName,
		"format": &cfg.Format,
		"listen": &cfg.Listen,
	}
	values := map[string]string{
		"label1": f.Label1,
		"label2": f.Label2,
		"view":   f.View,
		"out":    f.OutputDir,
		"name":   f.OutputName,
		"format": f.Format,
		"listen": f.Listen,
	}
	for name, dst := range overlay {
		if f.set[name] {
			v := values[name]
			*dst = &v
		}
	}
	if f.Stamp {
		stamp := true
		cfg.TimestampName = &stamp
	}
	if f.No3D {
		disabled := false
		cfg.Enable3D = &disabled
	}
}

// runConfig turns a validated plot config into a pipeline config.
func runConfig(cfg *config.PlotConfig, paths []string) (compare.Config, error) {
	view, err := render.ParseView(cfg.GetView())
	if err != nil {
		return compare.Config{}, err
	}

	return compare.Config{
		First:        compare.Input{Path: paths[0], Label: cfg.GetLabel1()},
		Second:       compare.Input{Path: paths[1], Label: cfg.GetLabel2()},
		View:         view,
		Capabilities: render.Capabilities{ThreeD: cfg.GetEnable3D()},
		Options: render.Options{
			WidthInches:  cfg.GetWidthInches(),
			HeightInches: cfg.GetHeightInches(),
			LineWidth:    cfg.GetLineWidth(),
			MarkerSize:   cfg.GetMarkerSize(),
			Format:       cfg.GetFormat(),
			AssetsHost:   cfg.GetAssetsHost(),
		},
		OutputDir:   cfg.GetOutputDir(),
		OutputName:  cfg.GetOutputName(),
		StampOutput: cfg.GetTimestampName(),
	}, nil
}

func loadConfig(fsys fsutil.FileSystem, f *cliFlags) (*config.PlotConfig, error) {
	cfg := &config.PlotConfig{}
	if f.ConfigPath != "" {
		loaded, err := config.LoadPlotConfig(fsys, f.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func main() {
	f, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if f.ShowVersion {
		fmt.Println("trajplot", version.String())
		return
	}

	trajectory.SetLogWriters(os.Stderr, os.Stdout)
	render.SetLogWriters(os.Stderr, os.Stdout)

	fsys := fsutil.OSFileSystem{}
	plotCfg, err := loadConfig(fsys, f)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg, err := runConfig(plotCfg, f.Paths)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.FS = fsys
	cfg.Clock = timeutil.RealClock{}

	res, err := compare.Run(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	createdAt := cfg.Clock.Now()
	if f.ManifestPath != "" {
		if err := compare.WriteManifest(fsys, f.ManifestPath, res.Manifest(createdAt)); err != nil {
			log.Printf("Warning: failed to write manifest: %v", err)
		} else {
			log.Printf("Run manifest written to: %s", f.ManifestPath)
		}
	}

	addr := plotCfg.GetListen()
	if addr == "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := compare.NewViewer(fsys, res, createdAt, nil).Serve(ctx, addr); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
	log.Printf("Viewer closed")
}
