package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

// pixelsPerInch converts Options sizes to page pixels.
const pixelsPerInch = 96

// Chart3D renders a scene as an interactive HTML page with a rotatable 3D
// chart.
type Chart3D struct {
	opts Options
}

func (r *Chart3D) Extension() string   { return ".html" }
func (r *Chart3D) ContentType() string { return "text/html; charset=utf-8" }

// Render writes the HTML page for s.
func (r *Chart3D) Render(w io.Writer, s *Scene) error {
	return r.chart(s).Render(w)
}

func (r *Chart3D) chart(s *Scene) *charts.Line3D {
	lo, hi := s.extent().equalRanges([]int{0, 1, 2}, []float64{1, 1, 1})

	c := charts.NewLine3D()
	initOpts := opts.Initialization{
		PageTitle: s.Title(),
		Width:     fmt.Sprintf("%dpx", int(r.opts.WidthInches*pixelsPerInch)),
		Height:    fmt.Sprintf("%dpx", int(r.opts.HeightInches*pixelsPerInch)),
	}
	if r.opts.AssetsHost != "" {
		initOpts.AssetsHost = r.opts.AssetsHost
	}
	c.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{Title: s.Title()}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Show: opts.Bool(true), Min: lo[0], Max: hi[0]}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Show: opts.Bool(true), Min: lo[1], Max: hi[1]}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Show: opts.Bool(true), Min: lo[2], Max: hi[2]}),
		charts.WithGrid3DOpts(opts.Grid3D{Show: opts.Bool(true), BoxWidth: 100, BoxHeight: 100, BoxDepth: 100}),
	)

	for _, ser := range s.Series {
		p := ser.Positions
		c.AddSeries(ser.LineName(), pathData(p),
			charts.WithLineStyleOpts(opts.LineStyle{Color: hexColor(ser.Style.Line), Width: float32(r.opts.LineWidth)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(ser.Style.Line)}),
		)
		c.AddSeries(ser.StartName(), []opts.Chart3DData{pointData(p, 0)},
			r.marker("circle", ser.Style.Start)...)
		c.AddSeries(ser.EndName(), []opts.Chart3DData{pointData(p, p.Len()-1)},
			r.marker("rect", ser.Style.End)...)
	}
	return c
}

// marker turns a line3D series into a single-point scatter3D series.
func (r *Chart3D) marker(symbol string, c color.RGBA) []charts.SeriesOpts {
	size := r.opts.MarkerSize
	return []charts.SeriesOpts{
		charts.WithSeriesOpts(func(s *charts.SingleSeries) {
			s.Type = types.ChartScatter3D
			s.Symbol = symbol
			s.SymbolSize = size
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(c)}),
	}
}

func pathData(p *trajectory.Positions) []opts.Chart3DData {
	data := make([]opts.Chart3DData, p.Len())
	for i := range data {
		data[i] = pointData(p, i)
	}
	return data
}

func pointData(p *trajectory.Positions, i int) opts.Chart3DData {
	return opts.Chart3DData{Value: []interface{}{p.X[i], p.Y[i], p.Z[i]}}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
