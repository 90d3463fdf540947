package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/trajectory"
)

// TopDown renders the X-Y projection of a scene as a static image.
type TopDown struct {
	opts Options
}

func (r *TopDown) Extension() string { return "." + r.format() }

func (r *TopDown) ContentType() string {
	switch r.format() {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	default:
		return "image/png"
	}
}

func (r *TopDown) format() string {
	if r.opts.Format == "" {
		return "png"
	}
	return r.opts.Format
}

// seriesLayers are the plotters drawn for one series.
type seriesLayers struct {
	line       *plotter.Line
	start, end *plotter.Scatter
}

// Render draws the scene and encodes it in the configured format.
func (r *TopDown) Render(w io.Writer, s *Scene) error {
	p, _, err := r.plot(s)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(r.opts.WidthInches)*vg.Inch, vg.Length(r.opts.HeightInches)*vg.Inch, r.format())
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.format(), err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func (r *TopDown) plot(s *Scene) (*plot.Plot, []seriesLayers, error) {
	p := plot.New()
	p.Title.Text = s.Title()
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	layers := make([]seriesLayers, 0, len(s.Series))
	for _, ser := range s.Series {
		l, err := r.layers(ser)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ser.Label, err)
		}
		p.Add(l.line, l.start, l.end)
		p.Legend.Add(ser.LineName(), l.line)
		p.Legend.Add(ser.StartName(), l.start)
		p.Legend.Add(ser.EndName(), l.end)
		layers = append(layers, l)
	}

	lo, hi := s.extent().equalRanges([]int{0, 1}, []float64{r.opts.WidthInches, r.opts.HeightInches})
	p.X.Min, p.X.Max = lo[0], hi[0]
	p.Y.Min, p.Y.Max = lo[1], hi[1]

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, layers, nil
}

func (r *TopDown) layers(ser Series) (seriesLayers, error) {
	pts := topDownXYs(ser.Positions)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return seriesLayers{}, err
	}
	line.Color = ser.Style.Line
	line.Width = vg.Points(r.opts.LineWidth)

	start, err := r.marker(pts[0], ser.Style.Start, draw.CircleGlyph{})
	if err != nil {
		return seriesLayers{}, err
	}
	end, err := r.marker(pts[len(pts)-1], ser.Style.End, draw.BoxGlyph{})
	if err != nil {
		return seriesLayers{}, err
	}

	return seriesLayers{line: line, start: start, end: end}, nil
}

func (r *TopDown) marker(pt plotter.XY, c color.Color, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(plotter.XYs{pt})
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(r.opts.MarkerSize / 2),
		Shape:  shape,
	}
	return sc, nil
}

func topDownXYs(p *trajectory.Positions) plotter.XYs {
	pts := make(plotter.XYs, p.Len())
	for i := range pts {
		pts[i].X = p.X[i]
		pts[i].Y = p.Y[i]
	}
	return pts
}
