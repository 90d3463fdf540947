package trajectory

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Positions is the (x, y, z) view of a trajectory. Time is only set for the
// timestamped layout.
type Positions struct {
	Layout  Layout
	X, Y, Z []float64
	Time    []float64
}

// Len returns the number of samples.
func (p *Positions) Len() int { return len(p.X) }

// At returns sample i as a vector.
func (p *Positions) At(i int) r3.Vec {
	return r3.Vec{X: p.X[i], Y: p.Y[i], Z: p.Z[i]}
}

// Start returns the first sample.
func (p *Positions) Start() r3.Vec { return p.At(0) }

// End returns the last sample.
func (p *Positions) End() r3.Vec { return p.At(p.Len() - 1) }

// Bounds returns the per-axis minimum and maximum. p must be non-empty.
func (p *Positions) Bounds() (lo, hi r3.Vec) {
	lo = r3.Vec{X: floats.Min(p.X), Y: floats.Min(p.Y), Z: floats.Min(p.Z)}
	hi = r3.Vec{X: floats.Max(p.X), Y: floats.Max(p.Y), Z: floats.Max(p.Z)}
	return lo, hi
}

// PathLength sums the straight-line distance between consecutive samples.
func (p *Positions) PathLength() float64 {
	var total float64
	for i := 1; i < p.Len(); i++ {
		total += r3.Norm(r3.Sub(p.At(i), p.At(i-1)))
	}
	return total
}

// Summary describes a trajectory for logs and the run manifest.
type Summary struct {
	Samples    int        `json:"samples"`
	Layout     string     `json:"layout"`
	PathLength float64    `json:"path_length"`
	Min        [3]float64 `json:"min"`
	Max        [3]float64 `json:"max"`

	// Timestamped layouts only, in the file's own time unit.
	TimeSpan     float64 `json:"time_span,omitempty"`
	MeanInterval float64 `json:"mean_interval,omitempty"`
}

// Summarize computes a Summary for p.
func Summarize(p *Positions) Summary {
	s := Summary{Samples: p.Len(), Layout: p.Layout.String()}
	if p.Len() == 0 {
		return s
	}

	lo, hi := p.Bounds()
	s.Min = [3]float64{lo.X, lo.Y, lo.Z}
	s.Max = [3]float64{hi.X, hi.Y, hi.Z}
	s.PathLength = p.PathLength()

	if n := len(p.Time); n > 1 {
		s.TimeSpan = p.Time[n-1] - p.Time[0]
		intervals := make([]float64, n-1)
		for i := 1; i < n; i++ {
			intervals[i-1] = p.Time[i] - p.Time[i-1]
		}
		s.MeanInterval = stat.Mean(intervals, nil)
	}
	return s
}

// LogSummary writes s to the diag stream.
func LogSummary(label string, s Summary) {
	diagf("%s: %d samples (%s), path length %.3f, x [%.3f, %.3f] y [%.3f, %.3f] z [%.3f, %.3f]",
		label, s.Samples, s.Layout, s.PathLength,
		s.Min[0], s.Max[0], s.Min[1], s.Max[1], s.Min[2], s.Max[2])
}
