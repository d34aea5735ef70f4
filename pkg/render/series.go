package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Line dash patterns.
var (
	dashed = []float64{6, 4}
	dotted = []float64{1.5, 3}
)

// transform maps a sample onto axis space. ok=false breaks the line.
type transform func(v float64) (x float64, ok bool)

func linear(v float64) (float64, bool) { return v, true }

func logarithmic(v float64) (float64, bool) {
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

// pefScale maps a PEF reading onto the porosity axis so pefMin lands on the
// porosity maximum (left edge) and pefMax on the porosity minimum.
func pefScale(pefMin, pefMax, porMin, porMax float64) transform {
	return func(v float64) (float64, bool) {
		return porMax - (v-pefMin)/(pefMax-pefMin)*(porMax-porMin), true
	}
}

// segment is a contiguous run of plottable samples.
type segment struct {
	x, depth []float64
}

// segments splits a curve into runs of samples that are present, accepted by
// tf and inside the depth window. x values are clamped to [lo, hi].
func segments(values, depth []float64, win window, tf transform, lo, hi float64) []segment {
	var out []segment
	var cur segment
	flush := func() {
		if len(cur.x) > 0 {
			out = append(out, cur)
		}
		cur = segment{}
	}

	n := min(len(values), len(depth))
	for i := 0; i < n; i++ {
		d := depth[i]
		if math.IsNaN(values[i]) || math.IsNaN(d) || !win.contains(d) {
			flush()
			continue
		}
		x, ok := tf(values[i])
		if !ok {
			flush()
			continue
		}
		cur.x = append(cur.x, clamp(x, lo, hi))
		cur.depth = append(cur.depth, d)
	}
	flush()
	return out
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// curve is one log line on a track.
type curve struct {
	values []float64
	tf     transform
	style  chart.Style
}

func lineStyle(color drawing.Color, dash []float64) chart.Style {
	return chart.Style{
		StrokeColor:     color,
		StrokeWidth:     1,
		StrokeDashArray: dash,
	}
}

// series converts a curve into one go-chart series per segment.
func (c curve) series(depth []float64, win window, lo, hi float64) []chart.Series {
	var out []chart.Series
	for _, seg := range segments(c.values, depth, win, c.tf, lo, hi) {
		out = append(out, chart.ContinuousSeries{
			Style:   c.style,
			XValues: seg.x,
			YValues: seg.depth,
		})
	}
	return out
}

// legendEntry is a series used only to draw a legend line.
func legendEntry(label string, style chart.Style) chart.Series {
	return chart.ContinuousSeries{Name: label, Style: style}
}

// placeholder is an invisible series that keeps a track renderable when no
// curve resolved.
func placeholder(lo, hi float64, win window) chart.Series {
	return chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: drawing.ColorTransparent,
			StrokeWidth: 1,
		},
		XValues: []float64{lo, hi},
		YValues: []float64{win.top, win.base},
	}
}
