package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ccollicutt/wellplot/pkg/tops"
)

var (
	topColor      = drawing.Color{R: 90, G: 90, B: 90, A: 255}
	topLabelColor = drawing.Color{R: 40, G: 40, B: 40, A: 255}
)

// window is the plotted depth interval, top < base.
type window struct {
	top, base float64
}

func (w window) contains(d float64) bool {
	return d >= w.top && d <= w.base
}

// axes converts data coordinates to pixels inside a chart canvas, using the
// same translation go-chart applies to its series.
type axes struct {
	x   chart.ContinuousRange
	y   chart.ContinuousRange
	box chart.Box
}

func newAxes(cb chart.Box, xr chart.ContinuousRange, win window) axes {
	xr.Domain = cb.Width()
	return axes{
		x:   xr,
		y:   chart.ContinuousRange{Min: win.top, Max: win.base, Descending: true, Domain: cb.Height()},
		box: cb,
	}
}

func (a axes) px(x float64) int { return a.box.Left + a.x.Translate(x) }
func (a axes) py(d float64) int { return a.box.Bottom - a.y.Translate(d) }

// band shades the area between two curves over samples where both are
// present and keep returns true.
type band struct {
	from, to []float64
	tf       transform
	keep     func(from, to float64) bool
	color    drawing.Color
}

func (b band) renderable(depth []float64, xr chart.ContinuousRange, win window) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, _ chart.Style) {
		a := newAxes(cb, xr, win)
		lo, hi := xr.Min, xr.Max

		var run []int
		fill := func() {
			if len(run) >= 2 {
				b.fill(r, a, run, depth, lo, hi)
			}
			run = run[:0]
		}

		n := min(len(b.from), len(b.to), len(depth))
		for i := 0; i < n; i++ {
			f, t, d := b.from[i], b.to[i], depth[i]
			if math.IsNaN(f) || math.IsNaN(t) || math.IsNaN(d) || !win.contains(d) || !b.keep(f, t) {
				fill()
				continue
			}
			if _, ok := b.tf(f); !ok {
				fill()
				continue
			}
			if _, ok := b.tf(t); !ok {
				fill()
				continue
			}
			run = append(run, i)
		}
		fill()
	}
}

func (b band) fill(r chart.Renderer, a axes, run []int, depth []float64, lo, hi float64) {
	r.ResetStyle()
	r.SetFillColor(b.color)
	r.SetStrokeWidth(0)

	x := func(v float64) int {
		tv, _ := b.tf(v)
		return a.px(clamp(tv, lo, hi))
	}

	first := run[0]
	r.MoveTo(x(b.from[first]), a.py(depth[first]))
	for _, i := range run[1:] {
		r.LineTo(x(b.from[i]), a.py(depth[i]))
	}
	for j := len(run) - 1; j >= 0; j-- {
		i := run[j]
		r.LineTo(x(b.to[i]), a.py(depth[i]))
	}
	r.Close()
	r.Fill()
}

// topsRenderable draws a dashed line across the canvas at each top and,
// when labeled, writes its name above the line.
func topsRenderable(markers []tops.Top, win window, labeled bool) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		a := newAxes(cb, chart.ContinuousRange{Min: 0, Max: 1}, win)
		for _, top := range markers {
			y := a.py(top.Depth)

			r.ResetStyle()
			r.SetStrokeColor(topColor)
			r.SetStrokeWidth(1)
			r.SetStrokeDashArray(dashed)
			r.MoveTo(cb.Left, y)
			r.LineTo(cb.Right, y)
			r.Stroke()

			if labeled && top.Name != "" {
				chart.Style{
					FontSize:  8,
					FontColor: topLabelColor,
				}.InheritFrom(defaults).WriteTextOptionsToRenderer(r)
				r.Text(top.Name, cb.Left+4, y-3)
			}
		}
	}
}

// scale is a secondary tick scale drawn along the top edge of the plot area.
// tf maps scale values onto the track's x axis.
type scale struct {
	ticks []chart.Tick
	tf    transform
	color drawing.Color
}

func (s scale) renderable(xr chart.ContinuousRange, win window) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		a := newAxes(cb, xr, win)
		text := chart.Style{FontSize: 7, FontColor: s.color}.InheritFrom(defaults)
		for _, t := range s.ticks {
			v, ok := s.tf(t.Value)
			if !ok {
				continue
			}
			x := a.px(clamp(v, xr.Min, xr.Max))

			r.ResetStyle()
			r.SetStrokeColor(s.color)
			r.SetStrokeWidth(1)
			r.MoveTo(x, cb.Top)
			r.LineTo(x, cb.Top+4)
			r.Stroke()

			text.WriteTextOptionsToRenderer(r)
			tb := r.MeasureText(t.Label)
			r.Text(t.Label, x-tb.Width()/2, cb.Top-3)
		}
	}
}
