package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ccollicutt/wellplot/pkg/mnemonic"
)

// Curve colors follow the usual petrophysical conventions.
var (
	colorGamma    = drawing.ColorBlack
	colorDeep     = drawing.ColorRed
	colorMedium   = drawing.ColorBlue
	colorShallow  = drawing.ColorBlack
	colorDensity  = drawing.ColorRed
	colorNeutron  = drawing.ColorGreen
	colorPEF      = drawing.ColorBlue
	colorGrid     = drawing.Color{R: 210, G: 210, B: 210, A: 255}
	colorLowRes   = drawing.Color{R: 173, G: 216, B: 230, A: 128}
	colorCrossing = drawing.Color{R: 255, G: 192, B: 203, A: 128}
)

// trackSpec describes one vertical panel before it is turned into a chart.
type trackSpec struct {
	name     string
	ratio    float64
	axisName string
	xrange   chart.ContinuousRange
	xticks   []chart.Tick
	curves   []curve
	bands    []band
	scales   []scale
	legend   []chart.Series

	// labels marks the track that carries depth and tops labels.
	labels bool
}

func (r *Renderer) gammaTrack(res []mnemonic.Result) trackSpec {
	g := r.tracks.Gamma
	t := trackSpec{
		name:     "gamma",
		ratio:    0.25,
		axisName: "GR (API)",
		xrange:   chart.ContinuousRange{Min: g.Min, Max: g.Max},
		xticks:   linearTicks(g.Min, g.Max, 3),
		labels:   true,
	}
	t.addCurve(res, mnemonic.CategoryGR, "Gamma Ray", linear, lineStyle(colorGamma, nil))
	return t
}

func (r *Renderer) resistivityTrack(res []mnemonic.Result) trackSpec {
	rc := r.tracks.Resistivity
	t := trackSpec{
		name:     "resistivity",
		ratio:    0.5,
		axisName: "Resistivity (ohm.m)",
		xticks:   decadeTicks(rc.Min, rc.Max),
	}
	lo, hi := tickBounds(t.xticks)
	t.xrange = chart.ContinuousRange{Min: lo, Max: hi}

	deep := t.addCurve(res, mnemonic.CategoryDeepRes, "Deep Res", logarithmic, lineStyle(colorDeep, dotted))
	t.addCurve(res, mnemonic.CategoryMedRes, "Medium Res", logarithmic, lineStyle(colorMedium, dashed))
	t.addCurve(res, mnemonic.CategoryShalRes, "Shallow Res", logarithmic, lineStyle(colorShallow, nil))

	if deep != nil {
		cutoff := make([]float64, len(deep))
		for i := range cutoff {
			cutoff[i] = rc.Cutoff
		}
		t.bands = append(t.bands, band{
			from:  deep,
			to:    cutoff,
			tf:    logarithmic,
			keep:  func(d, c float64) bool { return d <= c },
			color: colorLowRes,
		})
		t.legend = append(t.legend, legendEntry(
			fmt.Sprintf("Deep <= %s ohm.m", formatTick(rc.Cutoff)),
			chart.Style{StrokeColor: colorLowRes, StrokeWidth: 6},
		))
	}
	return t
}

func (r *Renderer) porosityTrack(res []mnemonic.Result) trackSpec {
	p := r.tracks.Porosity
	t := trackSpec{
		name:  "porosity",
		ratio: 0.5,
		axisName: "Porosity (frac) / PEF (b/e, top scale)",
		xrange: chart.ContinuousRange{Min: p.Min, Max: p.Max, Descending: true},
		xticks: linearTicks(p.Min, p.Max, 4),
	}

	dphi := t.addCurve(res, mnemonic.CategoryDPHI, "Density Porosity", linear, lineStyle(colorDensity, dashed))
	nphi := t.addCurve(res, mnemonic.CategoryNPHI, "Neutron Porosity", linear, lineStyle(colorNeutron, dotted))
	pef := pefScale(p.PEFMin, p.PEFMax, p.Min, p.Max)
	t.addCurve(res, mnemonic.CategoryPEF, "PEF", pef, lineStyle(colorPEF, nil))
	t.scales = append(t.scales, scale{
		ticks: linearTicks(p.PEFMin, p.PEFMax, 4),
		tf:    pef,
		color: colorPEF,
	})

	if dphi != nil && nphi != nil {
		t.bands = append(t.bands, band{
			from:  nphi,
			to:    dphi,
			tf:    linear,
			keep:  func(n, d float64) bool { return d > n },
			color: colorCrossing,
		})
		t.legend = append(t.legend, legendEntry("DPHI > NPHI",
			chart.Style{StrokeColor: colorCrossing, StrokeWidth: 6}))
	}
	return t
}

// addCurve adds the resolved curve of category to the track and returns its
// values, or nil when the category did not resolve.
func (t *trackSpec) addCurve(res []mnemonic.Result, category, label string, tf transform, style chart.Style) []float64 {
	result, ok := lookup(res, category)
	if !ok {
		return nil
	}
	t.curves = append(t.curves, curve{
		values: result.Values,
		tf:     tf,
		style:  style,
	})
	t.legend = append(t.legend, legendEntry(fmt.Sprintf("%s (%s)", label, result.Mnemonic), style))
	return result.Values
}

func lookup(res []mnemonic.Result, category string) (mnemonic.Result, bool) {
	for _, r := range res {
		if r.Category == category && r.Found {
			return r, true
		}
	}
	return mnemonic.Result{}, false
}

// build assembles the go-chart definition of the track.
func (t trackSpec) build(in Input, win window, width, height int) chart.Chart {
	grid := chart.Style{StrokeColor: colorGrid, StrokeWidth: 1}
	lo, hi := t.xrange.Min, t.xrange.Max

	var series []chart.Series
	for _, c := range t.curves {
		series = append(series, c.series(in.Depth, win, lo, hi)...)
	}
	if len(series) == 0 {
		series = append(series, placeholder(lo, hi, win))
	}

	yaxis := chart.YAxis{
		Range:          &chart.ContinuousRange{Min: win.top, Max: win.base, Descending: true},
		Ticks:          depthTicks(win.top, win.base),
		GridMajorStyle: grid,
	}
	if t.labels {
		yaxis.Name = depthLabel(in.DepthUnit)
	} else {
		// Depth is labeled once; other tracks keep the tick marks and grid.
		for i := range yaxis.Ticks {
			yaxis.Ticks[i].Label = ""
		}
	}

	xr := t.xrange
	c := chart.Chart{
		Title:      trackTitles[t.name],
		TitleStyle: chart.Style{FontSize: 10},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           t.axisName,
			Range:          &xr,
			Ticks:          t.xticks,
			GridMajorStyle: grid,
		},
		YAxis:  yaxis,
		Series: series,
	}

	for _, b := range t.bands {
		c.Elements = append(c.Elements, b.renderable(in.Depth, t.xrange, win))
	}
	for _, sc := range t.scales {
		c.Elements = append(c.Elements, sc.renderable(t.xrange, win))
	}
	if markers := visibleTops(in, win); len(markers) > 0 {
		c.Elements = append(c.Elements, topsRenderable(markers, win, t.labels))
	}
	if len(t.legend) > 0 {
		legend := chart.Chart{Series: t.legend}
		c.Elements = append(c.Elements, chart.Legend(&legend))
	}
	return c
}

var trackTitles = map[string]string{
	"gamma":       "Gamma Ray",
	"resistivity": "Resistivity",
	"porosity":    "Porosity & PEF",
}

func depthLabel(unit string) string {
	if unit == "" {
		return "Depth"
	}
	return fmt.Sprintf("Depth (%s)", unit)
}
