package render

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// niceTicks returns roughly n ticks on 1/2/2.5/5 steps covering [min, max].
// The first and last ticks are rounded outward, so they bound the axis.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}

	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	steps := int(math.Round((end - start) / bestStep))
	ticks := make([]chart.Tick, 0, steps+1)
	for i := 0; i <= steps; i++ {
		v := start + float64(i)*bestStep
		if i == steps {
			v = end
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// linearTicks returns n+1 evenly spaced ticks from min to max inclusive.
func linearTicks(min, max float64, n int) []chart.Tick {
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := min + (max-min)*float64(i)/float64(n)
		if i == n {
			v = max
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// decadeTicks places a tick at min and every power-of-ten multiple of it up
// to max, in log10 space. max always gets a tick.
func decadeTicks(min, max float64) []chart.Tick {
	var ticks []chart.Tick
	for v := min; v < max*(1-1e-9); v *= 10 {
		ticks = append(ticks, chart.Tick{Value: math.Log10(v), Label: formatTick(v)})
	}
	return append(ticks, chart.Tick{Value: math.Log10(max), Label: formatTick(max)})
}

func formatTick(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tickBounds returns the smallest and largest tick values.
func tickBounds(ticks []chart.Tick) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range ticks {
		lo = math.Min(lo, t.Value)
		hi = math.Max(hi, t.Value)
	}
	return lo, hi
}

// depthTicks returns nice ticks inside [top, base]. Unlabeled ticks are
// added at window edges that are not themselves nice, so the axis spans
// exactly the window.
func depthTicks(top, base float64) []chart.Tick {
	var inner []chart.Tick
	for _, t := range niceTicks(top, base, 10) {
		if t.Value >= top && t.Value <= base {
			inner = append(inner, t)
		}
	}
	if len(inner) == 0 || inner[0].Value > top {
		inner = append([]chart.Tick{{Value: top}}, inner...)
	}
	if inner[len(inner)-1].Value < base {
		inner = append(inner, chart.Tick{Value: base})
	}
	return inner
}
