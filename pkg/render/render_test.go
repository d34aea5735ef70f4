package render

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
	"github.com/ccollicutt/wellplot/pkg/tops"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Figure.Width = 900
	cfg.Figure.Height = 600
	return cfg
}

func sampleInput() Input {
	depth := []float64{1000, 1001, 1002, 1003, 1004, 1005}
	nan := math.NaN()
	return Input{
		Depth:     depth,
		DepthUnit: "FT",
		Top:       1000,
		Base:      1005,
		Curves: []mnemonic.Result{
			{Category: mnemonic.CategoryGR, Mnemonic: "GR", Found: true, Values: []float64{45, 60, nan, 90, 200, 80}},
			{Category: mnemonic.CategoryDeepRes, Mnemonic: "RT90", Found: true, Values: []float64{12, 15, 30, 0, 8, 40}},
			{Category: mnemonic.CategoryMedRes, Found: false},
			{Category: mnemonic.CategoryNPHI, Mnemonic: "TNPH", Found: true, Values: []float64{0.2, 0.22, 0.18, 0.15, 0.1, 0.12}},
			{Category: mnemonic.CategoryDPHI, Mnemonic: "DPHZ", Found: true, Values: []float64{0.1, 0.25, 0.2, 0.1, 0.12, nan}},
			{Category: mnemonic.CategoryPEF, Mnemonic: "PE", Found: true, Values: []float64{3.1, 3.0, 2.9, 4, 5, 2}},
		},
		Tops: []tops.Top{
			{Depth: 1002.5, Name: "Upper"},
			{Depth: 1500, Name: "Below window"},
		},
	}
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRender_ProducesConfiguredSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(smallConfig()).Render(sampleInput(), &buf))

	w, h := decodedSize(t, buf.Bytes())
	assert.Equal(t, 900, w)
	assert.Equal(t, 600, h)
}

func TestRender_NoCurves(t *testing.T) {
	in := Input{Depth: []float64{0, 10}, Top: 0, Base: 10}

	var buf bytes.Buffer
	require.NoError(t, New(smallConfig()).Render(in, &buf))

	w, h := decodedSize(t, buf.Bytes())
	assert.Equal(t, 900, w)
	assert.Equal(t, 600, h)
}

func TestRender_InvalidWindow(t *testing.T) {
	r := New(smallConfig())

	_, err := r.Image(Input{Top: 10, Base: 10})
	assert.Error(t, err)

	_, err = r.Image(Input{Top: math.NaN(), Base: 10})
	assert.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.png")
	require.NoError(t, New(smallConfig()).RenderFile(sampleInput(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	w, _ := decodedSize(t, data)
	assert.Equal(t, 900, w)
}

func TestSegments_BreakOnMissingAndNonPositive(t *testing.T) {
	values := []float64{10, math.NaN(), 20, 30, -1, 100, 5000}
	depth := []float64{1, 2, 3, 4, 5, 6, 7}
	win := window{top: 1, base: 6}

	got := segments(values, depth, win, logarithmic, math.Log10(0.2), math.Log10(2000))

	want := []segment{
		{x: []float64{1}, depth: []float64{1}},
		{x: []float64{math.Log10(20), math.Log10(30)}, depth: []float64{3, 4}},
		{x: []float64{2}, depth: []float64{6}},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(segment{}), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestSegments_ClampsToAxis(t *testing.T) {
	got := segments([]float64{-10, 75, 400}, []float64{1, 2, 3}, window{top: 0, base: 5}, linear, 0, 150)
	require.Len(t, got, 1)
	assert.Equal(t, []float64{0, 75, 150}, got[0].x)
}

func TestPEFScale(t *testing.T) {
	tf := pefScale(0, 40, -0.1, 0.3)

	x, ok := tf(0)
	assert.True(t, ok)
	assert.InDelta(t, 0.3, x, 1e-12)

	x, _ = tf(40)
	assert.InDelta(t, -0.1, x, 1e-12)

	x, _ = tf(20)
	assert.InDelta(t, 0.1, x, 1e-12)
}

func labels(ticks []chart.Tick) []string {
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = t.Label
	}
	return out
}

func TestDecadeTicks(t *testing.T) {
	ticks := decadeTicks(0.2, 2000)
	assert.Equal(t, []string{"0.2", "2", "20", "200", "2000"}, labels(ticks))

	lo, hi := tickBounds(ticks)
	assert.InDelta(t, math.Log10(0.2), lo, 1e-12)
	assert.InDelta(t, math.Log10(2000), hi, 1e-12)
}

func TestLinearTicks(t *testing.T) {
	assert.Equal(t, []string{"-0.1", "0", "0.1", "0.2", "0.3"}, labels(linearTicks(-0.1, 0.3, 4)))
	assert.Equal(t, []string{"0", "50", "100", "150"}, labels(linearTicks(0, 150, 3)))
}

func TestDepthTicks_SpanWindow(t *testing.T) {
	ticks := depthTicks(1003, 2497)
	lo, hi := tickBounds(ticks)
	assert.Equal(t, 1003.0, lo)
	assert.Equal(t, 2497.0, hi)
	assert.Empty(t, ticks[0].Label)
	assert.Empty(t, ticks[len(ticks)-1].Label)
	for _, tk := range ticks[1 : len(ticks)-1] {
		assert.NotEmpty(t, tk.Label)
	}

	ticks = depthTicks(1000, 2000)
	assert.Equal(t, "1000", ticks[0].Label)
	assert.Equal(t, "2000", ticks[len(ticks)-1].Label)
}

func TestSplitWidths(t *testing.T) {
	assert.Equal(t, []int{240, 480, 480}, splitWidths(1200, []float64{0.25, 0.5, 0.5}))
	assert.Equal(t, []int{200, 400, 401}, splitWidths(1001, []float64{0.25, 0.5, 0.5}))
}

func TestFigureTitle(t *testing.T) {
	assert.Equal(t, "Petrophysical Logs - TEST 1 - 42-000-00001", FigureTitle("Petrophysical Logs", "TEST 1", "42-000-00001"))
	assert.Equal(t, "Logs", FigureTitle("Logs", " ", ""))
}

func TestVisibleTops(t *testing.T) {
	in := sampleInput()
	got := visibleTops(in, window{top: in.Top, base: in.Base})
	require.Len(t, got, 1)
	assert.Equal(t, "Upper", got[0].Name)
}

func TestBuild_DepthLabeledOnFirstTrackOnly(t *testing.T) {
	r := New(smallConfig())
	in := sampleInput()
	win := window{top: in.Top, base: in.Base}

	gamma := r.gammaTrack(in.Curves).build(in, win, 200, 500)
	assert.Equal(t, "Depth (FT)", gamma.YAxis.Name)
	assert.Contains(t, labels(gamma.YAxis.Ticks), "1002")

	for _, spec := range []trackSpec{r.resistivityTrack(in.Curves), r.porosityTrack(in.Curves)} {
		c := spec.build(in, win, 400, 500)
		assert.Empty(t, c.YAxis.Name, spec.name)
		require.Len(t, c.YAxis.Ticks, len(gamma.YAxis.Ticks), spec.name)
		for _, tick := range c.YAxis.Ticks {
			assert.Empty(t, tick.Label, spec.name)
		}
	}
}

func TestPorosityTrack_PEFScale(t *testing.T) {
	r := New(smallConfig())
	spec := r.porosityTrack(nil)

	require.Len(t, spec.scales, 1)
	sc := spec.scales[0]
	assert.Equal(t, []string{"0", "10", "20", "30", "40"}, labels(sc.ticks))

	// The scale spans the porosity axis from its maximum to its minimum.
	left, _ := sc.tf(sc.ticks[0].Value)
	right, _ := sc.tf(sc.ticks[len(sc.ticks)-1].Value)
	assert.InDelta(t, 0.3, left, 1e-9)
	assert.InDelta(t, -0.1, right, 1e-9)

	in := Input{Depth: []float64{0, 10}, Top: 0, Base: 10}
	c := spec.build(in, window{top: 0, base: 10}, 400, 500)
	var buf bytes.Buffer
	require.NoError(t, c.Render(chart.PNG, &buf))
}
