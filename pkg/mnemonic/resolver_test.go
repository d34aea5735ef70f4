package mnemonic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var nan = math.NaN()

func newObservedResolver(t *testing.T) (*Resolver, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	return NewResolver(DefaultTable(), WithLogger(zap.New(core))), logs
}

func deepRes(t *testing.T) Group {
	t.Helper()
	g, ok := DefaultTable().Group(CategoryDeepRes)
	require.True(t, ok)
	return g
}

func TestResolve_SkipsAllMissingAlias(t *testing.T) {
	r, logs := newObservedResolver(t)
	curves := Curves{
		"RHOZ": {2.3, 2.4},
		"ILD":  {nan, nan},
		"RT90": {12, 15},
	}

	res := r.Resolve(deepRes(t), curves)

	require.True(t, res.Found)
	assert.Equal(t, "RT90", res.Mnemonic)
	assert.Equal(t, []float64{12, 15}, res.Values)
	assert.Equal(t, []string{"ILD"}, res.Skipped)

	entries := logs.FilterMessage("curve found but contains only missing values").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ILD", entries[0].ContextMap()["alias"])
}

func TestResolve_NoMatchNamesPrimaryAlias(t *testing.T) {
	r, logs := newObservedResolver(t)
	curves := Curves{"GR": {50, 60}, "RHOB": {2.5, 2.6}}

	res := r.Resolve(deepRes(t), curves)

	assert.False(t, res.Found)
	assert.Empty(t, res.Mnemonic)
	assert.Nil(t, res.Values)
	assert.Equal(t, CategoryDeepRes, res.Category)

	entries := logs.FilterMessage("no matching curve found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ILD", entries[0].ContextMap()["primary"])
}

func TestResolve_NilCurveSet(t *testing.T) {
	r, logs := newObservedResolver(t)

	var res Result
	require.NotPanics(t, func() { res = r.Resolve(deepRes(t), nil) })

	assert.False(t, res.Found)
	assert.Equal(t, CategoryDeepRes, res.Category)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, 1, logs.FilterMessage("no matching curve found").Len())

	var empty Curves
	assert.False(t, r.ResolveCategory(CategoryGR, empty).Found)
}

func TestResolve_FirstDeclaredAliasWins(t *testing.T) {
	r := NewResolver(DefaultTable())
	group := Group{Name: "GR", Aliases: []string{"GR", "CGR", "SGR"}}

	tests := []struct {
		name   string
		curves Curves
		want   string
	}{
		{"all present", Curves{"SGR": {1}, "CGR": {2}, "GR": {3}}, "GR"},
		{"first missing", Curves{"SGR": {1}, "CGR": {2}}, "CGR"},
		{"first two degenerate", Curves{"GR": {nan}, "CGR": {nan, nan}, "SGR": {nan, 4}}, "SGR"},
		{"partial nan still valid", Curves{"GR": {nan, 7, nan}, "CGR": {2}}, "GR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(group, tt.curves)
			require.True(t, res.Found)
			assert.Equal(t, tt.want, res.Mnemonic)
		})
	}
}

func TestResolve_DegenerateTreatedAsAbsent(t *testing.T) {
	r := NewResolver(DefaultTable())
	group := Group{Name: "PEF", Aliases: []string{"PEF", "PE"}}

	absent := r.Resolve(group, Curves{"PE": {3.1, 3.2}})
	allNaN := r.Resolve(group, Curves{"PEF": {nan, nan, nan}, "PE": {3.1, 3.2}})
	empty := r.Resolve(group, Curves{"PEF": {}, "PE": {3.1, 3.2}})

	assert.Equal(t, absent.Mnemonic, allNaN.Mnemonic)
	assert.Equal(t, absent.Mnemonic, empty.Mnemonic)
	assert.Equal(t, "PE", absent.Mnemonic)
}

func TestResolve_ValuesAreReturnedUnchanged(t *testing.T) {
	r := NewResolver(DefaultTable())
	values := []float64{nan, 0.12, nan, 0.18}

	res := r.ResolveCategory(CategoryNPHI, Curves{"TNPH": values})

	require.True(t, res.Found)
	if diff := cmp.Diff(values, res.Values, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, res.ValidCount())
}

func TestResolveCategory_Unknown(t *testing.T) {
	r, logs := newObservedResolver(t)

	res := r.ResolveCategory("Sonic", Curves{"DT": {60}})

	assert.False(t, res.Found)
	assert.Equal(t, "Sonic", res.Category)
	assert.Equal(t, 1, logs.FilterMessage("unknown curve category").Len())
}

func TestResolveAll(t *testing.T) {
	r := NewResolver(DefaultTable())
	curves := Curves{
		"GR":   {40, 80},
		"PE":   {2.9, 3.0},
		"AT90": {10, 11},
		"AT30": {8, 9},
		"TNPH": {0.2, 0.25},
	}

	results := r.ResolveAll(curves, PlotCategories...)

	require.Len(t, results, len(PlotCategories))
	got := make(map[string]string)
	for i, res := range results {
		assert.Equal(t, PlotCategories[i], res.Category)
		got[res.Category] = res.Mnemonic
	}
	assert.Equal(t, map[string]string{
		CategoryGR:      "GR",
		CategoryPEF:     "PE",
		CategoryDeepRes: "AT90",
		CategoryMedRes:  "",
		CategoryShalRes: "AT30",
		CategoryNPHI:    "TNPH",
		CategoryDPHI:    "",
	}, got)

	all := r.ResolveAll(curves)
	assert.Len(t, all, DefaultTable().Len())
}

func TestAllMissing(t *testing.T) {
	assert.True(t, AllMissing(nil))
	assert.True(t, AllMissing([]float64{}))
	assert.True(t, AllMissing([]float64{nan, nan}))
	assert.False(t, AllMissing([]float64{nan, 0}))
	assert.False(t, AllMissing([]float64{math.Inf(1)}))
}
