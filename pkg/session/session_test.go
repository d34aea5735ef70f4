package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
)

const wellLAS = `~V
 VERS. 2.0 :
 WRAP. NO :
~W
 NULL. -999.25 :
 WELL. TEST 1 : well
 UWI . 42-000-00001 : uwi
~C
 DEPT.FT :
 GR.GAPI :
 ILD.OHMM :
 RT90.OHMM :
 TNPH.V/V :
 PE.B/E :
~A
 1000 45 -999.25 12 0.20 3.1
 1001 60 -999.25 15 0.22 3.0
 1002 90 -999.25 18 0.18 2.9
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpen_ResolvesPlotCategories(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s, err := Open(context.Background(), Options{
		LASPath: writeFile(t, "well.las", wellLAS),
		Logger:  zap.New(core),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Nil(t, s.Tops)

	res := s.Resolve()
	require.Len(t, res, len(mnemonic.PlotCategories))

	deep, ok := res.Get(mnemonic.CategoryDeepRes)
	require.True(t, ok)
	assert.Equal(t, "RT90", deep.Mnemonic)
	assert.Equal(t, []string{"ILD"}, deep.Skipped)
	assert.Equal(t, []float64{45, 60, 90}, res.Values(mnemonic.CategoryGR))
	assert.Nil(t, res.Values(mnemonic.CategoryDPHI))
	assert.ElementsMatch(t, []string{mnemonic.CategoryMedRes, mnemonic.CategoryShalRes, mnemonic.CategoryDPHI}, res.Missing())

	for _, entry := range logs.All() {
		assert.Equal(t, s.ID.String(), entry.ContextMap()["run_id"])
	}
	assert.Equal(t, 1, logs.FilterMessage("curve found but contains only missing values").Len())
}

func TestOpen_ValidatesGivenConfig(t *testing.T) {
	lasPath := writeFile(t, "well.las", wellLAS)

	s, err := Open(context.Background(), Options{
		LASPath: lasPath,
		Config:  config.DefaultConfig(),
	})
	require.NoError(t, err)

	res := s.Resolve()
	for category, want := range map[string]string{
		mnemonic.CategoryGR:      "GR",
		mnemonic.CategoryDeepRes: "RT90",
		mnemonic.CategoryNPHI:    "TNPH",
		mnemonic.CategoryPEF:     "PE",
	} {
		got, ok := res.Get(category)
		require.True(t, ok, category)
		assert.Equal(t, want, got.Mnemonic, category)
	}
	assert.Equal(t, mnemonic.DefaultTable().Len(), s.Config.AliasTable().Len())

	bad := config.DefaultConfig()
	bad.Tracks.Gamma.Min = 200
	_, err = Open(context.Background(), Options{LASPath: lasPath, Config: bad})
	assert.ErrorContains(t, err, "tracks.gamma")
}

func TestOpen_InspectCoversWholeTable(t *testing.T) {
	s, err := Open(context.Background(), Options{LASPath: writeFile(t, "well.las", wellLAS)})
	require.NoError(t, err)

	res := s.Inspect()
	assert.Len(t, res, mnemonic.DefaultTable().Len())
	rop, ok := res.Get(mnemonic.CategoryROP)
	require.True(t, ok)
	assert.False(t, rop.Found)
}

func TestOpen_Tops(t *testing.T) {
	s, err := Open(context.Background(), Options{
		LASPath:  writeFile(t, "well.las", wellLAS),
		TopsPath: writeFile(t, "tops.csv", "Depth,TopName\n1000.5,Upper\nnope,Bad\n"),
	})
	require.NoError(t, err)
	require.NotNil(t, s.Tops)
	assert.Equal(t, 1, s.Tops.Len())
	assert.Equal(t, 1, s.Tops.Dropped)
}

func TestOpen_UnreadableTopsIsNotFatal(t *testing.T) {
	s, err := Open(context.Background(), Options{
		LASPath:  writeFile(t, "well.las", wellLAS),
		TopsPath: filepath.Join(t.TempDir(), "missing.csv"),
	})
	require.NoError(t, err)
	assert.Nil(t, s.Tops)
	assert.Error(t, s.TopsErr)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.Error(t, err)

	_, err = Open(context.Background(), Options{LASPath: filepath.Join(t.TempDir(), "none.las")})
	assert.Error(t, err)
}

func TestOpen_UsesConfiguredAliases(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Aliases = map[string][]string{mnemonic.CategoryDeepRes: {"ILD"}}
	require.NoError(t, config.Validate(cfg))

	s, err := Open(context.Background(), Options{
		LASPath: writeFile(t, "well.las", wellLAS),
		Config:  cfg,
	})
	require.NoError(t, err)

	deep, _ := s.Resolve().Get(mnemonic.CategoryDeepRes)
	assert.False(t, deep.Found)
}

func TestDepthWindow(t *testing.T) {
	s, err := Open(context.Background(), Options{LASPath: writeFile(t, "well.las", wellLAS)})
	require.NoError(t, err)

	top, base, err := s.DepthWindow()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, top)
	assert.Equal(t, 1002.0, base)

	override := 1001.0
	s.Config.Depth.Top = &override
	top, base, err = s.DepthWindow()
	require.NoError(t, err)
	assert.Equal(t, 1001.0, top)
	assert.Equal(t, 1002.0, base)
}

func TestDepthWindow_NoDepth(t *testing.T) {
	doc := "~V\n VERS. 2.0 :\n~C\n DEPT.FT :\n GR.GAPI :\n~A\n -999.25 10\n"
	s, err := Open(context.Background(), Options{LASPath: writeFile(t, "nodepth.las", doc)})
	require.NoError(t, err)

	_, _, err = s.DepthWindow()
	assert.True(t, errors.Is(err, ErrNoDepth))
}
