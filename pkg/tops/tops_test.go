package tops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ExcludesNonNumericDepth(t *testing.T) {
	csv := `Depth,TopName
1200.5,Wolfcamp
abc,Bad Row
1350,Strawn
,Empty Depth
1500,Atoka
`
	table, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []Top{
		{Depth: 1200.5, Name: "Wolfcamp"},
		{Depth: 1350, Name: "Strawn"},
		{Depth: 1500, Name: "Atoka"},
	}, table.Rows)
	assert.Equal(t, 2, table.Dropped)
	assert.Equal(t, 3, table.Len())
}

func TestParse_HeaderCaseAndExtraColumns(t *testing.T) {
	csv := "Well,topname,DEPTH\nA,  Dean ,2000\nA,Spraberry,1900\n"

	table, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, Top{Depth: 2000, Name: "Dean"}, table.Rows[0])
}

func TestParse_SkipsBlankLinesAndShortRows(t *testing.T) {
	csv := "Depth,TopName\n1000,A\n,\n1100\n"

	table, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []Top{{Depth: 1000, Name: "A"}, {Depth: 1100, Name: ""}}, table.Rows)
	assert.Equal(t, 0, table.Dropped)
}

func TestParse_MissingColumns(t *testing.T) {
	for _, csv := range []string{"", "Name\nfoo\n", "Depth\n100\n"} {
		_, err := Parse(strings.NewReader(csv))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingColumn), "got %v", err)
	}
}

func TestTable_Within(t *testing.T) {
	table := &Table{Rows: []Top{{Depth: 100, Name: "A"}, {Depth: 200, Name: "B"}, {Depth: 300, Name: "C"}}}

	assert.Equal(t, []Top{{Depth: 200, Name: "B"}, {Depth: 300, Name: "C"}}, table.Within(150, 300))
	assert.Equal(t, table.Within(150, 300), table.Within(300, 150))

	var empty *Table
	assert.Nil(t, empty.Within(0, 1000))
	assert.Equal(t, 0, empty.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tops.csv")
	require.NoError(t, os.WriteFile(path, []byte("Depth,TopName\n10,X\n"), 0644))

	table, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}
