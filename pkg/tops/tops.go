// Package tops reads formation-top tables used as depth markers on log plots.
package tops

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Column names expected in the CSV header.
const (
	ColumnDepth = "Depth"
	ColumnName  = "TopName"
)

// ErrMissingColumn is returned when a required header column is absent.
var ErrMissingColumn = errors.New("missing required column")

// Top is a named depth marking a geological boundary.
type Top struct {
	Depth float64 `json:"depth"`
	Name  string  `json:"name"`
}

// Table is an ordered set of formation tops.
type Table struct {
	// Rows holds the tops with a valid numeric depth, in file order.
	Rows []Top

	// Dropped counts rows whose depth could not be read as a number.
	Dropped int
}

// Within returns the tops whose depth lies in [top, base].
func (t *Table) Within(top, base float64) []Top {
	if t == nil {
		return nil
	}
	if top > base {
		top, base = base, top
	}
	var out []Top
	for _, row := range t.Rows {
		if row.Depth >= top && row.Depth <= base {
			out = append(out, row)
		}
	}
	return out
}

// Len returns the number of usable tops.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Load reads a tops table from a CSV file.
func Load(_ context.Context, path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening tops file %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing tops file %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a tops table from CSV. Header names are matched
// case-insensitively; extra columns are ignored. A depth that is not a
// number is coerced to missing and its row is excluded.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	depthCol, nameCol := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch {
		case strings.EqualFold(h, ColumnDepth):
			depthCol = i
		case strings.EqualFold(h, ColumnName):
			nameCol = i
		}
	}
	if depthCol < 0 {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, ColumnDepth)
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, ColumnName)
	}

	t := &Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if blank(record) {
			continue
		}

		depth := coerce(field(record, depthCol))
		if math.IsNaN(depth) {
			t.Dropped++
			continue
		}
		t.Rows = append(t.Rows, Top{
			Depth: depth,
			Name:  strings.TrimSpace(norm.NFKC.String(field(record, nameCol))),
		})
	}
	return t, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// coerce converts s to a float, returning NaN when it is not a finite number.
func coerce(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
