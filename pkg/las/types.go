// Package las reads well-log curves from Log ASCII Standard (LAS) 1.2 and 2.0 files.
package las

import (
	"errors"
	"strings"
)

// DefaultNull is the conventional LAS missing-value marker.
const DefaultNull = -999.25

var (
	// ErrUnsupportedVersion is returned for LAS versions other than 1.x and 2.x.
	ErrUnsupportedVersion = errors.New("unsupported LAS version")

	// ErrNoCurves is returned when the file defines no curves.
	ErrNoCurves = errors.New("no curves defined")

	// ErrNoData is returned when the ~A section holds no complete row.
	ErrNoData = errors.New("no data rows")

	// ErrUnknownEncoding is returned for an unrecognized text encoding name.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// HeaderItem is one `MNEM.UNIT VALUE : DESCRIPTION` line of a header section.
type HeaderItem struct {
	Mnemonic    string `json:"mnemonic"`
	Unit        string `json:"unit,omitempty"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

// Well is a parsed LAS file.
type Well struct {
	// Version holds the ~V section items.
	Version []HeaderItem

	// Header holds the ~W section items.
	Header []HeaderItem

	// Curves holds the ~C section items in file order. Duplicate mnemonics
	// are renamed MNEM:1, MNEM:2, ...
	Curves []HeaderItem

	// Params holds the ~P section items.
	Params []HeaderItem

	// Other is the raw text of the ~O section.
	Other string

	// Null is the missing-value marker; samples equal to it read as NaN.
	Null float64

	// Wrapped reports whether the data section used wrapped rows.
	Wrapped bool

	// DroppedRows counts data rows discarded for having the wrong width.
	DroppedRows int

	columns [][]float64
	index   map[string]int
}

// Curve returns the samples of the named curve.
func (w *Well) Curve(mnemonic string) ([]float64, bool) {
	if w == nil {
		return nil, false
	}
	i, ok := w.index[mnemonic]
	if !ok {
		return nil, false
	}
	return w.columns[i], true
}

// Depth returns the index curve, the first curve of the file.
func (w *Well) Depth() []float64 {
	if len(w.columns) == 0 {
		return nil
	}
	return w.columns[0]
}

// DepthUnit returns the unit of the index curve.
func (w *Well) DepthUnit() string {
	if len(w.Curves) == 0 {
		return ""
	}
	return w.Curves[0].Unit
}

// Mnemonics returns the curve mnemonics in file order.
func (w *Well) Mnemonics() []string {
	out := make([]string, len(w.Curves))
	for i, c := range w.Curves {
		out[i] = c.Mnemonic
	}
	return out
}

// Rows returns the number of depth samples.
func (w *Well) Rows() int {
	return len(w.Depth())
}

// HeaderValue returns the value of a ~W item, matched case-insensitively.
func (w *Well) HeaderValue(mnemonic string) (string, bool) {
	return lookup(w.Header, mnemonic)
}

// VersionString returns the VERS item of the ~V section.
func (w *Well) VersionString() string {
	v, _ := lookup(w.Version, "VERS")
	return v
}

// Name returns the WELL header value.
func (w *Well) Name() string {
	v, _ := w.HeaderValue("WELL")
	return v
}

// UWI returns the unique well identifier, falling back to API.
func (w *Well) UWI() string {
	if v, ok := w.HeaderValue("UWI"); ok && v != "" {
		return v
	}
	v, _ := w.HeaderValue("API")
	return v
}

func lookup(items []HeaderItem, mnemonic string) (string, bool) {
	for _, it := range items {
		if strings.EqualFold(it.Mnemonic, mnemonic) {
			return it.Value, true
		}
	}
	return "", false
}
