// Package mnemonic resolves log categories to the best curve available in a well.
package mnemonic

import "math"

// CurveSet is any keyed collection of depth-indexed curves.
// Implementations must return ok=false for mnemonics they do not hold.
type CurveSet interface {
	Curve(mnemonic string) (values []float64, ok bool)
}

// Curves is a map-backed CurveSet.
type Curves map[string][]float64

// Curve returns the values stored under mnemonic.
func (c Curves) Curve(mnemonic string) ([]float64, bool) {
	values, ok := c[mnemonic]
	return values, ok
}

// Group is a ranked list of equivalent mnemonics for one measurement category.
type Group struct {
	// Name is the canonical category (GR, DeepRes, ...).
	Name string `yaml:"name" json:"name"`

	// Aliases are ordered by preference; the first present and
	// non-degenerate alias wins.
	Aliases []string `yaml:"aliases" json:"aliases"`
}

// Primary returns the first alias of the group, or the group name when empty.
func (g Group) Primary() string {
	if len(g.Aliases) == 0 {
		return g.Name
	}
	return g.Aliases[0]
}

// Result is the outcome of resolving one category against one curve set.
type Result struct {
	// Category is the group name that was resolved.
	Category string `json:"category"`

	// Mnemonic is the selected alias. Empty when Found is false.
	Mnemonic string `json:"mnemonic,omitempty"`

	// Values holds the selected curve. Nil when Found is false.
	Values []float64 `json:"-"`

	// Found reports whether an alias was selected.
	Found bool `json:"found"`

	// Skipped lists aliases that were present but held no usable value.
	Skipped []string `json:"skipped,omitempty"`
}

// ValidCount returns the number of non-missing samples in the result.
func (r Result) ValidCount() int {
	n := 0
	for _, v := range r.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// AllMissing reports whether values has no usable sample.
// An empty slice counts as missing.
func AllMissing(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
