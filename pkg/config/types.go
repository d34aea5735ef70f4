// Package config provides configuration loading and validation for wellplot.
package config

import (
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Aliases replaces or extends groups of the built-in alias table.
	// Keys are category names, values are mnemonics in preference order.
	Aliases map[string][]string `yaml:"aliases,omitempty"`

	Tracks TracksConfig `yaml:"tracks"`
	Figure FigureConfig `yaml:"figure"`
	Depth  DepthConfig  `yaml:"depth,omitempty"`
	LAS    LASConfig    `yaml:"las"`

	// aliasTable is the merged alias table (populated during validation).
	aliasTable mnemonic.Table
}

// AliasTable returns the merged alias table.
func (c *Config) AliasTable() mnemonic.Table {
	return c.aliasTable
}

// TracksConfig holds the x-axis settings of the three tracks.
type TracksConfig struct {
	Gamma       AxisConfig        `yaml:"gamma"`
	Resistivity ResistivityConfig `yaml:"resistivity"`
	Porosity    PorosityConfig    `yaml:"porosity"`
}

// AxisConfig is a linear axis range.
type AxisConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ResistivityConfig is the logarithmic resistivity axis.
type ResistivityConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// Cutoff shades the track where deep resistivity is at or below it.
	Cutoff float64 `yaml:"cutoff"`
}

// PorosityConfig is the reversed porosity axis with the PEF scale drawn over it.
type PorosityConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	PEFMin float64 `yaml:"pef_min"`
	PEFMax float64 `yaml:"pef_max"`
}

// FigureConfig controls the output image.
type FigureConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DepthConfig limits the plotted depth window. Nil bounds follow the data.
type DepthConfig struct {
	Top  *float64 `yaml:"top,omitempty"`
	Base *float64 `yaml:"base,omitempty"`
}

// LASConfig controls LAS decoding.
type LASConfig struct {
	// Encoding is the text encoding of LAS files (utf-8, latin1, windows-1252).
	Encoding string `yaml:"encoding"`
}
