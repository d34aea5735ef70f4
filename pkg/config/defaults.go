package config

import (
	"os"
)

// Default values for configuration.
const (
	DefaultGammaMin       = 0.0
	DefaultGammaMax       = 150.0
	DefaultResistivityMin = 0.2
	DefaultResistivityMax = 2000.0
	DefaultResCutoff      = 20.0
	DefaultPorosityMin    = -0.1
	DefaultPorosityMax    = 0.3
	DefaultPEFMin         = 0.0
	DefaultPEFMax         = 40.0
	DefaultTitle          = "Petrophysical Logs"
	DefaultWidth          = 1200
	DefaultHeight         = 1200
	DefaultEncoding       = "utf-8"

	// MinFigureSize is the smallest accepted width or height in pixels.
	MinFigureSize = 300
)

// Environment variable names.
const (
	EnvLASEncoding = "WELLPLOT_LAS_ENCODING"
	EnvFigureTitle = "WELLPLOT_FIGURE_TITLE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Tracks: TracksConfig{
			Gamma: AxisConfig{Min: DefaultGammaMin, Max: DefaultGammaMax},
			Resistivity: ResistivityConfig{
				Min:    DefaultResistivityMin,
				Max:    DefaultResistivityMax,
				Cutoff: DefaultResCutoff,
			},
			Porosity: PorosityConfig{
				Min:    DefaultPorosityMin,
				Max:    DefaultPorosityMax,
				PEFMin: DefaultPEFMin,
				PEFMax: DefaultPEFMax,
			},
		},
		Figure: FigureConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		LAS: LASConfig{Encoding: DefaultEncoding},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if enc := os.Getenv(EnvLASEncoding); enc != "" {
		c.LAS.Encoding = enc
	}
	if title := os.Getenv(EnvFigureTitle); title != "" {
		c.Figure.Title = title
	}
}
