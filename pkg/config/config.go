package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/wellplot/pkg/las"
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns the validated defaults when path is empty.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and builds the alias table.
func Validate(cfg *Config) error {
	table, err := mnemonic.DefaultTable().WithOverrides(cfg.Aliases)
	if err != nil {
		return fmt.Errorf("aliases: %w", err)
	}
	cfg.aliasTable = table

	if err := validateAxis(cfg.Tracks.Gamma.Min, cfg.Tracks.Gamma.Max); err != nil {
		return fmt.Errorf("tracks.gamma: %w", err)
	}
	if err := validateResistivity(&cfg.Tracks.Resistivity); err != nil {
		return fmt.Errorf("tracks.resistivity: %w", err)
	}
	if err := validatePorosity(&cfg.Tracks.Porosity); err != nil {
		return fmt.Errorf("tracks.porosity: %w", err)
	}
	if err := validateFigure(&cfg.Figure); err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	if err := validateDepth(&cfg.Depth); err != nil {
		return fmt.Errorf("depth: %w", err)
	}
	if err := las.ValidateEncoding(cfg.LAS.Encoding); err != nil {
		return fmt.Errorf("las.encoding: %w", err)
	}

	return nil
}

func validateAxis(min, max float64) error {
	if min >= max {
		return fmt.Errorf("min (%g) must be less than max (%g)", min, max)
	}
	return nil
}

func validateResistivity(rc *ResistivityConfig) error {
	if rc.Min <= 0 {
		return errors.New("min must be positive on a logarithmic axis")
	}
	if err := validateAxis(rc.Min, rc.Max); err != nil {
		return err
	}
	if rc.Cutoff <= 0 {
		return errors.New("cutoff must be positive")
	}
	return nil
}

func validatePorosity(pc *PorosityConfig) error {
	if err := validateAxis(pc.Min, pc.Max); err != nil {
		return err
	}
	if pc.PEFMin >= pc.PEFMax {
		return fmt.Errorf("pef_min (%g) must be less than pef_max (%g)", pc.PEFMin, pc.PEFMax)
	}
	return nil
}

func validateFigure(fc *FigureConfig) error {
	if fc.Width < MinFigureSize || fc.Height < MinFigureSize {
		return fmt.Errorf("width and height must be at least %d pixels, got %dx%d",
			MinFigureSize, fc.Width, fc.Height)
	}
	return nil
}

func validateDepth(dc *DepthConfig) error {
	if dc.Top != nil && dc.Base != nil && *dc.Top >= *dc.Base {
		return fmt.Errorf("top (%g) must be shallower than base (%g)", *dc.Top, *dc.Base)
	}
	return nil
}

// Marshal renders the configuration as YAML, listing the full alias table.
func Marshal(cfg *Config) ([]byte, error) {
	out := *cfg
	out.Aliases = make(map[string][]string, cfg.aliasTable.Len())
	for _, g := range cfg.aliasTable.Groups() {
		out.Aliases[g.Name] = g.Aliases
	}
	return yaml.Marshal(&out)
}
