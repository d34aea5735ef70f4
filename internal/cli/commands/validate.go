package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a wellplot configuration file without reading any well.

Checks:
  - YAML syntax
  - Track axis limits (resistivity must stay positive for the log scale)
  - Figure size and depth window
  - LAS encoding name
  - Alias groups (no empty groups or blank mnemonics)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx, _ := commandContext(cmd)
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	t := cfg.Tracks
	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Gamma:       %g - %g API\n", t.Gamma.Min, t.Gamma.Max)
	fmt.Fprintf(w, "  Resistivity: %g - %g ohm.m (shade <= %g)\n", t.Resistivity.Min, t.Resistivity.Max, t.Resistivity.Cutoff)
	fmt.Fprintf(w, "  Porosity:    %g - %g (PEF %g - %g)\n", t.Porosity.Max, t.Porosity.Min, t.Porosity.PEFMin, t.Porosity.PEFMax)
	fmt.Fprintf(w, "  Figure:      %dx%d %q\n", cfg.Figure.Width, cfg.Figure.Height, cfg.Figure.Title)
	fmt.Fprintf(w, "  Encoding:    %s\n", cfg.LAS.Encoding)
	fmt.Fprintf(w, "  Alias groups: %d\n", cfg.AliasTable().Len())

	if len(cfg.Aliases) > 0 {
		names := make([]string, 0, len(cfg.Aliases))
		for name := range cfg.Aliases {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(w, "\nOverridden groups:\n")
		for _, name := range names {
			g, _ := cfg.AliasTable().Group(name)
			fmt.Fprintf(w, "  - %s: %d aliases, first %s\n", name, len(g.Aliases), g.Primary())
		}
	}

	return nil
}
