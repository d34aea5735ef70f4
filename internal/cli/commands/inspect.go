package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/output"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	ConfigFile  string
	TopsFile    string
	Output      string
	ShowAll     bool
	Verbose     bool
	Quiet       bool
	WriteConfig string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <las-file>",
		Short: "Report which curve is chosen for each category",
		Long: `Resolve curve categories against a LAS file without drawing a figure.

For every category the report shows the selected mnemonic, its number of
non-null samples, and aliases that were present but held only nulls.
Categories drawn on the figure are marked with *.

Optionally writes a starter config holding the full alias table with
--write-config, ready to be edited for files with unusual mnemonics.

Exit codes:
  0 - All figure categories resolved
  1 - At least one figure category has no usable curve
  2 - Configuration or runtime error

Example:
  wellplot inspect well.las
  wellplot inspect --all -o json well.las
  wellplot inspect --write-config wellplot.yaml well.las`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file")
	cmd.Flags().StringVar(&opts.TopsFile, "tops", "", "Formation tops CSV file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Resolve every category of the alias table, not just plotted ones")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show curve list and skipped aliases")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	lasFile := args[0]
	ctx, logger := commandContext(cmd)

	formatter, ok := output.NewFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if !ok {
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	cfg, err := loadConfig(ctx, opts.ConfigFile)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, logger, cfg, lasFile, opts.TopsFile)
	if err != nil {
		return err
	}

	results := s.Resolve()
	if opts.ShowAll {
		results = s.Inspect()
	}
	report := output.NewReport(s, results, opts.ConfigFile)

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(cfg, opts.WriteConfig); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote starter config to: %s\n", opts.WriteConfig)
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasMissing() {
		ExitCode = 1
	}
	return nil
}

// writeStarterConfig writes cfg, including the full alias table, to path.
func writeStarterConfig(cfg *config.Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", path)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := "# wellplot configuration\n# Generated by: wellplot inspect\n# Aliases are tried in order; the first with a non-null sample wins.\n\n"

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
