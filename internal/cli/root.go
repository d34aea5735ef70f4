// Package cli provides the command-line interface for wellplot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/wellplot/internal/cli/commands"
	"github.com/ccollicutt/wellplot/internal/cli/plugins"
	"github.com/ccollicutt/wellplot/internal/logging"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)

	// An unknown first argument may name a plugin.
	if len(args) > 0 {
		potentialCommand := args[0]
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' && !isBuiltinCommand(rootCmd, potentialCommand) {
			if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
				return plugins.Execute(pluginPath, args[1:])
			}
			_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
			return 2
		}
	}

	commands.ExitCode = 0
	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	// Also check for special commands like help and completion
	return name == "help" || name == "completion"
}

// globalOptions holds flags shared by every command.
type globalOptions struct {
	LogLevel  string
	LogFormat string
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "wellplot",
		Short: "Plot petrophysical well logs from LAS files",
		Long: `wellplot renders a three-track well-log figure (gamma ray, resistivity,
porosity/PEF) from a LAS file, with optional formation tops.

Each curve category (GR, DeepRes, NPHI, ...) has a ranked list of
equivalent mnemonics. The first one present in the file with at least one
non-null sample is plotted; categories without a usable curve are skipped
with a warning. The lists can be extended in the config file.

PLUGINS:
  wellplot supports plugins for extended functionality. Plugins are standalone
  binaries named wellplot-<command> that are automatically discovered and invoked.

  Plugin locations (searched in order):
    1. Same directory as the wellplot binary
    2. ~/.wellplot/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.LogLevel, opts.LogFormat)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// stderr cannot be synced on some platforms.
			_ = logging.FromContext(cmd.Context()).Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", logging.FormatConsole, "Log format (console|json)")

	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
