package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/wellplot/pkg/las"
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version of wellplot, the supported LAS encodings and the built-in alias table size.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(w, Version)
				return
			}

			line := "wellplot " + Version
			if Commit != "" {
				line += " (" + Commit + ")"
			}
			fmt.Fprintln(w, line)
			fmt.Fprintf(w, "  go:        %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "  encodings: %s\n", strings.Join(las.Encodings, ", "))
			fmt.Fprintf(w, "  aliases:   %d groups\n", mnemonic.DefaultTable().Len())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
