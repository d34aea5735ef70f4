package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/render"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	TopsFile   string
	ConfigFile string
	Out        string
	Title      string
	Width      int
	Height     int
	Top        float64
	Base       float64
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <las-file>",
		Short: "Render a three-track log figure",
		Long: `Render a well-log figure from a LAS file.

For each curve category the first alias present in the file with at least
one non-null sample is plotted. Categories without such a curve are left
out of the figure and reported as warnings.

Tracks:
  1. Gamma ray
  2. Deep, medium and shallow resistivity (log scale, low-resistivity shading)
  3. Density and neutron porosity (reversed) with PEF

Example:
  wellplot plot well.las
  wellplot plot --tops tops.csv -o figure.png well.las
  wellplot plot --top 1500 --base 2500 --config wellplot.yaml well.las`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.TopsFile, "tops", "", "Formation tops CSV file (Depth, TopName)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output PNG path (default <las-file>.png)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Figure title")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Figure width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Figure height in pixels")
	cmd.Flags().Float64Var(&opts.Top, "top", 0, "Top of the plotted depth window")
	cmd.Flags().Float64Var(&opts.Base, "base", 0, "Base of the plotted depth window")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	lasFile := args[0]
	ctx, logger := commandContext(cmd)

	cfg, err := loadConfig(ctx, opts.ConfigFile)
	if err != nil {
		return err
	}
	if err := applyPlotFlags(cmd, cfg, opts); err != nil {
		return err
	}

	s, err := openSession(ctx, logger, cfg, lasFile, opts.TopsFile)
	if err != nil {
		return err
	}

	top, base, err := s.DepthWindow()
	if err != nil {
		return err
	}

	results := s.Resolve()
	title := render.FigureTitle(cfg.Figure.Title, s.Well.Name(), s.Well.UWI())
	in := render.Input{
		Title:     title,
		Depth:     s.Well.Depth(),
		DepthUnit: s.Well.DepthUnit(),
		Top:       top,
		Base:      base,
		Curves:    results,
		Tops:      s.Tops.Within(top, base),
	}

	out := opts.Out
	if out == "" {
		out = defaultFigurePath(lasFile)
	}

	r := render.New(cfg, render.WithLogger(s.Logger()))
	if err := r.RenderFile(in, out); err != nil {
		return fmt.Errorf("rendering figure: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Wrote figure to: %s\n", out)
	if missing := results.Missing(); len(missing) > 0 {
		fmt.Fprintf(w, "Not plotted (no usable curve): %s\n", strings.Join(missing, ", "))
	}
	logger.Debug("plot complete",
		zap.String("out", out),
		zap.Float64("top", top),
		zap.Float64("base", base),
	)
	return nil
}

// applyPlotFlags copies explicitly set flags over the configuration.
func applyPlotFlags(cmd *cobra.Command, cfg *config.Config, opts *PlotOptions) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Figure.Title = opts.Title
	}
	if flags.Changed("width") {
		cfg.Figure.Width = opts.Width
	}
	if flags.Changed("height") {
		cfg.Figure.Height = opts.Height
	}
	if flags.Changed("top") {
		top := opts.Top
		cfg.Depth.Top = &top
	}
	if flags.Changed("base") {
		base := opts.Base
		cfg.Depth.Base = &base
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// defaultFigurePath replaces the LAS file extension with .png.
func defaultFigurePath(lasFile string) string {
	return strings.TrimSuffix(lasFile, filepath.Ext(lasFile)) + ".png"
}
