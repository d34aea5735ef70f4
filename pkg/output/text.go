package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "wellplot: %d of %d categories resolved, %d plotted missing%s\n",
		report.Summary.Resolved,
		report.Summary.Categories,
		len(report.Summary.MissingPlotted),
		missingSuffix(report.Summary.MissingPlotted))
	return err
}

func missingSuffix(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return " (" + strings.Join(missing, ", ") + ")"
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== wellplot Curve Report ===")
	fmt.Fprintln(w)

	f.formatWell(report, w)

	fmt.Fprintln(w, "Curves:")
	for _, res := range report.Resolutions {
		f.formatResolution(res, w)
	}
	fmt.Fprintln(w)

	if t := report.Tops; t != nil {
		switch {
		case t.Error != "":
			fmt.Fprintf(w, "Tops: %s (skipped: %s)\n", t.File, t.Error)
		case t.Dropped > 0:
			fmt.Fprintf(w, "Tops: %s, %d rows, %d dropped\n", t.File, t.Rows, t.Dropped)
		default:
			fmt.Fprintf(w, "Tops: %s, %d rows\n", t.File, t.Rows)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d of %d categories resolved, %d plotted missing%s\n",
		report.Summary.Resolved,
		report.Summary.Categories,
		len(report.Summary.MissingPlotted),
		missingSuffix(report.Summary.MissingPlotted))
	if err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Run ID: %s\n", report.Metadata.RunID)
		if report.Metadata.ConfigFile != "" {
			fmt.Fprintf(w, "Config: %s\n", report.Metadata.ConfigFile)
		}
	}
	return nil
}

func (f *TextFormatter) formatWell(report *Report, w io.Writer) {
	well := report.Well
	name := well.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "Well: %s\n", name)
	if well.UWI != "" {
		fmt.Fprintf(w, "UWI: %s\n", well.UWI)
	}
	fmt.Fprintf(w, "File: %s (LAS %s, %d rows)\n", report.Metadata.LASFile, well.Version, well.Rows)
	if well.Top != nil && well.Base != nil {
		fmt.Fprintf(w, "Depth: %g - %g %s\n", *well.Top, *well.Base, well.DepthUnit)
	}
	if f.opts.Verbose && len(well.Curves) > 0 {
		fmt.Fprintf(w, "Mnemonics: %s\n", strings.Join(well.Curves, ", "))
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatResolution(res Resolution, w io.Writer) {
	marker := " "
	if res.Plotted {
		marker = "*"
	}

	if res.Found {
		fmt.Fprintf(w, "  %s %-8s %-12s %d samples\n", marker, res.Category, res.Mnemonic, res.ValidCount)
	} else {
		fmt.Fprintf(w, "  %s %-8s %-12s\n", marker, res.Category, "none")
	}

	if f.opts.Verbose && len(res.Skipped) > 0 {
		fmt.Fprintf(w, "      skipped (all missing): %s\n", strings.Join(res.Skipped, ", "))
	}
}
