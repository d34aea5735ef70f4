package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietReport is the single object written in quiet mode.
type quietReport struct {
	Well string `json:"well,omitempty"`
	OK   bool   `json:"ok"`
	Summary
}

// Format renders the report as indented JSON. The curve list and skipped
// aliases are only included in verbose mode, matching the text report.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	switch {
	case f.opts.Quiet:
		return encoder.Encode(quietReport{
			Well:    report.Well.Name,
			OK:      !report.HasMissing(),
			Summary: report.Summary,
		})
	case f.opts.Verbose:
		return encoder.Encode(report)
	}
	return encoder.Encode(brief(report))
}

// brief returns a shallow copy of r without the per-well curve list and the
// skipped aliases.
func brief(r *Report) *Report {
	out := *r
	out.Well.Curves = nil
	out.Resolutions = make([]Resolution, len(r.Resolutions))
	for i, res := range r.Resolutions {
		res.Skipped = nil
		out.Resolutions[i] = res
	}
	return &out
}
