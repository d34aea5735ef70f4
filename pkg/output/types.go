// Package output provides formatting for curve resolution reports.
package output

import (
	"slices"
	"time"

	"github.com/ccollicutt/wellplot/pkg/mnemonic"
	"github.com/ccollicutt/wellplot/pkg/session"
)

// Report describes which curve was chosen for each category of a well.
type Report struct {
	Well        WellInfo     `json:"well"`
	Resolutions []Resolution `json:"resolutions"`
	Tops        *TopsSummary `json:"tops,omitempty"`
	Summary     Summary      `json:"summary"`
	Metadata    Metadata     `json:"metadata"`
}

// WellInfo is the header metadata of the well.
type WellInfo struct {
	Name      string   `json:"name,omitempty"`
	UWI       string   `json:"uwi,omitempty"`
	Version   string   `json:"las_version"`
	Rows      int      `json:"rows"`
	DepthUnit string   `json:"depth_unit,omitempty"`
	Top       *float64 `json:"top,omitempty"`
	Base      *float64 `json:"base,omitempty"`
	Curves    []string `json:"curves,omitempty"`
}

// Resolution is the outcome for one category.
type Resolution struct {
	Category   string   `json:"category"`
	Mnemonic   string   `json:"mnemonic,omitempty"`
	Found      bool     `json:"found"`
	Plotted    bool     `json:"plotted"`
	ValidCount int      `json:"valid_samples"`
	Skipped    []string `json:"skipped,omitempty"`
}

// TopsSummary describes the formation tops file.
type TopsSummary struct {
	File    string `json:"file"`
	Rows    int    `json:"rows"`
	Dropped int    `json:"dropped"`
	Error   string `json:"error,omitempty"`
}

// Summary provides aggregate counts.
type Summary struct {
	// Categories is the number of categories resolved.
	Categories int `json:"categories"`

	// Resolved is the number of categories with a selected curve.
	Resolved int `json:"resolved"`

	// MissingPlotted lists figure categories without a usable curve.
	MissingPlotted []string `json:"missing_plotted"`
}

// Metadata provides context about the run.
type Metadata struct {
	RunID       string    `json:"run_id"`
	LASFile     string    `json:"las_file"`
	ConfigFile  string    `json:"config_file,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport builds a Report from a session and its resolutions.
func NewReport(s *session.Session, results session.Resolutions, configFile string) *Report {
	well := s.Well
	report := &Report{
		Well: WellInfo{
			Name:      well.Name(),
			UWI:       well.UWI(),
			Version:   well.VersionString(),
			Rows:      well.Rows(),
			DepthUnit: well.DepthUnit(),
			Curves:    well.Mnemonics(),
		},
		Metadata: Metadata{
			RunID:       s.ID.String(),
			LASFile:     s.LASPath,
			ConfigFile:  configFile,
			GeneratedAt: time.Now().UTC(),
		},
		Summary: Summary{MissingPlotted: []string{}},
	}

	if top, base, err := s.DepthWindow(); err == nil {
		report.Well.Top, report.Well.Base = &top, &base
	}

	for _, res := range results {
		plotted := slices.Contains(mnemonic.PlotCategories, res.Category)
		report.Resolutions = append(report.Resolutions, Resolution{
			Category:   res.Category,
			Mnemonic:   res.Mnemonic,
			Found:      res.Found,
			Plotted:    plotted,
			ValidCount: res.ValidCount(),
			Skipped:    res.Skipped,
		})
		report.Summary.Categories++
		if res.Found {
			report.Summary.Resolved++
		} else if plotted {
			report.Summary.MissingPlotted = append(report.Summary.MissingPlotted, res.Category)
		}
	}

	if s.TopsPath != "" {
		report.Tops = &TopsSummary{File: s.TopsPath}
		if s.Tops != nil {
			report.Tops.Rows = s.Tops.Len()
			report.Tops.Dropped = s.Tops.Dropped
		}
		if s.TopsErr != nil {
			report.Tops.Error = s.TopsErr.Error()
		}
	}

	return report
}

// HasMissing returns true if a plotted category did not resolve.
func (r *Report) HasMissing() bool {
	return len(r.Summary.MissingPlotted) > 0
}
