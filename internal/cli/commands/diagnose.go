package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/las"
	"github.com/ccollicutt/wellplot/pkg/session"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	ConfigFile string
	TopsFile   string
	Verbose    bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <las-file>",
		Short: "Diagnose common input file issues",
		Long: `Diagnose common problems with a LAS file and its companion inputs.

This command checks:
- Config file syntax and limits (when --config is given)
- LAS file existence, version and encoding
- Well header items (WELL, UWI) and rows dropped while parsing
- Depth index coverage and ordering
- Curve resolution for every plotted category
- Formation tops file rows and depth coverage (when --tops is given)

Example:
  wellplot diagnose well.las
  wellplot diagnose -v --tops tops.csv well.las  # verbose output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file")
	cmd.Flags().StringVar(&opts.TopsFile, "tops", "", "Formation tops CSV file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(cmd *cobra.Command, lasPath string, opts *DiagnoseOptions) error {
	ctx, logger := commandContext(cmd)
	results := diagnose(ctx, logger, lasPath, opts)
	printDiagnostics(cmd.OutOrStdout(), results, opts)
	return nil
}

// diagnose runs the checks in order, stopping at the first fatal one.
func diagnose(ctx context.Context, logger *zap.Logger, lasPath string, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	cfg, result := checkConfig(ctx, opts.ConfigFile)
	results = append(results, result)
	if result.Status == "error" {
		return results
	}

	result = checkFileExists("LAS File", lasPath)
	results = append(results, result)
	if result.Status == "error" {
		return results
	}

	s, result := checkLASReadable(ctx, logger, cfg, lasPath, opts.TopsFile)
	results = append(results, result)
	if result.Status == "error" {
		return results
	}

	results = append(results, checkHeader(s))
	results = append(results, checkIndex(s))
	results = append(results, checkCurves(s))
	if opts.TopsFile != "" {
		results = append(results, checkTops(s))
	}
	return results
}

// checkFileExists verifies that path is a readable, non-empty regular file.
func checkFileExists(check, path string) DiagnosticResult {
	result := DiagnosticResult{Check: check}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("File not found: %s", path)
		result.Suggests = []string{"Check the file path is correct"}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "File is empty"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkConfig(ctx context.Context, path string) (*config.Config, DiagnosticResult) {
	result := DiagnosticResult{Check: "Config"}

	if path != "" {
		if exists := checkFileExists("Config", path); exists.Status == "error" {
			exists.Suggests = append(exists.Suggests,
				"Use 'wellplot inspect --write-config wellplot.yaml <las-file>' to generate a starter config")
			return nil, exists
		}
	}

	cfg, err := config.LoadOrDefault(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to load config: %v", err)
		result.Suggests = []string{"Run 'wellplot validate <config-file>' for details"}
		return nil, result
	}

	result.Status = "ok"
	if path == "" {
		result.Message = "No config file given, using built-in defaults"
	} else {
		result.Message = fmt.Sprintf("Loaded: %s", path)
	}
	result.Details = []string{
		fmt.Sprintf("Alias groups: %d", cfg.AliasTable().Len()),
		fmt.Sprintf("LAS encoding: %s", cfg.LAS.Encoding),
	}
	return cfg, result
}

func checkLASReadable(ctx context.Context, logger *zap.Logger, cfg *config.Config, lasPath, topsPath string) (*session.Session, DiagnosticResult) {
	result := DiagnosticResult{Check: "LAS Parse"}

	s, err := session.Open(ctx, session.Options{
		LASPath:  lasPath,
		TopsPath: topsPath,
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Failed to read LAS file: %v", err)
		switch {
		case errors.Is(err, las.ErrUnsupportedVersion):
			result.Suggests = []string{"Only LAS 1.x and 2.x files are supported"}
		case errors.Is(err, las.ErrNoCurves):
			result.Suggests = []string{"Check that the file has a ~C (curve information) section"}
		case errors.Is(err, las.ErrNoData):
			result.Suggests = []string{"Check that the file has an ~A (ASCII data) section with rows"}
		default:
			result.Suggests = []string{
				fmt.Sprintf("If the file is not UTF-8, set las.encoding (one of %s)", strings.Join(las.Encodings, ", ")),
			}
		}
		return nil, result
	}

	well := s.Well
	result.Status = "ok"
	result.Message = fmt.Sprintf("LAS %s, %d curves, %d rows", well.VersionString(), len(well.Curves), well.Rows())
	if well.Wrapped {
		result.Details = append(result.Details, "Data section is wrapped")
	}
	return s, result
}

func checkHeader(s *session.Session) DiagnosticResult {
	result := DiagnosticResult{Check: "Well Header", Status: "ok"}
	well := s.Well

	name, uwi := well.Name(), well.UWI()
	result.Message = fmt.Sprintf("Well: %s", valueOr(name, "(unnamed)"))
	if uwi != "" {
		result.Message += fmt.Sprintf(", UWI: %s", uwi)
	}

	if name == "" {
		result.Status = "warning"
		result.Details = append(result.Details, "WELL item is missing or empty; the figure title will omit it")
	}
	if uwi == "" {
		result.Status = "warning"
		result.Details = append(result.Details, "Neither UWI nor API is set")
	}
	if well.DroppedRows > 0 {
		result.Status = "warning"
		result.Details = append(result.Details,
			fmt.Sprintf("%d data rows dropped for having the wrong number of values", well.DroppedRows))
		result.Suggests = append(result.Suggests, "Check the ~A section for truncated or merged rows")
	}
	return result
}

func checkIndex(s *session.Session) DiagnosticResult {
	result := DiagnosticResult{Check: "Depth Index"}

	top, base, err := s.DepthWindow()
	if err != nil {
		result.Status = "error"
		result.Message = err.Error()
		if errors.Is(err, session.ErrNoDepth) {
			result.Suggests = []string{"The first curve of the file must be the depth index"}
		} else {
			result.Suggests = []string{"Check depth.top and depth.base in the config or the --top/--base flags"}
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%g - %g %s", top, base, s.Well.DepthUnit())

	missing, reversals := 0, 0
	prev := math.NaN()
	for _, d := range s.Well.Depth() {
		if math.IsNaN(d) {
			missing++
			continue
		}
		if !math.IsNaN(prev) && d <= prev {
			reversals++
		}
		prev = d
	}
	if missing > 0 {
		result.Status = "warning"
		result.Details = append(result.Details, fmt.Sprintf("%d rows have a null depth", missing))
	}
	if reversals > 0 {
		result.Status = "warning"
		result.Details = append(result.Details, fmt.Sprintf("Depth does not increase at %d rows", reversals))
		result.Suggests = append(result.Suggests, "Curves are drawn in file order; sort the file by depth")
	}
	return result
}

func checkCurves(s *session.Session) DiagnosticResult {
	result := DiagnosticResult{Check: "Curve Resolution"}

	results := s.Resolve()
	for _, r := range results {
		if r.Found {
			detail := fmt.Sprintf("%s: %s (%d samples)", r.Category, r.Mnemonic, r.ValidCount())
			if len(r.Skipped) > 0 {
				detail += fmt.Sprintf(", skipped all-null %s", strings.Join(r.Skipped, ", "))
			}
			result.Details = append(result.Details, detail)
		} else {
			result.Details = append(result.Details, fmt.Sprintf("%s: none", r.Category))
		}
	}

	missing := results.Missing()
	if len(missing) == 0 {
		result.Status = "ok"
		result.Message = fmt.Sprintf("All %d plotted categories resolved", len(results))
		return result
	}

	result.Status = "warning"
	result.Message = fmt.Sprintf("%d of %d plotted categories have no usable curve: %s",
		len(missing), len(results), strings.Join(missing, ", "))
	result.Suggests = []string{
		"Run 'wellplot inspect -v <las-file>' to list the file's mnemonics",
		"Add the file's mnemonic to the category under 'aliases' in the config",
	}
	return result
}

func checkTops(s *session.Session) DiagnosticResult {
	result := DiagnosticResult{Check: "Formation Tops"}

	if s.TopsErr != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Tops file skipped: %v", s.TopsErr)
		result.Suggests = []string{"The tops file needs a header row with Depth and TopName columns"}
		return result
	}

	table := s.Tops
	result.Status = "ok"
	result.Message = fmt.Sprintf("%d tops loaded", table.Len())

	if table.Dropped > 0 {
		result.Status = "warning"
		result.Details = append(result.Details,
			fmt.Sprintf("%d rows excluded for a missing or non-numeric depth", table.Dropped))
	}

	if top, base, err := s.DepthWindow(); err == nil {
		if outside := table.Len() - len(table.Within(top, base)); outside > 0 {
			result.Status = "warning"
			result.Details = append(result.Details,
				fmt.Sprintf("%d tops fall outside the depth window %g - %g and will not be drawn", outside, top, base))
		}
	}
	return result
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== wellplot Input Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Fprintln(w, "\nFix the errors above before plotting.")
	} else if warnCount > 0 {
		fmt.Fprintln(w, "\nThe file can be plotted but has warnings.")
	} else {
		fmt.Fprintln(w, "\nInputs look good!")
	}
}
