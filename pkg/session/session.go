// Package session holds the state of a single plotting run: one well, its
// optional formation tops, and the alias table used to pick curves.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/las"
	"github.com/ccollicutt/wellplot/pkg/mnemonic"
	"github.com/ccollicutt/wellplot/pkg/tops"
)

// ErrNoDepth is returned when the index curve holds no usable depth.
var ErrNoDepth = errors.New("index curve has no valid depth values")

// Options describes the inputs of a run.
type Options struct {
	// LASPath is the well-log file to load (required).
	LASPath string

	// TopsPath is an optional formation-tops CSV file.
	TopsPath string

	// Config supplies the alias table and LAS decoding settings. It is
	// validated by Open. Nil means defaults.
	Config *config.Config

	// Logger receives diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Session is the per-run context.
type Session struct {
	ID       uuid.UUID
	LASPath  string
	TopsPath string
	Config   *config.Config

	Well *las.Well

	// Tops is nil when no tops file was given or it could not be read.
	Tops *tops.Table

	// TopsErr records why the tops file was skipped.
	TopsErr error

	resolver *mnemonic.Resolver
	logger   *zap.Logger
}

// Open loads the well and tops described by opts. Only a failure to read the
// LAS file is fatal; an unreadable tops file is logged and skipped.
func Open(ctx context.Context, opts Options) (*Session, error) {
	if opts.LASPath == "" {
		return nil, errors.New("LAS file path is required")
	}

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.LoadOrDefault(ctx, "")
		if err != nil {
			return nil, err
		}
	} else if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		ID:       uuid.New(),
		LASPath:  opts.LASPath,
		TopsPath: opts.TopsPath,
		Config:   cfg,
	}
	s.logger = logger.With(zap.String("run_id", s.ID.String()))

	well, err := las.Read(ctx, opts.LASPath,
		las.WithEncoding(cfg.LAS.Encoding),
		las.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}
	s.Well = well
	s.logger.Debug("loaded well",
		zap.String("file", opts.LASPath),
		zap.String("well", well.Name()),
		zap.Int("curves", len(well.Curves)),
		zap.Int("rows", well.Rows()),
	)

	if opts.TopsPath != "" {
		s.loadTops(ctx)
	}

	s.resolver = mnemonic.NewResolver(cfg.AliasTable(), mnemonic.WithLogger(s.logger))
	return s, nil
}

func (s *Session) loadTops(ctx context.Context) {
	table, err := tops.Load(ctx, s.TopsPath)
	if err != nil {
		s.TopsErr = err
		s.logger.Warn("skipping formation tops", zap.Error(err))
		return
	}
	if table.Dropped > 0 {
		s.logger.Warn("formation tops with invalid depth excluded",
			zap.String("file", s.TopsPath),
			zap.Int("dropped", table.Dropped),
		)
	}
	s.Tops = table
}

// Logger returns the run's logger.
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Resolve resolves the categories drawn on the figure.
func (s *Session) Resolve() Resolutions {
	return s.resolver.ResolveAll(s.Well, mnemonic.PlotCategories...)
}

// Inspect resolves every category of the alias table.
func (s *Session) Inspect() Resolutions {
	return s.resolver.ResolveAll(s.Well)
}

// DepthWindow returns the plotted depth range: the configured bounds where
// set, otherwise the extent of the index curve.
func (s *Session) DepthWindow() (top, base float64, err error) {
	top, base = math.Inf(1), math.Inf(-1)
	for _, d := range s.Well.Depth() {
		if math.IsNaN(d) {
			continue
		}
		top = math.Min(top, d)
		base = math.Max(base, d)
	}
	if math.IsInf(top, 1) {
		return 0, 0, ErrNoDepth
	}

	if s.Config.Depth.Top != nil {
		top = *s.Config.Depth.Top
	}
	if s.Config.Depth.Base != nil {
		base = *s.Config.Depth.Base
	}
	if top > base {
		return 0, 0, fmt.Errorf("depth window top %g is below base %g", top, base)
	}
	if top == base {
		base = top + 1
	}
	return top, base, nil
}

// Resolutions is an ordered list of resolution results.
type Resolutions []mnemonic.Result

// Get returns the result for a category.
func (r Resolutions) Get(category string) (mnemonic.Result, bool) {
	for _, res := range r {
		if res.Category == category {
			return res, true
		}
	}
	return mnemonic.Result{}, false
}

// Values returns the resolved curve for category, or nil when none was found.
func (r Resolutions) Values(category string) []float64 {
	res, ok := r.Get(category)
	if !ok || !res.Found {
		return nil
	}
	return res.Values
}

// Missing lists the categories that did not resolve.
func (r Resolutions) Missing() []string {
	var out []string
	for _, res := range r {
		if !res.Found {
			out = append(out, res.Category)
		}
	}
	return out
}
