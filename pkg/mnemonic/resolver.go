package mnemonic

import (
	"go.uber.org/zap"
)

// Resolver picks the best available curve for each category of an alias table.
// It holds no per-well state and may be reused across curve sets.
type Resolver struct {
	table  Table
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for missing-curve diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver over the given table.
func NewResolver(table Table, opts ...Option) *Resolver {
	r := &Resolver{
		table:  table,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Table returns the alias table the resolver was built with.
func (r *Resolver) Table() Table {
	return r.table
}

// Resolve returns the first alias of group present in curves with at least
// one non-missing value. Aliases whose curves are entirely missing are
// skipped as if absent. It never fails: when nothing matches, the result has
// Found set to false. A nil curve set matches nothing.
func (r *Resolver) Resolve(group Group, curves CurveSet) Result {
	res := Result{Category: group.Name}
	if curves == nil {
		group.Aliases = nil
	}
	for _, alias := range group.Aliases {
		values, ok := curves.Curve(alias)
		if !ok {
			continue
		}
		if AllMissing(values) {
			r.logger.Warn("curve found but contains only missing values",
				zap.String("category", group.Name),
				zap.String("alias", alias),
			)
			res.Skipped = append(res.Skipped, alias)
			continue
		}
		res.Mnemonic = alias
		res.Values = values
		res.Found = true
		return res
	}

	r.logger.Warn("no matching curve found",
		zap.String("category", group.Name),
		zap.String("primary", group.Primary()),
	)
	return res
}

// ResolveCategory resolves the named group of the resolver's table.
// Unknown categories resolve to a not-found result.
func (r *Resolver) ResolveCategory(name string, curves CurveSet) Result {
	group, ok := r.table.Group(name)
	if !ok {
		r.logger.Warn("unknown curve category", zap.String("category", name))
		return Result{Category: name}
	}
	return r.Resolve(group, curves)
}

// ResolveAll resolves each named category in order. With no names, every
// group of the table is resolved.
func (r *Resolver) ResolveAll(curves CurveSet, names ...string) []Result {
	if len(names) == 0 {
		names = r.table.Names()
	}
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, r.ResolveCategory(name, curves))
	}
	return results
}
