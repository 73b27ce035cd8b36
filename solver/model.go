package solver

import (
	"context"

	"go.uber.org/zap"
)

// DefaultMethod is the method name passed to the engine when none is configured.
const DefaultMethod = "highs"

// Solve normalizes the problem, runs it through the configured engine and returns the
// solution in the problem's original sense.
//
// Options can be set using SolveOptions:
//
//	solution, err := solver.Solve(p,
//		solver.WithMinimumForAll(0.1),
//		solver.WithMethod("highs"),
//	)
//
// An error is returned only for an invalid problem or configuration. Infeasible,
// unbounded and failed solves are reported through Solution.Status.
func Solve(p *Problem, opts ...SolveOption) (*Solution, error) {
	return SolveContext(context.Background(), p, opts...)
}

// SolveContext is like Solve but hands ctx to the engine.
func SolveContext(ctx context.Context, p *Problem, opts ...SolveOption) (*Solution, error) {
	cfg := newSolveConfig(opts)

	canonical, err := normalize(p, cfg)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("normalized problem",
		zap.Int("vars", len(canonical.Objective)),
		zap.Int("ub_rows", len(canonical.UpperRight)),
		zap.Int("eq_rows", len(canonical.EqualRight)),
		zap.String("sense", p.sense.String()),
		zap.String("method", cfg.method),
	)

	raw, err := cfg.engine.Solve(ctx, canonical, cfg.method)
	var sol *Solution
	if err != nil {
		cfg.logger.Warn("engine failed", zap.String("method", cfg.method), zap.Error(err))
		sol = adaptError(err)
	} else {
		sol = Adapt(raw, p.sense)
	}
	sol.Sense = p.sense
	sol.Coefficients = copyVector(p.objective)

	cfg.logger.Debug("solve finished",
		zap.Stringer("status", sol.Status),
		zap.Float64("objective", sol.Objective),
		zap.String("message", sol.Message),
	)
	return sol, nil
}

// SolveOption configures normalization and the delegated solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	nonNegative bool
	minimum     *float64
	maximum     *float64
	bounds      []Bound
	method      string
	engine      Engine
	logger      *zap.Logger
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		nonNegative: true,
		method:      DefaultMethod,
		logger:      zap.NewNop(),
	}
}

func newSolveConfig(opts []SolveOption) *solveConfig {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.engine == nil {
		cfg.engine = NewSimplexEngine()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// WithNonNegativity controls the default lower bound of every variable:
// 0 when enabled (the default), -∞ when disabled.
func WithNonNegativity(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.nonNegative = enabled
	}
}

// WithMinimumForAll sets the lower bound of every variable, overriding the
// non-negativity default. Ignored when explicit bounds are given.
func WithMinimumForAll(v float64) SolveOption {
	return func(c *solveConfig) {
		c.minimum = &v
	}
}

// WithMaximumForAll sets the upper bound of every variable.
// Ignored when explicit bounds are given.
func WithMaximumForAll(v float64) SolveOption {
	return func(c *solveConfig) {
		c.maximum = &v
	}
}

// WithBounds sets explicit per-variable bounds. They are used verbatim and must have
// one entry per variable.
func WithBounds(bounds []Bound) SolveOption {
	return func(c *solveConfig) {
		c.bounds = append([]Bound(nil), bounds...)
	}
}

// WithMethod sets the algorithm name passed through to the engine.
func WithMethod(method string) SolveOption {
	return func(c *solveConfig) {
		c.method = method
	}
}

// WithEngine replaces the default simplex engine.
func WithEngine(e Engine) SolveOption {
	return func(c *solveConfig) {
		c.engine = e
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) SolveOption {
	return func(c *solveConfig) {
		c.logger = l
	}
}
