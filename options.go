package finitediff

import (
	"fmt"
	"math"
)

// Option configures a differentiation call.
type Option func(*config)

type config struct {
	accuracy Accuracy
	step     float64
	stepSet  bool
	workers  int
}

func defaultConfig() config {
	return config{accuracy: Second}
}

// newConfig applies opts on top of the defaults and validates the result.
// defaultStep is used when no WithStep option was given.
func newConfig(defaultStep float64, opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.stepSet {
		cfg.step = defaultStep
	}

	if cfg.step <= 0 || math.IsNaN(cfg.step) || math.IsInf(cfg.step, 0) {
		return config{}, fmt.Errorf("%w: got %g", ErrInvalidStep, cfg.step)
	}

	return cfg, nil
}

// WithAccuracy selects the accuracy order of the stencil. The default is
// Second.
func WithAccuracy(order Accuracy) Option {
	return func(c *config) {
		c.accuracy = order
	}
}

// WithStep sets the perturbation step size. The default is DefaultStep for
// gradients and Jacobians and DefaultHessianStep for Hessians. The step
// must be positive and finite.
func WithStep(eps float64) Option {
	return func(c *config) {
		c.step = eps
		c.stepSet = true
	}
}

// WithConcurrency distributes the independent perturbations of a call
// across up to workers goroutines. Each worker perturbs its own copy of
// the evaluation point, so f is called concurrently and must be safe for
// concurrent use. Values below 2 keep the evaluation sequential.
//
// Results are identical to sequential evaluation: every output element is
// accumulated by exactly one worker in the same order as the sequential
// loop.
func WithConcurrency(workers int) Option {
	return func(c *config) {
		c.workers = workers
	}
}
