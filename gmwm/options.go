package gmwm

import (
	"errors"

	"go.uber.org/zap"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/wv"
)

// Estimation failure modes. Configuration errors are raised before any
// optimization begins; numerical failures abort only the draw or candidate
// that hit them.
var (
	// ErrMissingModel reports an estimation call without a replicate set, or
	// a reuse request with no prior fit available.
	ErrMissingModel = errors.New("gmwm: no model or replicate data supplied")

	// ErrWeighting reports a zero or non-finite empirical-WV confidence
	// half-width used as a weight denominator.
	ErrWeighting = errors.New("gmwm: degenerate wavelet variance weight")

	// ErrOptimization reports a local optimizer that failed to converge
	// within its iteration budget.
	ErrOptimization = errors.New("gmwm: optimization failed to converge")
)

// SingleFitFunc fits a model to one replicate alone, returning natural-unit
// parameters. Used to seed the multi-start search, one candidate per
// replicate.
type SingleFitFunc func(spec *model.Spec, rep *wv.Replicate) ([]float64, error)

// Config holds estimation configuration.
type Config struct {
	// Bootstrap enables replicate-resampling confidence intervals.
	Bootstrap bool
	// BMax caps the number of bootstrap draws. When the exhaustive multiset
	// universe C(2R-1, R) is smaller, every resample is enumerated instead.
	BMax int
	// Alpha is the two-sided significance level of the confidence intervals.
	Alpha float64

	// Test enables the parametric-bootstrap near-stationarity test.
	Test bool
	// TestB is the number of null-distribution draws.
	TestB int
	// TestAlpha is the significance level of the stationarity decision.
	TestAlpha float64

	// Seed is the top-level seed from which every stochastic draw derives
	// its own sub-seed.
	Seed uint64

	// MaxIter bounds the major iterations of each Nelder-Mead run.
	MaxIter int
	// Tol is the absolute function-convergence tolerance.
	Tol float64
	// Parallelism bounds the worker count of bootstrap and null-simulation
	// loops; zero means one worker per available CPU.
	Parallelism int

	// SingleFit overrides the built-in single-replicate fitter used to
	// generate multi-start candidates.
	SingleFit SingleFitFunc

	// Prior, when set, requests reuse of a previous fit: optimization is
	// skipped whenever no model is supplied or the supplied model names the
	// same ordered process sequence.
	Prior *Result

	// Logger receives debug-level progress. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns the default estimation configuration: no bootstrap,
// no stationarity test, 100 bootstrap draws maximum at the 5% level.
func DefaultConfig() *Config {
	return &Config{
		BMax:      100,
		Alpha:     0.05,
		TestB:     100,
		TestAlpha: 0.05,
		Seed:      1,
		MaxIter:   2000,
		Tol:       1e-10,
		Logger:    zap.NewNop(),
	}
}

// logger returns the configured logger, or a no-op logger when unset.
func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
