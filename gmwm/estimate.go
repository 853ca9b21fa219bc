package gmwm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/wv"
)

// VerdictNotComputed labels result attributes gated by a disabled flag.
const VerdictNotComputed = "not computed"

// Stationarity verdicts.
const (
	VerdictStationary       = "stationary"
	VerdictNearlyStationary = "nearly-stationary"
)

// FittedModel is the outcome of one joint optimization: estimated
// natural-unit parameters, the objective value at the optimum, and the
// implied wavelet variance on the reference scale grid, total and decomposed
// per process. Never mutated after construction; re-estimation produces a
// new FittedModel.
type FittedModel struct {
	// Spec carries the fitted process structure with the estimated
	// parameters installed.
	Spec *model.Spec
	// Params are the estimated parameters in natural units, aligned with
	// Names.
	Params []float64
	Names  []string
	// Objective is the weighted residual sum at the optimum.
	Objective float64
	// Tau is the reference scale grid (the longest grid among the fitted
	// replicates).
	Tau []float64
	// WV is the implied total theoretical wavelet variance on Tau.
	WV []float64
	// Decomposition holds one implied WV vector per process, in model
	// order, on Tau.
	Decomposition [][]float64
}

// Interval holds bootstrap confidence bounds per parameter, plus the raw
// resampled parameter matrix. Computed is false (and the remaining fields
// empty) when the Bootstrap flag was off.
type Interval struct {
	Computed bool
	// Low and High are the empirical alpha/2 and 1-alpha/2 quantile bounds,
	// aligned with the fitted parameter vector.
	Low  []float64
	High []float64
	// Draws is the resampled natural-unit parameter matrix, one row per
	// successful bootstrap draw.
	Draws [][]float64
	// Failed counts draws discarded due to optimization failure.
	Failed int
	// Exhaustive reports whether the resample universe was enumerated
	// exactly rather than sampled.
	Exhaustive bool
}

// TestResult is the near-stationarity test outcome. Computed is false and
// Verdict is VerdictNotComputed when the Test flag was off.
type TestResult struct {
	Computed bool
	// PValue is the one-sided fraction of null objective values at or above
	// the observed objective.
	PValue  float64
	Verdict string
	// NullObjectives is the simulated null distribution of the objective.
	NullObjectives []float64
	// Failed counts null draws discarded due to optimization failure.
	Failed int
}

// Result is the top-level estimation output. Read-only after construction.
type Result struct {
	Fitted *FittedModel
	// Set is the replicate set the model was estimated (or reused) against.
	Set *wv.ReplicateSet
	// CI and Stationarity are always present so consumers can inspect the
	// same attributes whether or not the corresponding flag was set.
	CI           *Interval
	Stationarity *TestResult
}

// Params returns the fitted point estimates in natural units, aligned with
// Names.
func (r *Result) Params() []float64 {
	return r.Fitted.Params
}

// Names returns the human-readable parameter names.
func (r *Result) Names() []string {
	return r.Fitted.Names
}

// Estimate fits spec to the replicate set, or reuses a prior fit when the
// configuration requests it, then optionally attaches bootstrap confidence
// intervals and the near-stationarity test.
//
// Reuse applies when cfg.Prior is set and either spec is nil or spec names
// the same ordered process sequence as the prior fit; the stored FittedModel
// is returned without re-optimization. Fails with ErrMissingModel when set
// is nil, or when spec is nil and no prior fit is available.
func Estimate(set *wv.ReplicateSet, spec *model.Spec, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := cfg.logger()

	if set == nil {
		return nil, fmt.Errorf("%w: replicate set is required", ErrMissingModel)
	}

	fitted, err := fitOrReuse(set, spec, cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Fitted:       fitted,
		Set:          set,
		CI:           &Interval{},
		Stationarity: &TestResult{Verdict: VerdictNotComputed},
	}

	if cfg.Bootstrap {
		ci, err := confidenceIntervals(fitted, set, cfg)
		if err != nil {
			return nil, err
		}
		result.CI = ci
	}
	if cfg.Test {
		st, err := stationarityTest(fitted, set, cfg)
		if err != nil {
			return nil, err
		}
		result.Stationarity = st
		log.Debug("near-stationarity test",
			zap.Float64("p_value", st.PValue), zap.String("verdict", st.Verdict))
	}
	return result, nil
}

// fitOrReuse resolves the fresh-estimate / reuse / invalid configurations.
func fitOrReuse(set *wv.ReplicateSet, spec *model.Spec, cfg *Config) (*FittedModel, error) {
	if cfg.Prior != nil && cfg.Prior.Fitted != nil {
		prior := cfg.Prior.Fitted
		if spec == nil || spec.SameProcesses(prior.Spec) {
			cfg.logger().Debug("reusing prior fit, optimization skipped")
			return prior, nil
		}
	}
	if spec == nil {
		return nil, fmt.Errorf("%w: no model supplied and no prior fit to reuse", ErrMissingModel)
	}
	return fit(set, spec, cfg)
}

// fit runs the full multi-start estimation and assembles the FittedModel on
// the set's reference grid.
func fit(set *wv.ReplicateSet, spec *model.Spec, cfg *Config) (*FittedModel, error) {
	if err := checkWeights(set); err != nil {
		return nil, err
	}

	u, obj, err := multiStart(spec, set, cfg)
	if err != nil {
		return nil, err
	}
	params, err := model.ToNatural(spec, u)
	if err != nil {
		return nil, err
	}
	fittedSpec, err := spec.WithParams(params)
	if err != nil {
		return nil, err
	}

	tau := set.ReferenceTau()
	total, err := fittedSpec.WV(params, tau)
	if err != nil {
		return nil, err
	}
	decomp, err := fittedSpec.DecomposeWV(params, tau)
	if err != nil {
		return nil, err
	}

	cfg.logger().Debug("model fitted",
		zap.Float64("objective", obj), zap.Int("parameters", len(params)))

	return &FittedModel{
		Spec:          fittedSpec,
		Params:        params,
		Names:         fittedSpec.ParamNames(),
		Objective:     obj,
		Tau:           append([]float64(nil), tau...),
		WV:            total,
		Decomposition: decomp,
	}, nil
}
