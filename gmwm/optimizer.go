package gmwm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/wv"
)

// localMinimize runs one derivative-free Nelder-Mead descent of the GMWM
// objective from the unconstrained starting point u0, returning the terminal
// unconstrained parameters and objective value. Weights must have been
// validated by the caller.
func localMinimize(spec *model.Spec, set *wv.ReplicateSet, u0 []float64, cfg *Config) ([]float64, float64, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluate(spec, set, x)
		},
	}
	settings := &optimize.Settings{
		MajorIterations: cfg.MaxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tol,
			Iterations: 50,
		},
	}

	start := make([]float64, len(u0))
	copy(start, u0)

	res, err := optimize.Minimize(problem, start, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrOptimization, err)
	}
	if res.Status == optimize.IterationLimit || res.Status == optimize.FunctionEvaluationLimit {
		return nil, 0, fmt.Errorf("%w: hit iteration budget (%d major iterations)",
			ErrOptimization, res.MajorIterations)
	}
	if math.IsNaN(res.F) || math.IsInf(res.F, 0) {
		return nil, 0, fmt.Errorf("%w: non-finite terminal objective %v", ErrOptimization, res.F)
	}
	return res.X, res.F, nil
}
