package gmwm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/wv"
)

// multiStart runs the joint optimization once per starting candidate and
// returns the terminal unconstrained parameters with the smallest objective
// value. Candidates are the per-replicate single-series fits, visited in
// replicate order; a strict less-than comparison makes the lowest replicate
// index win ties. A failed candidate is logged and skipped; estimation fails
// only when every candidate fails.
func multiStart(spec *model.Spec, set *wv.ReplicateSet, cfg *Config) ([]float64, float64, error) {
	log := cfg.logger()
	fit := cfg.singleFit()

	var (
		bestU   []float64
		bestObj float64
		found   bool
		lastErr error
	)
	for i := 0; i < set.Len(); i++ {
		start, err := fit(spec, set.At(i))
		if err != nil {
			log.Debug("single-series fit failed, candidate skipped",
				zap.Int("replicate", i), zap.Error(err))
			lastErr = err
			continue
		}

		u0, err := model.ToUnconstrained(spec, start)
		if err != nil {
			log.Debug("candidate start outside parameter domain, skipped",
				zap.Int("replicate", i), zap.Error(err))
			lastErr = err
			continue
		}

		u, obj, err := localMinimize(spec, set, u0, cfg)
		if err != nil {
			log.Debug("joint optimization failed, candidate skipped",
				zap.Int("replicate", i), zap.Error(err))
			lastErr = err
			continue
		}

		log.Debug("multi-start candidate",
			zap.Int("replicate", i), zap.Float64("objective", obj))
		if !found || obj < bestObj {
			bestU, bestObj, found = u, obj, true
		}
	}

	if !found {
		return nil, 0, fmt.Errorf("%w: every starting candidate failed: %v", ErrOptimization, lastErr)
	}
	return bestU, bestObj, nil
}
