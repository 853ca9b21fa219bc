package gmwm

import (
	"fmt"
	"math"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/wv"
)

// Objective evaluates the multi-replicate GMWM objective at an unconstrained
// parameter vector: for every replicate, the squared residuals between its
// empirical wavelet variance and the theoretical wavelet variance on its own
// scale grid, each scale weighted by the reciprocal squared confidence
// half-width, summed over scales and replicates.
//
// Pure and deterministic. Fails with ErrWeighting when any half-width in the
// set is zero or non-finite, and with model.ErrInvalidModel on a vector of
// the wrong length.
func Objective(spec *model.Spec, set *wv.ReplicateSet, unconstrained []float64) (float64, error) {
	if len(unconstrained) != spec.Len() {
		return 0, fmt.Errorf("%w: expected %d parameters, got %d",
			model.ErrInvalidModel, spec.Len(), len(unconstrained))
	}
	if err := checkWeights(set); err != nil {
		return 0, err
	}
	return evaluate(spec, set, unconstrained), nil
}

// checkWeights validates every confidence half-width in the set before it is
// used as a weight denominator. A zero half-width is never substituted with
// a default weight.
func checkWeights(set *wv.ReplicateSet) error {
	for i := 0; i < set.Len(); i++ {
		for j, c := range set.At(i).CIHalfWidth() {
			if c == 0 || math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: replicate %d scale index %d has half-width %v",
					ErrWeighting, i, j, c)
			}
		}
	}
	return nil
}

// evaluate is the unchecked objective core, called thousands of times per
// optimizer run. Callers must have validated weights via checkWeights and
// the vector length beforehand.
func evaluate(spec *model.Spec, set *wv.ReplicateSet, unconstrained []float64) float64 {
	natural, err := model.ToNatural(spec, unconstrained)
	if err != nil {
		return math.Inf(1)
	}

	total := 0.0
	for i := 0; i < set.Len(); i++ {
		rep := set.At(i)
		theo, err := spec.WV(natural, rep.Tau())
		if err != nil {
			return math.Inf(1)
		}
		emp := rep.WV()
		ci := rep.CIHalfWidth()
		for j := range theo {
			r := emp[j] - theo[j]
			total += r * r / (ci[j] * ci[j])
		}
	}
	return total
}
