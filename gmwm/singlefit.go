package gmwm

import (
	"math"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/process"
	"github.com/sartorproj/gogmwm/wv"
)

// singleFit returns the configured single-replicate fitter, falling back to
// the built-in moment-seeded fit.
func (c *Config) singleFit() SingleFitFunc {
	if c.SingleFit != nil {
		return c.SingleFit
	}
	return func(spec *model.Spec, rep *wv.Replicate) ([]float64, error) {
		return momentSingleFit(spec, rep, c)
	}
}

// momentSingleFit fits spec to one replicate alone: moment-matched initial
// guesses per process (Yule-Walker style for the autoregressive kinds,
// wavelet-variance inversion at the extreme scales for the rest), polished
// by one Nelder-Mead run on that replicate's own objective.
func momentSingleFit(spec *model.Spec, rep *wv.Replicate, cfg *Config) ([]float64, error) {
	single, err := wv.NewReplicateSet(rep)
	if err != nil {
		return nil, err
	}
	if err := checkWeights(single); err != nil {
		return nil, err
	}

	start := initialGuess(spec, rep)
	u0, err := model.ToUnconstrained(spec, start)
	if err != nil {
		return nil, err
	}

	u, _, err := localMinimize(spec, single, u0, cfg)
	if err != nil {
		return nil, err
	}
	return model.ToNatural(spec, u)
}

// initialGuess derives rough natural-unit parameters for every process in
// the model from the replicate's sample moments and wavelet variance. The
// guesses only need to land in the basin of a reasonable local minimum.
func initialGuess(spec *model.Spec, rep *wv.Replicate) []float64 {
	x := rep.Samples()
	variance := sampleVariance(x)
	r1 := lag1Autocorr(x, variance)

	tau := rep.Tau()
	wvEmp := rep.WV()
	first, last := 0, len(tau)-1

	// Spread the observed variance across the variance-carrying processes.
	share := variance / float64(spec.Len())
	if share <= 0 {
		share = 1e-10
	}

	comps, _ := spec.SplitByProcess(nil)
	guess := make([]float64, 0, spec.Len())
	for _, c := range comps {
		switch c.Info.Kind {
		case process.AR1:
			phi := clamp(r1, -0.99, 0.99)
			if math.Abs(phi) < 1e-3 {
				phi = 0.5
			}
			guess = append(guess, phi, share*(1-phi*phi))
		case process.GM:
			beta := -math.Log(clamp(math.Abs(r1), 0.01, 0.99))
			guess = append(guess, beta, share)
		case process.WN:
			guess = append(guess, positive(wvEmp[first]*tau[first]))
		case process.QN:
			guess = append(guess, positive(wvEmp[first]*tau[first]*tau[first]/6))
		case process.RW:
			t := tau[last]
			guess = append(guess, positive(12*wvEmp[last]*t/(t*t+2)))
		case process.DR:
			guess = append(guess, 4*math.Sqrt(positive(wvEmp[last]))/tau[last])
		}
	}
	return guess
}

func sampleVariance(x []float64) float64 {
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	ss := 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return ss / float64(len(x)-1)
}

// lag1Autocorr is the lag-1 sample autocorrelation, which solves the
// Yule-Walker equation for an AR(1) directly.
func lag1Autocorr(x []float64, variance float64) float64 {
	if variance == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	num := 0.0
	for i := 1; i < len(x); i++ {
		num += (x[i] - mean) * (x[i-1] - mean)
	}
	return num / (float64(len(x)-1) * variance)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// positive floors a variance guess away from the log transform's boundary.
func positive(x float64) float64 {
	if x <= 1e-12 {
		return 1e-12
	}
	return x
}
