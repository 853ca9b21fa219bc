package wv

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrShortSignal reports a signal too short to support at least two dyadic
// wavelet scales.
var ErrShortSignal = errors.New("wv: signal too short for wavelet variance")

// minSamples is the smallest signal length yielding two dyadic scales.
const minSamples = 8

// ciConfidence is the two-sided confidence level of the per-scale half-width.
const ciConfidence = 0.95

// Replicate is one observed time series together with its empirical wavelet
// variance. Immutable once constructed.
type Replicate struct {
	samples []float64
	freq    float64
	tau     []float64
	wv      []float64
	ciHalf  []float64
}

// NewReplicate computes the Haar MODWT wavelet variance of samples at unit
// sampling frequency and wraps both in an immutable Replicate.
func NewReplicate(samples []float64) (*Replicate, error) {
	return NewReplicateFreq(samples, 1)
}

// NewReplicateFreq is NewReplicate with an explicit sampling frequency in
// Hz. The frequency is carried as metadata; scales remain in sample counts.
func NewReplicateFreq(samples []float64, freq float64) (*Replicate, error) {
	if len(samples) < minSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d",
			ErrShortSignal, minSamples, len(samples))
	}
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return nil, fmt.Errorf("wv: sampling frequency must be positive and finite, got %v", freq)
	}

	r := &Replicate{
		samples: append([]float64(nil), samples...),
		freq:    freq,
	}
	r.tau, r.wv, r.ciHalf = haarVariance(r.samples)
	return r, nil
}

// N returns the sample count of the replicate.
func (r *Replicate) N() int {
	return len(r.samples)
}

// Freq returns the sampling frequency in Hz.
func (r *Replicate) Freq() float64 {
	return r.freq
}

// Samples returns a copy of the raw sample sequence.
func (r *Replicate) Samples() []float64 {
	return append([]float64(nil), r.samples...)
}

// Tau returns the ascending dyadic scale grid, in sample counts. The
// returned slice is shared; treat it as read-only.
func (r *Replicate) Tau() []float64 {
	return r.tau
}

// WV returns the empirical wavelet variance aligned with Tau. The returned
// slice is shared; treat it as read-only.
func (r *Replicate) WV() []float64 {
	return r.wv
}

// CIHalfWidth returns the per-scale confidence-interval half-width aligned
// with Tau. The returned slice is shared; treat it as read-only.
func (r *Replicate) CIHalfWidth() []float64 {
	return r.ciHalf
}

// haarVariance computes the unbiased Haar MODWT wavelet variance of x at
// scales tau_j = 2^j for j = 1..floor(log2(N))-1, together with a Gaussian
// large-sample confidence half-width per scale.
func haarVariance(x []float64) (tau, wv, ciHalf []float64) {
	n := len(x)
	levels := int(math.Floor(math.Log2(float64(n)))) - 1

	z := distuv.UnitNormal.Quantile(0.5 + ciConfidence/2)

	// Prefix sums make each wavelet coefficient an O(1) difference of
	// half-window sums.
	prefix := make([]float64, n+1)
	for i, v := range x {
		prefix[i+1] = prefix[i] + v
	}

	tau = make([]float64, levels)
	wv = make([]float64, levels)
	ciHalf = make([]float64, levels)

	for j := 1; j <= levels; j++ {
		scale := 1 << j
		half := scale / 2
		m := n - scale + 1

		ss := 0.0
		for t := scale - 1; t < n; t++ {
			hi := prefix[t+1] - prefix[t+1-half]
			lo := prefix[t+1-half] - prefix[t+1-scale]
			w := (hi - lo) / float64(scale)
			ss += w * w
		}
		nu2 := ss / float64(m)

		tau[j-1] = float64(scale)
		wv[j-1] = nu2
		ciHalf[j-1] = z * nu2 * math.Sqrt(2/float64(m))
	}
	return tau, wv, ciHalf
}
