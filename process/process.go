package process

import (
	"golang.org/x/exp/rand"
)

// Kind identifies a latent process type.
type Kind string

// Supported process kinds.
const (
	AR1 Kind = "AR1" // first-order autoregression
	GM  Kind = "GM"  // first-order Gauss-Markov
	DR  Kind = "DR"  // deterministic linear drift
	QN  Kind = "QN"  // quantization noise
	RW  Kind = "RW"  // random walk
	WN  Kind = "WN"  // white noise
)

// Transform identifies the bijection mapping one natural-unit parameter to
// the unconstrained real line.
type Transform int

const (
	// TransformLog maps (0, inf) to the real line via log/exp. Used for
	// variance-type parameters and decay rates constrained positive.
	TransformLog Transform = iota
	// TransformAtanh maps (-1, 1) to the real line via atanh/tanh. Used for
	// autoregressive coefficients.
	TransformAtanh
	// TransformIdentity leaves an already-unconstrained parameter unchanged.
	TransformIdentity
)

// Info describes one process type: its parameterization, the theoretical
// Haar wavelet variance it implies, and a parametric simulator.
type Info struct {
	Kind       Kind
	ParamCount int
	ParamNames []string
	Transforms []Transform

	// WV evaluates the theoretical wavelet variance contribution of this
	// process at the given natural-unit parameters on the scale grid tau.
	// Pure; the result is aligned with tau.
	WV func(params, tau []float64) []float64

	// Simulate draws a synthetic signal of length n under the given
	// natural-unit parameters from the supplied random source.
	Simulate func(params []float64, n int, src rand.Source) []float64
}

// catalog maps every supported Kind to its description. Natural-unit
// parameter order within each entry is fixed and matches ParamNames.
var catalog = map[Kind]Info{
	AR1: {
		Kind:       AR1,
		ParamCount: 2,
		ParamNames: []string{"phi", "sigma2"},
		Transforms: []Transform{TransformAtanh, TransformLog},
		WV:         ar1WV,
		Simulate:   simulateAR1,
	},
	GM: {
		Kind:       GM,
		ParamCount: 2,
		ParamNames: []string{"beta", "sigma2_gm"},
		Transforms: []Transform{TransformLog, TransformLog},
		WV:         gmWV,
		Simulate:   simulateGM,
	},
	DR: {
		Kind:       DR,
		ParamCount: 1,
		ParamNames: []string{"omega"},
		Transforms: []Transform{TransformIdentity},
		WV:         drWV,
		Simulate:   simulateDR,
	},
	QN: {
		Kind:       QN,
		ParamCount: 1,
		ParamNames: []string{"Q2"},
		Transforms: []Transform{TransformLog},
		WV:         qnWV,
		Simulate:   simulateQN,
	},
	RW: {
		Kind:       RW,
		ParamCount: 1,
		ParamNames: []string{"gamma2"},
		Transforms: []Transform{TransformLog},
		WV:         rwWV,
		Simulate:   simulateRW,
	},
	WN: {
		Kind:       WN,
		ParamCount: 1,
		ParamNames: []string{"sigma2"},
		Transforms: []Transform{TransformLog},
		WV:         wnWV,
		Simulate:   simulateWN,
	},
}

// Lookup returns the catalog entry for k. The second return value is false
// when k is not a supported process kind.
func Lookup(k Kind) (Info, bool) {
	info, ok := catalog[k]
	return info, ok
}

// Valid reports whether k names a supported process kind.
func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// Kinds returns the supported process kinds in a stable order.
func Kinds() []Kind {
	return []Kind{AR1, GM, DR, QN, RW, WN}
}
