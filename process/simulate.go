package process

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Parametric simulators per process type. Each draws a length-n signal in
// natural units from the supplied random source, so callers control seeding
// draw by draw.

func simulateWN(params []float64, n int, src rand.Source) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(params[0]), Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = norm.Rand()
	}
	return out
}

func simulateRW(params []float64, n int, src rand.Source) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(params[0]), Src: src}
	out := make([]float64, n)
	sum := 0.0
	for i := range out {
		sum += norm.Rand()
		out[i] = sum
	}
	return out
}

func simulateDR(params []float64, n int, _ rand.Source) []float64 {
	omega := params[0]
	out := make([]float64, n)
	for i := range out {
		out[i] = omega * float64(i+1)
	}
	return out
}

// simulateQN draws quantization noise as the first difference of an
// uncorrelated level sequence with variance Q2, which reproduces the
// 6*Q2/tau^2 wavelet variance signature.
func simulateQN(params []float64, n int, src rand.Source) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(params[0]), Src: src}
	out := make([]float64, n)
	prev := norm.Rand()
	for i := range out {
		cur := norm.Rand()
		out[i] = cur - prev
		prev = cur
	}
	return out
}

func simulateAR1(params []float64, n int, src rand.Source) []float64 {
	phi, sigma2 := params[0], params[1]
	return ar1Recursion(phi, sigma2, n, src)
}

func simulateGM(params []float64, n int, src rand.Source) []float64 {
	phi, sigma2 := gmToAR1(params[0], params[1])
	return ar1Recursion(phi, sigma2, n, src)
}

// ar1Recursion runs the stationary AR(1) recursion x_t = phi*x_{t-1} + e_t
// with innovation variance sigma2, initialized from the stationary
// distribution so the whole signal is a stationary draw.
func ar1Recursion(phi, sigma2 float64, n int, src rand.Source) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(sigma2), Src: src}
	out := make([]float64, n)
	x := norm.Rand()
	if s := 1 - phi*phi; s > 0 {
		x /= math.Sqrt(s)
	}
	for i := range out {
		x = phi*x + norm.Rand()
		out[i] = x
	}
	return out
}
