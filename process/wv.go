package process

import "math"

// Closed-form Haar MODWT wavelet variance per process type. Each function
// takes natural-unit parameters and returns the WV contribution aligned with
// the scale grid tau. Scales are assumed dyadic and >= 2.

// wnWV is the white noise wavelet variance: sigma2 / tau.
func wnWV(params, tau []float64) []float64 {
	sigma2 := params[0]
	out := make([]float64, len(tau))
	for i, t := range tau {
		out[i] = sigma2 / t
	}
	return out
}

// qnWV is the quantization noise wavelet variance: 6*Q2 / tau^2.
func qnWV(params, tau []float64) []float64 {
	q2 := params[0]
	out := make([]float64, len(tau))
	for i, t := range tau {
		out[i] = 6 * q2 / (t * t)
	}
	return out
}

// rwWV is the random walk wavelet variance: gamma2*(tau^2 + 2) / (12*tau).
func rwWV(params, tau []float64) []float64 {
	gamma2 := params[0]
	out := make([]float64, len(tau))
	for i, t := range tau {
		out[i] = gamma2 * (t*t + 2) / (12 * t)
	}
	return out
}

// drWV is the drift wavelet variance: omega^2 * tau^2 / 16.
func drWV(params, tau []float64) []float64 {
	omega := params[0]
	out := make([]float64, len(tau))
	for i, t := range tau {
		out[i] = omega * omega * t * t / 16
	}
	return out
}

// ar1WV is the AR(1) wavelet variance:
//
//	sigma2 * (tau/2 - 3*phi - (tau/2)*phi^2 + 4*phi^(tau/2+1) - phi^(tau+1))
//	  / ((tau^2/2) * (1-phi)^2 * (1-phi^2))
//
// As phi -> 0 this reduces to the white noise form sigma2/tau.
func ar1WV(params, tau []float64) []float64 {
	phi, sigma2 := params[0], params[1]
	out := make([]float64, len(tau))
	for i, t := range tau {
		num := t/2 - 3*phi - t/2*phi*phi + 4*math.Pow(phi, t/2+1) - math.Pow(phi, t+1)
		den := t * t / 2 * (1 - phi) * (1 - phi) * (1 - phi*phi)
		out[i] = sigma2 * num / den
	}
	return out
}

// gmWV is the Gauss-Markov wavelet variance, obtained by mapping
// (beta, sigma2_gm) to the equivalent unit-interval AR(1) parameters
// phi = exp(-beta), sigma2 = sigma2_gm*(1 - phi^2).
func gmWV(params, tau []float64) []float64 {
	phi, sigma2 := gmToAR1(params[0], params[1])
	return ar1WV([]float64{phi, sigma2}, tau)
}

// gmToAR1 converts Gauss-Markov parameters to their discrete AR(1)
// equivalents at unit sampling interval.
func gmToAR1(beta, sigma2gm float64) (phi, sigma2 float64) {
	phi = math.Exp(-beta)
	sigma2 = sigma2gm * (1 - phi*phi)
	return phi, sigma2
}
