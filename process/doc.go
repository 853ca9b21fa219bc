// Package process defines the catalog of latent process types supported by
// the GMWM estimation engine.
//
// Each process type is identified by a Kind and described by a single table
// entry carrying its parameter count, natural-unit parameter names, the
// domain transform of each parameter, the closed-form Haar wavelet variance
// implied by its parameters, and a parametric simulator. Adding a new process
// type is a single table entry.
//
// # Supported Processes
//
//   - AR1: first-order autoregression, parameters (phi, sigma2)
//   - GM:  first-order Gauss-Markov, parameters (beta, sigma2_gm)
//   - DR:  deterministic linear drift, parameter (omega)
//   - QN:  quantization noise, parameter (Q2)
//   - RW:  random walk, parameter (gamma2)
//   - WN:  white noise, parameter (sigma2)
//
// # Theoretical Wavelet Variance
//
// Evaluate the WV contribution of one process on a scale grid:
//
//	info, _ := process.Lookup(process.WN)
//	wv := info.WV([]float64{sigma2}, tau)
//
// All closed forms assume Haar MODWT wavelet variance at dyadic scales.
package process
