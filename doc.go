// Package gogmwm provides Generalized Method of Wavelet Moments estimation
// for additive latent-process time series models.
//
// GoGMWM estimates the parameters of composite stochastic models (sums of
// first-order autoregressive, Gauss-Markov, drift, quantization noise,
// random walk and white noise components) from one or more replicate signals,
// such as repeated calibration runs of an inertial sensor. Estimation matches
// each replicate's empirical wavelet variance to the theoretical wavelet
// variance implied by the candidate parameters, weighted by the precision of
// the empirical estimate at each scale.
//
// # Features
//
//   - Additive model composition from six latent process types (AR1, GM, DR, QN, RW, WN)
//   - Multi-replicate weighted GMWM objective with multi-start optimization
//   - Bootstrap confidence intervals by replicate resampling (exhaustive or sampled)
//   - Parametric-bootstrap near-stationarity test across replicates
//   - Haar MODWT empirical wavelet variance with per-scale confidence bounds
//   - Parametric simulators for every supported process type
//
// # Quick Start
//
// Estimate an AR1 + white noise model from two replicate signals:
//
//	set, _ := wv.NewReplicateSet(wv.NewReplicate(run1), wv.NewReplicate(run2))
//	spec, _ := model.NewSpec(
//	    model.Process{Kind: process.AR1, Params: []float64{0.9, 0.01}},
//	    model.Process{Kind: process.WN, Params: []float64{1}},
//	)
//	result, _ := gmwm.Estimate(set, spec, gmwm.DefaultConfig())
//	fmt.Println(result.Fitted.Params, result.Fitted.Objective)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - process: latent process catalog, theoretical wavelet variance, simulators
//   - model: additive model specification and parameter transforms
//   - wv: replicate signals and empirical wavelet variance
//   - gmwm: estimation engine, confidence intervals, stationarity test
//
// # References
//
//   - Guerrier, S., Skaloud, J., Stebler, Y., & Victoria-Feser, M.-P. (2013).
//     Wavelet-Variance-Based Estimation for Composite Stochastic Processes
//   - Percival, D. B., & Walden, A. T. (2000). Wavelet Methods for Time Series Analysis
package gogmwm
