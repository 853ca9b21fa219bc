// Package model provides additive latent-process model specifications and
// the parameter transforms used during unconstrained optimization.
//
// A Spec is an ordered sequence of process types whose theoretical wavelet
// variances add. The ordering is fixed at construction and determines where
// each process's parameters live inside the flat natural-unit vector.
//
// # Parameter Transforms
//
// Optimizers operate on an unconstrained copy of the parameter vector:
// variance-type parameters are log-transformed from (0, inf) onto the real
// line, autoregressive coefficients atanh-transformed from (-1, 1), and
// sign-free parameters pass through unchanged. ToUnconstrained and ToNatural
// are mutual inverses:
//
//	u, _ := model.ToUnconstrained(spec, theta)
//	theta2, _ := model.ToNatural(spec, u)  // theta2 == theta
//
// # Decomposition
//
// SplitByProcess breaks the flat vector back into per-process sub-vectors,
// which is how the additive theoretical WV and per-process simulation are
// assembled.
package model
