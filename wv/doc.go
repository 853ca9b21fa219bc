// Package wv provides replicate signal containers and empirical wavelet
// variance estimation.
//
// A Replicate wraps one observed time series with its Haar MODWT wavelet
// variance computed at dyadic scales tau_j = 2^j, together with a per-scale
// confidence-interval half-width. A ReplicateSet collects replicates assumed
// generated by the same latent model; the longest scale grid among its
// members is the reference grid on which fitted models are reported.
//
//	rep, _ := wv.NewReplicate(samples)
//	set, _ := wv.NewReplicateSet(rep)
//	fmt.Println(set.ReferenceTau())
package wv
