package wv

import (
	"errors"
	"fmt"
)

// ErrNoReplicates reports an attempt to build an empty replicate set.
var ErrNoReplicates = errors.New("wv: replicate set must be non-empty")

// ErrFreqMismatch reports replicates with differing sampling frequencies in
// one set.
var ErrFreqMismatch = errors.New("wv: replicates must share one sampling frequency")

// ReplicateSet is an ordered collection of replicates assumed generated by
// the same latent model. Replicates may differ in length; the longest scale
// grid among them is the reference grid for reporting fitted models.
type ReplicateSet struct {
	replicates []*Replicate
}

// NewReplicateSet builds a set from the given replicates. The set must be
// non-empty and all members must share one sampling frequency.
func NewReplicateSet(reps ...*Replicate) (*ReplicateSet, error) {
	if len(reps) == 0 {
		return nil, ErrNoReplicates
	}
	freq := reps[0].Freq()
	for i, r := range reps {
		if r.Freq() != freq {
			return nil, fmt.Errorf("%w: replicate %d has %v Hz, set has %v Hz",
				ErrFreqMismatch, i, r.Freq(), freq)
		}
	}
	return &ReplicateSet{replicates: append([]*Replicate(nil), reps...)}, nil
}

// Len returns the number of replicates in the set.
func (s *ReplicateSet) Len() int {
	return len(s.replicates)
}

// At returns the i-th replicate.
func (s *ReplicateSet) At(i int) *Replicate {
	return s.replicates[i]
}

// ReferenceTau returns the longest scale grid among the replicates, shared
// read-only.
func (s *ReplicateSet) ReferenceTau() []float64 {
	ref := s.replicates[0].Tau()
	for _, r := range s.replicates[1:] {
		if len(r.Tau()) > len(ref) {
			ref = r.Tau()
		}
	}
	return ref
}

// Resample assembles a new set from the replicates at the given indices,
// duplicates allowed. Used by the bootstrap engines.
func (s *ReplicateSet) Resample(indices []int) (*ReplicateSet, error) {
	if len(indices) == 0 {
		return nil, ErrNoReplicates
	}
	reps := make([]*Replicate, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(s.replicates) {
			return nil, fmt.Errorf("wv: resample index %d out of range [0, %d)", idx, len(s.replicates))
		}
		reps[i] = s.replicates[idx]
	}
	return &ReplicateSet{replicates: reps}, nil
}
