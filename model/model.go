package model

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gogmwm/process"
)

// ErrInvalidModel reports an unrecognized process kind or a parameter vector
// whose length does not match the model's declared parameter count.
var ErrInvalidModel = errors.New("model: invalid model specification")

// Process pairs a process kind with its natural-unit parameters, used to
// assemble a Spec.
type Process struct {
	Kind   process.Kind
	Params []float64
}

// Spec is an additive latent-process model: an ordered sequence of process
// types with a flat natural-unit parameter vector. The process order is
// fixed once constructed.
type Spec struct {
	kinds  []process.Kind
	params []float64
	names  []string
}

// NewSpec builds a Spec from the given processes in order. Each process must
// name a supported kind and carry exactly its declared parameter count.
func NewSpec(procs ...Process) (*Spec, error) {
	if len(procs) == 0 {
		return nil, fmt.Errorf("%w: no processes", ErrInvalidModel)
	}

	s := &Spec{}
	for _, p := range procs {
		info, ok := process.Lookup(p.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown process kind %q", ErrInvalidModel, p.Kind)
		}
		if len(p.Params) != info.ParamCount {
			return nil, fmt.Errorf("%w: process %s expects %d parameters, got %d",
				ErrInvalidModel, p.Kind, info.ParamCount, len(p.Params))
		}
		s.kinds = append(s.kinds, p.Kind)
		s.params = append(s.params, p.Params...)
		for _, name := range info.ParamNames {
			s.names = append(s.names, fmt.Sprintf("%s.%s", p.Kind, name))
		}
	}
	return s, nil
}

// Len returns the total parameter count of the model.
func (s *Spec) Len() int {
	return len(s.params)
}

// Kinds returns the ordered process kinds of the model.
func (s *Spec) Kinds() []process.Kind {
	out := make([]process.Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Params returns a copy of the flat natural-unit parameter vector.
func (s *Spec) Params() []float64 {
	out := make([]float64, len(s.params))
	copy(out, s.params)
	return out
}

// ParamNames returns the human-readable names aligned with Params, in the
// form "<kind>.<parameter>".
func (s *Spec) ParamNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// SameProcesses reports whether two specs name the same ordered process
// sequence, regardless of their parameter values.
func (s *Spec) SameProcesses(other *Spec) bool {
	if other == nil || len(s.kinds) != len(other.kinds) {
		return false
	}
	for i, k := range s.kinds {
		if other.kinds[i] != k {
			return false
		}
	}
	return true
}

// WithParams returns a new Spec sharing this model's process structure with
// a different flat parameter vector.
func (s *Spec) WithParams(params []float64) (*Spec, error) {
	if len(params) != len(s.params) {
		return nil, fmt.Errorf("%w: expected %d parameters, got %d",
			ErrInvalidModel, len(s.params), len(params))
	}
	out := &Spec{
		kinds: s.kinds,
		names: s.names,
	}
	out.params = make([]float64, len(params))
	copy(out.params, params)
	return out, nil
}

// Component is one process of a decomposed model together with its slice of
// the flat parameter vector.
type Component struct {
	Info   process.Info
	Params []float64
}

// SplitByProcess decomposes the flat parameter vector params into ordered
// per-process components. params defaults to the Spec's own parameters when
// nil.
func (s *Spec) SplitByProcess(params []float64) ([]Component, error) {
	if params == nil {
		params = s.params
	}
	if len(params) != len(s.params) {
		return nil, fmt.Errorf("%w: expected %d parameters, got %d",
			ErrInvalidModel, len(s.params), len(params))
	}

	comps := make([]Component, 0, len(s.kinds))
	off := 0
	for _, k := range s.kinds {
		info, _ := process.Lookup(k)
		sub := make([]float64, info.ParamCount)
		copy(sub, params[off:off+info.ParamCount])
		comps = append(comps, Component{Info: info, Params: sub})
		off += info.ParamCount
	}
	return comps, nil
}

// WV evaluates the additive theoretical wavelet variance of the model at the
// given natural-unit parameters on the scale grid tau.
func (s *Spec) WV(params, tau []float64) ([]float64, error) {
	decomp, err := s.DecomposeWV(params, tau)
	if err != nil {
		return nil, err
	}
	total := make([]float64, len(tau))
	for _, contrib := range decomp {
		floats.Add(total, contrib)
	}
	return total, nil
}

// DecomposeWV evaluates the per-process theoretical wavelet variance
// contributions on tau, one vector per process in model order.
func (s *Spec) DecomposeWV(params, tau []float64) ([][]float64, error) {
	comps, err := s.SplitByProcess(params)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(comps))
	for i, c := range comps {
		out[i] = c.Info.WV(c.Params, tau)
	}
	return out, nil
}

// Simulate draws a length-n synthetic signal under the given natural-unit
// parameters by summing independent per-process simulations from src.
func (s *Spec) Simulate(params []float64, n int, src rand.Source) ([]float64, error) {
	comps, err := s.SplitByProcess(params)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for _, c := range comps {
		floats.Add(out, c.Info.Simulate(c.Params, n, src))
	}
	return out, nil
}
