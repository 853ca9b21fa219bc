package model

import (
	"fmt"
	"math"

	"github.com/sartorproj/gogmwm/process"
)

// ToUnconstrained maps a natural-unit parameter vector onto the real line,
// parameter by parameter, according to each process's declared transforms.
// Fails with ErrInvalidModel when the vector length mismatches the model or
// a parameter lies outside its natural domain.
func ToUnconstrained(s *Spec, natural []float64) ([]float64, error) {
	transforms := s.transforms()
	if len(natural) != len(transforms) {
		return nil, fmt.Errorf("%w: expected %d parameters, got %d",
			ErrInvalidModel, len(transforms), len(natural))
	}

	out := make([]float64, len(natural))
	for i, x := range natural {
		switch transforms[i] {
		case process.TransformLog:
			if x <= 0 {
				return nil, fmt.Errorf("%w: parameter %q must be positive, got %v",
					ErrInvalidModel, s.names[i], x)
			}
			out[i] = math.Log(x)
		case process.TransformAtanh:
			if x <= -1 || x >= 1 {
				return nil, fmt.Errorf("%w: parameter %q must lie in (-1, 1), got %v",
					ErrInvalidModel, s.names[i], x)
			}
			out[i] = math.Atanh(x)
		default:
			out[i] = x
		}
	}
	return out, nil
}

// ToNatural inverts ToUnconstrained, mapping an unconstrained vector back
// into natural units. Every unconstrained real vector of the right length is
// valid input.
func ToNatural(s *Spec, unconstrained []float64) ([]float64, error) {
	transforms := s.transforms()
	if len(unconstrained) != len(transforms) {
		return nil, fmt.Errorf("%w: expected %d parameters, got %d",
			ErrInvalidModel, len(transforms), len(unconstrained))
	}

	out := make([]float64, len(unconstrained))
	for i, u := range unconstrained {
		switch transforms[i] {
		case process.TransformLog:
			out[i] = math.Exp(u)
		case process.TransformAtanh:
			out[i] = math.Tanh(u)
		default:
			out[i] = u
		}
	}
	return out, nil
}

// transforms flattens the per-process transform declarations into a vector
// aligned with the flat parameter vector.
func (s *Spec) transforms() []process.Transform {
	out := make([]process.Transform, 0, len(s.params))
	for _, k := range s.kinds {
		info, _ := process.Lookup(k)
		out = append(out, info.Transforms...)
	}
	return out
}
