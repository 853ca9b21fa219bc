package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/sartorproj/gogmwm/process"
)

func ar1wn(t *testing.T) *Spec {
	t.Helper()
	s, err := NewSpec(
		Process{Kind: process.AR1, Params: []float64{0.9, 0.01}},
		Process{Kind: process.WN, Params: []float64{1.0}},
	)
	require.NoError(t, err)
	return s
}

func TestNewSpec(t *testing.T) {
	s := ar1wn(t)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []process.Kind{process.AR1, process.WN}, s.Kinds())
	assert.Equal(t, []float64{0.9, 0.01, 1.0}, s.Params())
	assert.Equal(t, []string{"AR1.phi", "AR1.sigma2", "WN.sigma2"}, s.ParamNames())
}

func TestNewSpecErrors(t *testing.T) {
	tests := []struct {
		name  string
		procs []Process
	}{
		{"empty", nil},
		{"unknown kind", []Process{{Kind: "ARMA", Params: []float64{0.5}}}},
		{"too few params", []Process{{Kind: process.AR1, Params: []float64{0.5}}}},
		{"too many params", []Process{{Kind: process.WN, Params: []float64{1, 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpec(tt.procs...)
			assert.ErrorIs(t, err, ErrInvalidModel)
		})
	}
}

func TestSameProcesses(t *testing.T) {
	a := ar1wn(t)
	b, err := NewSpec(
		Process{Kind: process.AR1, Params: []float64{0.1, 2.0}},
		Process{Kind: process.WN, Params: []float64{0.5}},
	)
	require.NoError(t, err)
	c, err := NewSpec(Process{Kind: process.WN, Params: []float64{0.5}})
	require.NoError(t, err)

	assert.True(t, a.SameProcesses(b))
	assert.False(t, a.SameProcesses(c))
	assert.False(t, a.SameProcesses(nil))
}

func TestSplitByProcess(t *testing.T) {
	s := ar1wn(t)

	comps, err := s.SplitByProcess(nil)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	assert.Equal(t, process.AR1, comps[0].Info.Kind)
	assert.Equal(t, []float64{0.9, 0.01}, comps[0].Params)
	assert.Equal(t, process.WN, comps[1].Info.Kind)
	assert.Equal(t, []float64{1.0}, comps[1].Params)

	_, err = s.SplitByProcess([]float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestWVIsSumOfDecomposition(t *testing.T) {
	s := ar1wn(t)
	tau := []float64{2, 4, 8, 16, 32}

	total, err := s.WV(s.Params(), tau)
	require.NoError(t, err)
	decomp, err := s.DecomposeWV(s.Params(), tau)
	require.NoError(t, err)
	require.Len(t, decomp, 2)

	for i := range tau {
		assert.InDelta(t, decomp[0][i]+decomp[1][i], total[i], 1e-12)
		assert.Greater(t, total[i], 0.0)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		procs []Process
	}{
		{"ar1+wn", []Process{
			{Kind: process.AR1, Params: []float64{0.99, 0.01}},
			{Kind: process.WN, Params: []float64{1.0}},
		}},
		{"gm+rw", []Process{
			{Kind: process.GM, Params: []float64{0.05, 2.0}},
			{Kind: process.RW, Params: []float64{1e-6}},
		}},
		{"dr+qn", []Process{
			{Kind: process.DR, Params: []float64{-0.002}},
			{Kind: process.QN, Params: []float64{0.3}},
		}},
		{"negative phi", []Process{
			{Kind: process.AR1, Params: []float64{-0.7, 3.0}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSpec(tt.procs...)
			require.NoError(t, err)

			u, err := ToUnconstrained(s, s.Params())
			require.NoError(t, err)
			back, err := ToNatural(s, u)
			require.NoError(t, err)

			want := s.Params()
			require.Len(t, back, len(want))
			for i := range want {
				assert.InDelta(t, want[i], back[i], 1e-12, "parameter %d", i)
			}
		})
	}
}

func TestToUnconstrainedDomainErrors(t *testing.T) {
	s := ar1wn(t)

	_, err := ToUnconstrained(s, []float64{1.5, 0.01, 1.0})
	assert.ErrorIs(t, err, ErrInvalidModel, "phi outside (-1, 1)")

	_, err = ToUnconstrained(s, []float64{0.9, -0.01, 1.0})
	assert.ErrorIs(t, err, ErrInvalidModel, "negative variance")

	_, err = ToUnconstrained(s, []float64{0.9, 0.01})
	assert.ErrorIs(t, err, ErrInvalidModel, "length mismatch")

	_, err = ToNatural(s, []float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidModel, "length mismatch")
}

func TestSimulate(t *testing.T) {
	s := ar1wn(t)

	a, err := s.Simulate(s.Params(), 256, rand.NewSource(11))
	require.NoError(t, err)
	b, err := s.Simulate(s.Params(), 256, rand.NewSource(11))
	require.NoError(t, err)

	require.Len(t, a, 256)
	assert.Equal(t, a, b, "simulation not reproducible under fixed seed")
}
