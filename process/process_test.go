package process

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCatalogConsistency(t *testing.T) {
	for _, k := range Kinds() {
		info, ok := Lookup(k)
		require.True(t, ok, "kind %s missing from catalog", k)
		assert.Equal(t, k, info.Kind)
		assert.Equal(t, info.ParamCount, len(info.ParamNames), "kind %s", k)
		assert.Equal(t, info.ParamCount, len(info.Transforms), "kind %s", k)
		assert.NotNil(t, info.WV, "kind %s", k)
		assert.NotNil(t, info.Simulate, "kind %s", k)
	}
}

func TestLookupUnknownKind(t *testing.T) {
	_, ok := Lookup(Kind("ARMA"))
	assert.False(t, ok)
	assert.False(t, Kind("ARMA").Valid())
}

func TestWhiteNoiseWV(t *testing.T) {
	info, _ := Lookup(WN)
	tau := []float64{2, 4, 8, 16}
	got := info.WV([]float64{2.0}, tau)

	require.Len(t, got, len(tau))
	for i, tv := range tau {
		assert.InDelta(t, 2.0/tv, got[i], 1e-12)
	}
}

func TestAR1WVReducesToWhiteNoise(t *testing.T) {
	ar1, _ := Lookup(AR1)
	wn, _ := Lookup(WN)
	tau := []float64{2, 4, 8, 16, 32}

	got := ar1.WV([]float64{1e-12, 0.5}, tau)
	want := wn.WV([]float64{0.5}, tau)
	for i := range tau {
		assert.InDelta(t, want[i], got[i], 1e-8, "tau=%v", tau[i])
	}
}

func TestGaussMarkovMatchesEquivalentAR1(t *testing.T) {
	gm, _ := Lookup(GM)
	ar1, _ := Lookup(AR1)
	tau := []float64{2, 4, 8, 16}

	beta, sigma2gm := 0.3, 1.5
	phi := math.Exp(-beta)
	sigma2 := sigma2gm * (1 - phi*phi)

	got := gm.WV([]float64{beta, sigma2gm}, tau)
	want := ar1.WV([]float64{phi, sigma2}, tau)
	for i := range tau {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestTheoreticalWVPositive(t *testing.T) {
	tau := []float64{2, 4, 8, 16, 32, 64}
	cases := []struct {
		kind   Kind
		params []float64
	}{
		{AR1, []float64{0.9, 0.01}},
		{GM, []float64{0.1, 1.0}},
		{DR, []float64{0.005}},
		{QN, []float64{0.25}},
		{RW, []float64{1e-4}},
		{WN, []float64{1.0}},
	}
	for _, tc := range cases {
		info, _ := Lookup(tc.kind)
		got := info.WV(tc.params, tau)
		for i, v := range got {
			assert.Greater(t, v, 0.0, "kind=%s tau=%v", tc.kind, tau[i])
		}
	}
}

func TestSimulateLengthAndDeterminism(t *testing.T) {
	cases := []struct {
		kind   Kind
		params []float64
	}{
		{AR1, []float64{0.8, 0.5}},
		{GM, []float64{0.2, 1.0}},
		{DR, []float64{0.01}},
		{QN, []float64{0.1}},
		{RW, []float64{0.05}},
		{WN, []float64{1.0}},
	}
	for _, tc := range cases {
		info, _ := Lookup(tc.kind)

		a := info.Simulate(tc.params, 128, rand.NewSource(42))
		b := info.Simulate(tc.params, 128, rand.NewSource(42))
		require.Len(t, a, 128, "kind=%s", tc.kind)
		assert.Equal(t, a, b, "kind=%s not reproducible under fixed seed", tc.kind)
	}
}

func TestSimulateWhiteNoiseVariance(t *testing.T) {
	info, _ := Lookup(WN)
	x := info.Simulate([]float64{4.0}, 20000, rand.NewSource(7))

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	ss := 0.0
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	variance := ss / float64(len(x)-1)

	assert.InDelta(t, 4.0, variance, 0.2)
}
