package gmwm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestEnumerateMultisets(t *testing.T) {
	// R=2: {0,0}, {0,1}, {1,1}.
	got := enumerateMultisets(2)
	require.Len(t, got, combin.Binomial(3, 2))
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 1}}, got)

	// Every enumerated multiset of R=3 is sorted with entries in [0, 3).
	for _, m := range enumerateMultisets(3) {
		require.Len(t, m, 3)
		for i, v := range m {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 3)
			if i > 0 {
				assert.LessOrEqual(t, m[i-1], v)
			}
		}
	}
	assert.Len(t, enumerateMultisets(3), combin.Binomial(5, 3))
}

func TestResamplePlanSwitch(t *testing.T) {
	cfg := DefaultConfig()

	// C(3, 2) = 3 < 100: exhaustive with exactly 3 draws.
	plan, exhaustive := resamplePlan(2, cfg)
	assert.True(t, exhaustive)
	assert.Len(t, plan, 3)

	// Forcing BMax below the universe switches to exactly BMax samples.
	cfg.BMax = 2
	plan, exhaustive = resamplePlan(2, cfg)
	assert.False(t, exhaustive)
	assert.Len(t, plan, 2)
	for _, indices := range plan {
		require.Len(t, indices, 2)
		for _, idx := range indices {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 2)
		}
	}
}

func TestSampleMultisetsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BMax = 20
	cfg.Seed = 99

	a := sampleMultisets(4, cfg)
	b := sampleMultisets(4, cfg)
	assert.Equal(t, a, b)

	cfg.Seed = 100
	c := sampleMultisets(4, cfg)
	assert.NotEqual(t, a, c, "different top-level seeds should change the draws")
}

func TestConfidenceIntervalsExhaustive(t *testing.T) {
	truth := wnSpec(t, 2.0)
	set := simSet(t, truth, []int{1024, 2048}, 20)

	cfg := DefaultConfig()
	cfg.Bootstrap = true
	res, err := Estimate(set, wnSpec(t, 1.0), cfg)
	require.NoError(t, err)

	ci := res.CI
	require.True(t, ci.Computed)
	assert.True(t, ci.Exhaustive)
	assert.Equal(t, combin.Binomial(3, 2), len(ci.Draws)+ci.Failed,
		"exhaustive draw count must equal C(2R-1, R)")

	require.Len(t, ci.Low, 1)
	require.Len(t, ci.High, 1)
	point := res.Params()[0]
	// The refit of the identity resample keeps the point estimate inside
	// the extreme quantiles, up to optimizer tolerance.
	assert.LessOrEqual(t, ci.Low[0], point+1e-6)
	assert.GreaterOrEqual(t, ci.High[0], point-1e-6)
}

func TestConfidenceIntervalsSampled(t *testing.T) {
	truth := wnSpec(t, 1.0)
	set := simSet(t, truth, []int{512, 512, 1024}, 21)

	cfg := DefaultConfig()
	cfg.Bootstrap = true
	cfg.BMax = 8 // below C(5, 3) = 10, forcing the sampled path
	res, err := Estimate(set, wnSpec(t, 1.0), cfg)
	require.NoError(t, err)

	ci := res.CI
	require.True(t, ci.Computed)
	assert.False(t, ci.Exhaustive)
	assert.Equal(t, cfg.BMax, len(ci.Draws)+ci.Failed,
		"sampled draw count must equal exactly BMax")

	// Reproducible under the same top-level seed.
	again, err := Estimate(set, wnSpec(t, 1.0), cfg)
	require.NoError(t, err)
	assert.Equal(t, ci.Draws, again.CI.Draws)
	assert.Equal(t, ci.Low, again.CI.Low)
	assert.Equal(t, ci.High, again.CI.High)
}

func TestConfidenceIntervalBoundsOrdering(t *testing.T) {
	truth := wnSpec(t, 1.0)
	set := simSet(t, truth, []int{512, 1024}, 22)

	for _, alpha := range []float64{0.01, 0.05, 0.5, 0.9} {
		cfg := DefaultConfig()
		cfg.Bootstrap = true
		cfg.Alpha = alpha
		res, err := Estimate(set, wnSpec(t, 1.0), cfg)
		require.NoError(t, err, "alpha=%v", alpha)

		for j := range res.CI.Low {
			assert.LessOrEqual(t, res.CI.Low[j], res.CI.High[j], "alpha=%v", alpha)
		}
	}
}
