package gmwm

import (
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/sartorproj/gogmwm/model"
	"github.com/sartorproj/gogmwm/wv"
)

// maxEnumReplicates bounds the exhaustive-enumeration path so the multiset
// count C(2R-1, R) stays within int64.
const maxEnumReplicates = 30

// confidenceIntervals bootstraps the fitted parameters by resampling
// replicates with replacement. When the multiset universe C(2R-1, R) is
// smaller than cfg.BMax every size-R multiset of replicate indices is
// enumerated exactly; otherwise exactly cfg.BMax seeded uniform draws are
// taken. Each resample restarts the local optimizer from the fitted model's
// own unconstrained parameters; per-parameter empirical quantiles of the
// successful draws form the bounds.
func confidenceIntervals(fitted *FittedModel, set *wv.ReplicateSet, cfg *Config) (*Interval, error) {
	u0, err := model.ToUnconstrained(fitted.Spec, fitted.Params)
	if err != nil {
		return nil, err
	}

	resamples, exhaustive := resamplePlan(set.Len(), cfg)
	cfg.logger().Debug("bootstrap resampling",
		zap.Int("draws", len(resamples)), zap.Bool("exhaustive", exhaustive))

	rows := make([][]float64, len(resamples))
	var g errgroup.Group
	g.SetLimit(cfg.workers())
	for i, indices := range resamples {
		g.Go(func() error {
			sub, err := set.Resample(indices)
			if err != nil {
				return err
			}
			u, _, err := localMinimize(fitted.Spec, sub, u0, cfg)
			if err != nil {
				// A failed draw is dropped, never a row of zeros.
				cfg.logger().Debug("bootstrap draw failed",
					zap.Int("draw", i), zap.Error(err))
				return nil
			}
			theta, err := model.ToNatural(fitted.Spec, u)
			if err != nil {
				return err
			}
			rows[i] = theta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	draws := rows[:0:0]
	for _, row := range rows {
		if row != nil {
			draws = append(draws, row)
		}
	}
	failed := len(rows) - len(draws)
	if len(draws) == 0 {
		return nil, fmt.Errorf("%w: every bootstrap draw failed", ErrOptimization)
	}

	k := fitted.Spec.Len()
	low := make([]float64, k)
	high := make([]float64, k)
	column := make([]float64, len(draws))
	for j := 0; j < k; j++ {
		for i, row := range draws {
			column[i] = row[j]
		}
		sort.Float64s(column)
		low[j] = stat.Quantile(cfg.Alpha/2, stat.Empirical, column, nil)
		high[j] = stat.Quantile(1-cfg.Alpha/2, stat.Empirical, column, nil)
	}

	return &Interval{
		Computed:   true,
		Low:        low,
		High:       high,
		Draws:      draws,
		Failed:     failed,
		Exhaustive: exhaustive,
	}, nil
}

// resamplePlan builds the list of replicate-index multisets to refit: the
// exhaustive universe when it is smaller than BMax, else exactly BMax seeded
// uniform draws.
func resamplePlan(r int, cfg *Config) (resamples [][]int, exhaustive bool) {
	if r <= maxEnumReplicates && combin.Binomial(2*r-1, r) < cfg.BMax {
		return enumerateMultisets(r), true
	}
	return sampleMultisets(r, cfg), false
}

// enumerateMultisets lists every size-r multiset of {0..r-1} by the
// stars-and-bars bijection: a sorted r-combination c of {0..2r-2} maps to
// the multiset with elements c[i]-i.
func enumerateMultisets(r int) [][]int {
	var out [][]int
	gen := combin.NewCombinationGenerator(2*r-1, r)
	for gen.Next() {
		c := gen.Combination(nil)
		for i := range c {
			c[i] -= i
		}
		out = append(out, c)
	}
	return out
}

// sampleMultisets draws cfg.BMax independent with-replacement samples of
// size r, draw i seeded from (Seed, i).
func sampleMultisets(r int, cfg *Config) [][]int {
	out := make([][]int, cfg.BMax)
	for i := range out {
		rng := rand.New(rand.NewSource(subSeed(cfg.Seed, streamBootstrap, i)))
		indices := make([]int, r)
		for j := range indices {
			indices[j] = rng.Intn(r)
		}
		out[i] = indices
	}
	return out
}

// workers returns the bounded worker count for parallel draw loops.
func (c *Config) workers() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}
