// Package optimize searches the (s, S) policy space for low-cost
// configurations with a greedy local search: propose a nearby neighbor,
// keep it only if it costs less. The cost function is injected, so the
// search never depends on how candidates are evaluated.
package optimize

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/Arthurbdt/inventory-simulation/sim"
)

// Evaluator scores one candidate policy; lower is better. The experiment
// driver's mean monthly cost is the usual implementation.
type Evaluator func(p sim.Policy) (float64, error)

// Bounds constrain the search space. The walk moves in (reorder point,
// order size) coordinates, with order-up-to = reorder point + order size
// so every candidate satisfies S > s.
type Bounds struct {
	ReorderPointMin int
	ReorderPointMax int
	OrderSizeMin    int
	OrderSizeMax    int
}

// DefaultBounds returns the classic search box: reorder point in
// [0, 100], order size in [5, 100].
func DefaultBounds() Bounds {
	return Bounds{
		ReorderPointMin: 0,
		ReorderPointMax: 100,
		OrderSizeMin:    5,
		OrderSizeMax:    100,
	}
}

// Options tune the search.
type Options struct {
	Iterations int     // candidate evaluations, including the start (default 50)
	StepSpan   float64 // per-coordinate step drawn uniform on ±StepSpan (default 20)
	Seed       int64
	Bounds     Bounds
}

func (o *Options) applyDefaults() {
	if o.Iterations == 0 {
		o.Iterations = 50
	}
	if o.StepSpan == 0 {
		o.StepSpan = 20
	}
	if o.Bounds == (Bounds{}) {
		o.Bounds = DefaultBounds()
	}
}

// Step is one accepted point on the search path.
type Step struct {
	Policy sim.Policy `json:"policy"`
	Cost   float64    `json:"cost"`
}

// Result reports the search outcome. Path holds the start plus every
// accepted improvement, in order; Best duplicates the last path entry.
type Result struct {
	Best        sim.Policy `json:"best"`
	BestCost    float64    `json:"best_cost"`
	Evaluations int        `json:"evaluations"`
	Path        []Step     `json:"path"`
}

// Search walks the policy space from start, evaluating one neighbor per
// iteration and moving only when the neighbor improves on the best cost
// seen. An evaluator error aborts the search.
func Search(start sim.Policy, eval Evaluator, opts Options) (*Result, error) {
	opts.applyDefaults()
	if err := validateStart(start, opts.Bounds); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	cur := point{
		reorder: start.ReorderPoint,
		size:    start.OrderUpTo - start.ReorderPoint,
	}
	best, err := eval(cur.policy())
	if err != nil {
		return nil, fmt.Errorf("evaluating start policy: %w", err)
	}
	res := &Result{
		Evaluations: 1,
		Path:        []Step{{Policy: cur.policy(), Cost: best}},
	}

	for i := 1; i < opts.Iterations; i++ {
		cand := cur.neighbor(rng, opts.StepSpan, opts.Bounds)
		cost, err := eval(cand.policy())
		if err != nil {
			return nil, fmt.Errorf("evaluating candidate %d: %w", i, err)
		}
		res.Evaluations++
		if cost < best {
			logrus.Debugf("search step %d: accepted (s=%d, S=%d) at cost %.2f (was %.2f)",
				i, cand.policy().ReorderPoint, cand.policy().OrderUpTo, cost, best)
			best = cost
			cur = cand
			res.Path = append(res.Path, Step{Policy: cur.policy(), Cost: cost})
		}
	}

	last := res.Path[len(res.Path)-1]
	res.Best = last.Policy
	res.BestCost = last.Cost
	return res, nil
}

// point is a search position in (reorder point, order size) coordinates.
type point struct {
	reorder int
	size    int
}

func (p point) policy() sim.Policy {
	return sim.Policy{ReorderPoint: p.reorder, OrderUpTo: p.reorder + p.size}
}

// neighbor perturbs each coordinate by a uniform step and clamps to the
// bounds.
func (p point) neighbor(rng *rand.Rand, span float64, b Bounds) point {
	step := func(cur, lo, hi int) int {
		v := float64(cur) + (rng.Float64()*2-1)*span
		v = math.Min(math.Max(v, float64(lo)), float64(hi))
		return int(math.Round(v))
	}
	return point{
		reorder: step(p.reorder, b.ReorderPointMin, b.ReorderPointMax),
		size:    step(p.size, b.OrderSizeMin, b.OrderSizeMax),
	}
}

func validateStart(start sim.Policy, b Bounds) error {
	if start.OrderUpTo <= start.ReorderPoint {
		return fmt.Errorf("%w: start order-up-to level %d must exceed reorder point %d",
			sim.ErrInvalidConfig, start.OrderUpTo, start.ReorderPoint)
	}
	size := start.OrderUpTo - start.ReorderPoint
	if start.ReorderPoint < b.ReorderPointMin || start.ReorderPoint > b.ReorderPointMax {
		return fmt.Errorf("%w: start reorder point %d outside bounds [%d, %d]",
			sim.ErrInvalidConfig, start.ReorderPoint, b.ReorderPointMin, b.ReorderPointMax)
	}
	if size < b.OrderSizeMin || size > b.OrderSizeMax {
		return fmt.Errorf("%w: start order size %d outside bounds [%d, %d]",
			sim.ErrInvalidConfig, size, b.OrderSizeMin, b.OrderSizeMax)
	}
	if b.ReorderPointMax < b.ReorderPointMin || b.OrderSizeMax < b.OrderSizeMin {
		return fmt.Errorf("%w: search bounds are not ordered", sim.ErrInvalidConfig)
	}
	return nil
}
