// Package experiment runs batches of independent replications of one
// (s, S) policy and reduces them to a confidence interval. It is the
// entry point external callers use: hand it a model config, get back
// per-replication monthly costs and a Student's t interval for the mean.
package experiment

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Arthurbdt/inventory-simulation/sim"
	"github.com/Arthurbdt/inventory-simulation/sim/variate"
)

// DefaultConfidence is the interval level used when none is configured.
const DefaultConfidence = 0.95

// RunConfig describes one experiment: N replications of a single policy.
type RunConfig struct {
	Model        sim.Config `yaml:"model" json:"model"`
	Replications int        `yaml:"replications" json:"replications"`
	Confidence   float64    `yaml:"confidence" json:"confidence"`
	Seed         int64      `yaml:"seed" json:"seed"`
	Workers      int        `yaml:"workers" json:"workers"`

	// SourceFactory overrides variate source construction, mainly for
	// fault injection in tests. Nil uses the model's distributions.
	SourceFactory func(model sim.Config, seed int64) (variate.Source, error) `yaml:"-" json:"-"`
}

// Failure records a replication that produced no result.
type Failure struct {
	Replication int   `json:"replication"`
	Err         error `json:"-"`
}

func (f Failure) String() string {
	return fmt.Sprintf("replication %d: %v", f.Replication, f.Err)
}

// Summary is the aggregated outcome of an experiment. Results holds the
// surviving replications in replication order; Failures the rest.
type Summary struct {
	MeanMonthlyCost float64 `json:"mean_monthly_cost"`
	HalfWidth       float64 `json:"half_width"`
	Confidence      float64 `json:"confidence"`

	MeanOrderCost    float64 `json:"mean_order_cost"`
	MeanHoldingCost  float64 `json:"mean_holding_cost"`
	MeanShortageCost float64 `json:"mean_shortage_cost"`

	Results  []sim.ReplicationResult `json:"results"`
	Failures []Failure               `json:"-"`
}

func (c *RunConfig) applyDefaults() {
	c.Model.ApplyDefaults()
	if c.Confidence == 0 {
		c.Confidence = DefaultConfidence
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *RunConfig) validate() error {
	if err := c.Model.Validate(); err != nil {
		return err
	}
	if c.Replications < 2 {
		return fmt.Errorf("%w: need at least 2 replications for an interval estimate, got %d",
			sim.ErrInvalidConfig, c.Replications)
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("%w: confidence must be in (0, 1), got %g", sim.ErrInvalidConfig, c.Confidence)
	}
	return nil
}

// Run executes cfg.Replications independent replications and aggregates
// them. Replication i draws from seed cfg.Seed + i; results are collected
// by replication index, so worker count and completion order never change
// the outcome. A failed replication is recorded and skipped unless it is
// a calendar underflow, which aborts the whole batch.
func Run(cfg RunConfig) (*Summary, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := cfg.Replications
	results := make([]*sim.ReplicationResult, n)
	errs := make([]error, n)

	workers := cfg.Workers
	if workers > n {
		workers = n
	}
	logrus.Debugf("running %d replications of policy (s=%d, S=%d) on %d workers",
		n, cfg.Model.Policy.ReorderPoint, cfg.Model.Policy.OrderUpTo, workers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := runReplication(cfg, i)
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = &res
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := &Summary{Confidence: cfg.Confidence}
	for i := 0; i < n; i++ {
		switch {
		case errs[i] != nil:
			if errors.Is(errs[i], sim.ErrCalendarUnderflow) {
				return nil, fmt.Errorf("replication %d: %w", i, errs[i])
			}
			logrus.Warnf("replication %d failed: %v", i, errs[i])
			summary.Failures = append(summary.Failures, Failure{Replication: i, Err: errs[i]})
		case results[i] != nil:
			summary.Results = append(summary.Results, *results[i])
		}
	}

	if len(summary.Results) < 2 {
		return nil, fmt.Errorf("%w: only %d of %d replications produced results; need at least 2",
			sim.ErrInvalidConfig, len(summary.Results), n)
	}

	aggregate(summary)
	logrus.Infof("experiment done: %d replications, mean monthly cost %.2f ± %.2f at %g%% confidence",
		len(summary.Results), summary.MeanMonthlyCost, summary.HalfWidth, summary.Confidence*100)
	return summary, nil
}

// runReplication builds and runs replication i with its derived seed.
func runReplication(cfg RunConfig, i int) (sim.ReplicationResult, error) {
	seed := cfg.Seed + int64(i)

	var (
		s   *sim.Simulator
		err error
	)
	if cfg.SourceFactory != nil {
		var src variate.Source
		src, err = cfg.SourceFactory(cfg.Model, seed)
		if err == nil {
			s = sim.NewSimulatorWithSource(cfg.Model, src)
		}
	} else {
		s, err = sim.NewSimulator(cfg.Model, seed)
	}
	if err != nil {
		return sim.ReplicationResult{}, err
	}

	res, err := s.Run()
	if err != nil {
		return sim.ReplicationResult{}, err
	}
	res.Replication = i
	res.Seed = seed
	logrus.Debugf("replication %d (seed %d): avg monthly cost %.2f", i, seed, res.AvgMonthlyCost)
	return res, nil
}

// EvaluatePolicy runs the experiment for a single policy and returns the
// mean monthly cost. The optimizer injects this as its cost function.
func EvaluatePolicy(cfg RunConfig, p sim.Policy) (float64, error) {
	cfg.Model.Policy = p
	s, err := Run(cfg)
	if err != nil {
		return 0, err
	}
	return s.MeanMonthlyCost, nil
}
