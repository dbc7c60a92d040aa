package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/Arthurbdt/inventory-simulation/sim/variate"
)

// ErrInvalidConfig marks configuration rejected before any simulation
// work. It never surfaces mid-run.
var ErrInvalidConfig = errors.New("invalid configuration")

// Policy is the (s, S) pair under evaluation: a review that finds the
// inventory level below ReorderPoint orders back up to OrderUpTo.
type Policy struct {
	ReorderPoint int `yaml:"reorder_point" json:"reorder_point"` // s
	OrderUpTo    int `yaml:"order_up_to" json:"order_up_to"`     // S
}

// CostRates groups the money parameters of the model, in dollars.
type CostRates struct {
	OrderSetup           float64 `yaml:"order_setup" json:"order_setup"`                       // fixed cost per order placed
	OrderPerUnit         float64 `yaml:"order_per_unit" json:"order_per_unit"`                 // incremental cost per unit ordered
	HoldingPerUnitMonth  float64 `yaml:"holding_per_unit_month" json:"holding_per_unit_month"` // per unit-month on hand
	ShortagePerUnitMonth float64 `yaml:"shortage_per_unit_month" json:"shortage_per_unit_month"`
}

// Config fully describes one replication of the inventory model. Zero
// fields mean "use the classic model value"; ApplyDefaults fills them.
type Config struct {
	Policy           Policy       `yaml:"policy" json:"policy"`
	HorizonMonths    float64      `yaml:"horizon_months" json:"horizon_months"`
	InitialInventory *int         `yaml:"initial_inventory,omitempty" json:"initial_inventory,omitempty"`
	ReviewPeriod     float64      `yaml:"review_period_months" json:"review_period_months"`
	Costs            CostRates    `yaml:"costs" json:"costs"`
	Interarrival     variate.Spec `yaml:"interarrival" json:"interarrival"`
	DemandSize       variate.Spec `yaml:"demand_size" json:"demand_size"`
	LeadTime         variate.Spec `yaml:"lead_time" json:"lead_time"`
}

// Classic model defaults.
const (
	DefaultHorizonMonths    = 120.0
	DefaultReviewPeriod     = 1.0
	DefaultInitialInventory = 60
)

// DefaultCostRates returns the classic cost structure: $32 + $3/unit per
// order, $1 per unit-month held, $3 per unit-month backordered.
func DefaultCostRates() CostRates {
	return CostRates{
		OrderSetup:           32,
		OrderPerUnit:         3,
		HoldingPerUnitMonth:  1,
		ShortagePerUnitMonth: 3,
	}
}

// DefaultInterarrival returns the classic customer process: exponential
// interarrival gaps with a mean of 0.1 months.
func DefaultInterarrival() variate.Spec {
	return variate.Spec{Type: "exponential", Params: map[string]float64{"mean": 0.1}}
}

// DefaultDemandSize returns the classic demand-size PMF on {1, 2, 3, 4}.
func DefaultDemandSize() variate.Spec {
	return variate.Spec{Type: "empirical", Params: map[string]float64{
		"1": 1.0 / 6.0,
		"2": 1.0 / 3.0,
		"3": 1.0 / 3.0,
		"4": 1.0 / 6.0,
	}}
}

// DefaultLeadTime returns the classic replenishment delay, uniform on
// [0.5, 1.0] months.
func DefaultLeadTime() variate.Spec {
	return variate.Spec{Type: "uniform", Params: map[string]float64{"min": 0.5, "max": 1.0}}
}

// DefaultConfig returns the fully populated classic model for one policy.
func DefaultConfig(policy Policy) Config {
	cfg := Config{Policy: policy}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with the classic model values.
func (c *Config) ApplyDefaults() {
	if c.HorizonMonths == 0 {
		c.HorizonMonths = DefaultHorizonMonths
	}
	if c.ReviewPeriod == 0 {
		c.ReviewPeriod = DefaultReviewPeriod
	}
	if c.InitialInventory == nil {
		v := DefaultInitialInventory
		c.InitialInventory = &v
	}
	if c.Costs == (CostRates{}) {
		c.Costs = DefaultCostRates()
	}
	if c.Interarrival.Type == "" {
		c.Interarrival = DefaultInterarrival()
	}
	if c.DemandSize.Type == "" {
		c.DemandSize = DefaultDemandSize()
	}
	if c.LeadTime.Type == "" {
		c.LeadTime = DefaultLeadTime()
	}
}

// Validate rejects configurations that cannot produce a meaningful run.
// Every violation wraps ErrInvalidConfig and surfaces before any event
// fires.
func (c *Config) Validate() error {
	if c.Policy.ReorderPoint < 0 {
		return fmt.Errorf("%w: reorder point must be non-negative, got %d", ErrInvalidConfig, c.Policy.ReorderPoint)
	}
	if c.Policy.OrderUpTo <= c.Policy.ReorderPoint {
		return fmt.Errorf("%w: order-up-to level %d must exceed reorder point %d",
			ErrInvalidConfig, c.Policy.OrderUpTo, c.Policy.ReorderPoint)
	}
	if c.HorizonMonths < 1 {
		return fmt.Errorf("%w: horizon must be at least one month, got %g", ErrInvalidConfig, c.HorizonMonths)
	}
	if c.ReviewPeriod <= 0 {
		return fmt.Errorf("%w: review period must be positive, got %g", ErrInvalidConfig, c.ReviewPeriod)
	}
	if c.InitialInventory != nil && *c.InitialInventory < 0 {
		return fmt.Errorf("%w: initial inventory must be non-negative, got %d", ErrInvalidConfig, *c.InitialInventory)
	}
	if err := c.Costs.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := variate.ValidateDuration("interarrival", c.Interarrival); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := variate.ValidateQuantity("demand_size", c.DemandSize); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := variate.ValidateDuration("lead_time", c.LeadTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// A lead time longer than the review period could put two orders in
	// flight at once; the model assumes at most one.
	hi, bounded := c.LeadTime.UpperBound()
	if !bounded {
		return fmt.Errorf("%w: lead_time distribution %q has unbounded support; use uniform or constant",
			ErrInvalidConfig, c.LeadTime.Type)
	}
	if hi > c.ReviewPeriod {
		return fmt.Errorf("%w: lead_time upper bound %g exceeds review period %g",
			ErrInvalidConfig, hi, c.ReviewPeriod)
	}
	// An interarrival distribution stuck at zero would never advance the
	// clock past the next customer.
	if iaHi, ok := c.Interarrival.UpperBound(); ok && iaHi <= 0 {
		return fmt.Errorf("%w: interarrival distribution never advances time", ErrInvalidConfig)
	}
	return nil
}

func (r CostRates) validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"order_setup", r.OrderSetup},
		{"order_per_unit", r.OrderPerUnit},
		{"holding_per_unit_month", r.HoldingPerUnitMonth},
		{"shortage_per_unit_month", r.ShortagePerUnitMonth},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) || f.val < 0 {
			return fmt.Errorf("cost rate %s must be finite and non-negative, got %f", f.name, f.val)
		}
	}
	return nil
}
