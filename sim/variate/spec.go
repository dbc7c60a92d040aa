package variate

import (
	"fmt"
	"math"
	"strconv"
)

// Spec parameterizes a random variate distribution. The classic inventory
// model uses three: exponential customer interarrival times, an empirical
// demand-size PMF, and uniform replenishment lead times.
type Spec struct {
	Type   string             `yaml:"type" json:"type"`
	Params map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
}

// Valid value registries.
var (
	validDurationTypes = map[string]bool{
		"exponential": true, "uniform": true, "constant": true,
	}
	validQuantityTypes = map[string]bool{
		"empirical": true, "constant": true,
	}
)

// ValidateDuration checks s as a duration distribution. The name prefixes
// error messages so config errors point at the offending field.
func ValidateDuration(name string, s Spec) error {
	if !validDurationTypes[s.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: exponential, uniform, constant", name, s.Type)
	}
	return validateParams(name, s.Params)
}

// ValidateQuantity checks s as a quantity distribution.
func ValidateQuantity(name string, s Spec) error {
	if !validQuantityTypes[s.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: empirical, constant", name, s.Type)
	}
	return validateParams(name, s.Params)
}

func validateParams(name string, params map[string]float64) error {
	for k, v := range params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", name, k, v)
		}
	}
	return nil
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// UpperBound reports the distribution's maximum possible value, if it has
// one. Lead times must be bounded so an order placed at one review always
// lands before the next.
func (s Spec) UpperBound() (float64, bool) {
	switch s.Type {
	case "uniform":
		hi, ok := s.Params["max"]
		return hi, ok
	case "constant":
		v, ok := s.Params["value"]
		return v, ok
	default:
		return 0, false
	}
}

// NewSampler creates a duration Sampler from a Spec.
func NewSampler(spec Spec) (Sampler, error) {
	switch spec.Type {
	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		mean := spec.Params["mean"]
		if mean <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %f", mean)
		}
		return &ExponentialSampler{mean: mean}, nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := spec.Params["min"], spec.Params["max"]
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("uniform range [%f, %f] must be ordered and non-negative", lo, hi)
		}
		return &UniformSampler{min: lo, max: hi}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		v := spec.Params["value"]
		if v < 0 {
			return nil, fmt.Errorf("constant duration must be non-negative, got %f", v)
		}
		return &ConstantSampler{value: v}, nil

	default:
		return nil, fmt.Errorf("unknown duration distribution type %q", spec.Type)
	}
}

// NewSizeSampler creates a quantity SizeSampler from a Spec. Empirical
// params map quantity strings to probabilities, e.g. "2": 0.333.
func NewSizeSampler(spec Spec) (SizeSampler, error) {
	switch spec.Type {
	case "empirical":
		if len(spec.Params) == 0 {
			return nil, fmt.Errorf("empirical distribution requires at least one quantity bin")
		}
		pmf := make(map[int]float64, len(spec.Params))
		for k, v := range spec.Params {
			q, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("empirical PMF key %q is not an integer: %w", k, err)
			}
			if q < 1 {
				return nil, fmt.Errorf("empirical PMF quantity %d must be >= 1", q)
			}
			pmf[q] = v
		}
		positive := false
		for _, v := range pmf {
			if v > 0 {
				positive = true
				break
			}
		}
		if !positive {
			return nil, fmt.Errorf("empirical distribution has no positive-probability bins")
		}
		return NewDiscreteSampler(pmf), nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		v := int(spec.Params["value"])
		if v < 1 {
			return nil, fmt.Errorf("constant quantity must be >= 1, got %d", v)
		}
		return &ConstantSizeSampler{value: v}, nil

	default:
		return nil, fmt.Errorf("unknown quantity distribution type %q", spec.Type)
	}
}
