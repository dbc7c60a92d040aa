package variate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{
			name:    "exponential ok",
			spec:    Spec{Type: "exponential", Params: map[string]float64{"mean": 0.1}},
			wantErr: false,
		},
		{
			name:    "uniform ok",
			spec:    Spec{Type: "uniform", Params: map[string]float64{"min": 0.5, "max": 1.0}},
			wantErr: false,
		},
		{
			name:    "constant ok",
			spec:    Spec{Type: "constant", Params: map[string]float64{"value": 2}},
			wantErr: false,
		},
		{
			name:    "unknown type",
			spec:    Spec{Type: "normal", Params: map[string]float64{"mean": 1}},
			wantErr: true,
		},
		{
			name:    "empty type",
			spec:    Spec{Params: map[string]float64{"mean": 1}},
			wantErr: true,
		},
		{
			name:    "empirical is not a duration",
			spec:    Spec{Type: "empirical", Params: map[string]float64{"1": 1}},
			wantErr: true,
		},
		{
			name:    "NaN param",
			spec:    Spec{Type: "constant", Params: map[string]float64{"value": math.NaN()}},
			wantErr: true,
		},
		{
			name:    "infinite param",
			spec:    Spec{Type: "exponential", Params: map[string]float64{"mean": math.Inf(1)}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration("lead_time", tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{
			name:    "empirical ok",
			spec:    Spec{Type: "empirical", Params: map[string]float64{"1": 0.5, "2": 0.5}},
			wantErr: false,
		},
		{
			name:    "constant ok",
			spec:    Spec{Type: "constant", Params: map[string]float64{"value": 2}},
			wantErr: false,
		},
		{
			name:    "uniform is not a quantity",
			spec:    Spec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 4}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			spec:    Spec{Type: "poisson", Params: map[string]float64{"mean": 2}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuantity("demand_size", tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSampler_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{
			name: "unknown type",
			spec: Spec{Type: "weibull", Params: map[string]float64{"shape": 1}},
		},
		{
			name: "exponential missing mean",
			spec: Spec{Type: "exponential", Params: map[string]float64{}},
		},
		{
			name: "exponential zero mean",
			spec: Spec{Type: "exponential", Params: map[string]float64{"mean": 0}},
		},
		{
			name: "exponential negative mean",
			spec: Spec{Type: "exponential", Params: map[string]float64{"mean": -0.1}},
		},
		{
			name: "uniform missing max",
			spec: Spec{Type: "uniform", Params: map[string]float64{"min": 0.5}},
		},
		{
			name: "uniform min above max",
			spec: Spec{Type: "uniform", Params: map[string]float64{"min": 1.0, "max": 0.5}},
		},
		{
			name: "uniform negative min",
			spec: Spec{Type: "uniform", Params: map[string]float64{"min": -1, "max": 1}},
		},
		{
			name: "constant missing value",
			spec: Spec{Type: "constant", Params: nil},
		},
		{
			name: "constant negative value",
			spec: Spec{Type: "constant", Params: map[string]float64{"value": -2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSampler(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestNewSampler_UniformAllowsPoint(t *testing.T) {
	s, err := NewSampler(Spec{Type: "uniform", Params: map[string]float64{"min": 0.7, "max": 0.7}})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 0.7, s.Sample(rng))
}

func TestNewSizeSampler_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{
			name: "unknown type",
			spec: Spec{Type: "geometric", Params: map[string]float64{"p": 0.5}},
		},
		{
			name: "empirical non-integer key",
			spec: Spec{Type: "empirical", Params: map[string]float64{"two": 1}},
		},
		{
			name: "empirical zero quantity",
			spec: Spec{Type: "empirical", Params: map[string]float64{"0": 1}},
		},
		{
			name: "empirical negative quantity",
			spec: Spec{Type: "empirical", Params: map[string]float64{"-2": 1}},
		},
		{
			name: "empirical no positive mass",
			spec: Spec{Type: "empirical", Params: map[string]float64{"1": 0, "2": 0}},
		},
		{
			name: "empirical empty",
			spec: Spec{Type: "empirical", Params: map[string]float64{}},
		},
		{
			name: "constant below one",
			spec: Spec{Type: "constant", Params: map[string]float64{"value": 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSizeSampler(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestSpec_UpperBound(t *testing.T) {
	tests := []struct {
		name      string
		spec      Spec
		wantHi    float64
		wantKnown bool
	}{
		{
			name:      "uniform bounded by max",
			spec:      Spec{Type: "uniform", Params: map[string]float64{"min": 0.5, "max": 1.0}},
			wantHi:    1.0,
			wantKnown: true,
		},
		{
			name:      "constant bounded by value",
			spec:      Spec{Type: "constant", Params: map[string]float64{"value": 0.8}},
			wantHi:    0.8,
			wantKnown: true,
		},
		{
			name:      "exponential unbounded",
			spec:      Spec{Type: "exponential", Params: map[string]float64{"mean": 0.1}},
			wantKnown: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hi, ok := tt.spec.UpperBound()
			assert.Equal(t, tt.wantKnown, ok)
			if tt.wantKnown {
				assert.Equal(t, tt.wantHi, hi)
			}
		})
	}
}
