package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostStats_HoldingAccrual(t *testing.T) {
	cs := NewCostStats(DefaultCostRates())

	cs.Accrue(10, 0.5) // 10 units for half a month
	cs.Accrue(4, 2.0)  // 4 units for 1.5 months

	assert.InDelta(t, 10*0.5+4*1.5, cs.HoldingCost(), 1e-12)
	assert.Equal(t, 0.0, cs.ShortageCost())
	assert.Equal(t, 2.0, cs.AccountedTime())
}

func TestCostStats_ShortageAccrual(t *testing.T) {
	cs := NewCostStats(DefaultCostRates())

	cs.Accrue(-2, 1.0) // 2 units short for one month at $3
	cs.Accrue(-5, 1.5) // 5 units short for half a month

	assert.InDelta(t, (2*1.0+5*0.5)*3, cs.ShortageCost(), 1e-12)
	assert.Equal(t, 0.0, cs.HoldingCost())
}

func TestCostStats_ZeroLevelAccruesNothing(t *testing.T) {
	cs := NewCostStats(DefaultCostRates())

	cs.Accrue(0, 5.0)

	assert.Equal(t, 0.0, cs.HoldingCost())
	assert.Equal(t, 0.0, cs.ShortageCost())
	assert.Equal(t, 5.0, cs.AccountedTime())
}

func TestCostStats_ZeroLengthIntervalAllowed(t *testing.T) {
	cs := NewCostStats(DefaultCostRates())

	cs.Accrue(3, 1.0)
	cs.Accrue(3, 1.0) // simultaneous events accrue an empty interval

	assert.Equal(t, 3.0, cs.HoldingCost())
	assert.Equal(t, 1.0, cs.AccountedTime())
}

func TestCostStats_AddOrder(t *testing.T) {
	cs := NewCostStats(DefaultCostRates())

	cs.AddOrder(10) // 32 + 3*10
	cs.AddOrder(25) // 32 + 3*25

	assert.Equal(t, 62.0+107.0, cs.OrderCost())
}

func TestCostStats_RatesApplyAtReadTime(t *testing.T) {
	rates := CostRates{OrderSetup: 0, OrderPerUnit: 0, HoldingPerUnitMonth: 2.5, ShortagePerUnitMonth: 7}
	cs := NewCostStats(rates)

	cs.Accrue(4, 1.0)
	cs.Accrue(-4, 2.0)

	assert.InDelta(t, 4*1.0*2.5, cs.HoldingCost(), 1e-12)
	assert.InDelta(t, 4*1.0*7.0, cs.ShortageCost(), 1e-12)
}

func TestCostStats_PanicsOnBackwardsAccrual(t *testing.T) {
	cs := NewCostStats(DefaultCostRates())
	cs.Accrue(1, 2.0)

	assert.Panics(t, func() {
		cs.Accrue(1, 1.0)
	})
}
