package sim

import "fmt"

// CostStats accumulates the time-weighted cost components of one
// replication. Areas are kept in unit-months and converted to dollars at
// read time so each rate applies exactly once.
type CostStats struct {
	rates CostRates

	orderCost    float64 // dollars, charged at placement
	holdingArea  float64 // unit-months on hand
	shortageArea float64 // unit-months backordered
	accountedTo  float64 // simulated time covered by accrual so far
}

// NewCostStats creates a collector charging the given rates.
func NewCostStats(rates CostRates) *CostStats {
	return &CostStats{rates: rates}
}

// Accrue charges the interval from the accounting watermark to until at
// the given inventory level, then advances the watermark. Called once per
// event with the pre-event level, so every instant of the horizon is
// charged exactly once.
func (cs *CostStats) Accrue(level int, until float64) {
	dt := until - cs.accountedTo
	if dt < 0 {
		panic(fmt.Sprintf("cost accrual moved backwards: %g < %g", until, cs.accountedTo))
	}
	if level > 0 {
		cs.holdingArea += float64(level) * dt
	} else if level < 0 {
		cs.shortageArea += float64(-level) * dt
	}
	cs.accountedTo = until
}

// AddOrder charges the fixed setup cost plus the per-unit cost of quantity.
func (cs *CostStats) AddOrder(quantity int) {
	cs.orderCost += cs.rates.OrderSetup + cs.rates.OrderPerUnit*float64(quantity)
}

// AccountedTime reports the simulated time covered so far. After a
// completed replication it equals the horizon.
func (cs *CostStats) AccountedTime() float64 {
	return cs.accountedTo
}

// OrderCost reports dollars spent on orders so far.
func (cs *CostStats) OrderCost() float64 {
	return cs.orderCost
}

// HoldingCost reports dollars of holding accrued so far.
func (cs *CostStats) HoldingCost() float64 {
	return cs.holdingArea * cs.rates.HoldingPerUnitMonth
}

// ShortageCost reports dollars of backlog accrued so far.
func (cs *CostStats) ShortageCost() float64 {
	return cs.shortageArea * cs.rates.ShortagePerUnitMonth
}
