package sim

// ReplicationResult is the immutable outcome of one replication: the
// average monthly cost and its components over the simulated horizon.
type ReplicationResult struct {
	Replication int   `json:"replication"`
	Seed        int64 `json:"seed"`

	AvgMonthlyCost         float64 `json:"avg_monthly_cost"`
	AvgMonthlyOrderCost    float64 `json:"avg_monthly_order_cost"`
	AvgMonthlyHoldingCost  float64 `json:"avg_monthly_holding_cost"`
	AvgMonthlyShortageCost float64 `json:"avg_monthly_shortage_cost"`

	// TimeAccounted is the simulated time covered by cost accrual. A
	// completed replication accounts for the full horizon, no instant
	// double-counted or dropped.
	TimeAccounted float64 `json:"time_accounted"`
}
