package trace

// Summary aggregates a recorded replication into the numbers inventory
// level plots are usually read for.
type Summary struct {
	OrdersPlaced    int
	OrdersArrived   int
	UnitsOrdered    int
	MeanLeadTime    float64 // months, over arrived orders
	PeakOnHand      int
	PeakBacklog     int     // magnitude of the most negative level
	BacklogFraction float64 // share of the horizon spent backordered
}

// Summarize computes aggregate statistics from a Recorder over a horizon.
// Safe for nil or empty recorders (returns zero-value fields).
func Summarize(r *Recorder, horizon float64) *Summary {
	s := &Summary{}
	if r == nil {
		return s
	}

	for _, o := range r.Orders {
		s.OrdersPlaced++
		s.UnitsOrdered += o.Quantity
		if o.Arrived {
			s.OrdersArrived++
			s.MeanLeadTime += o.ArrivedAt - o.PlacedAt
		}
	}
	if s.OrdersArrived > 0 {
		s.MeanLeadTime /= float64(s.OrdersArrived)
	}

	backlogTime := 0.0
	for i, rec := range r.Levels {
		if rec.Level > s.PeakOnHand {
			s.PeakOnHand = rec.Level
		}
		if -rec.Level > s.PeakBacklog {
			s.PeakBacklog = -rec.Level
		}
		if rec.Level < 0 {
			end := horizon
			if i+1 < len(r.Levels) {
				end = r.Levels[i+1].Clock
			}
			if end > rec.Clock {
				backlogTime += end - rec.Clock
			}
		}
	}
	if horizon > 0 {
		s.BacklogFraction = backlogTime / horizon
	}

	return s
}
