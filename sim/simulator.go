package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Arthurbdt/inventory-simulation/sim/trace"
	"github.com/Arthurbdt/inventory-simulation/sim/variate"
)

// ErrCalendarUnderflow reports an empty calendar before the end of the
// simulation. The demand stream always reschedules itself, so underflow
// can only mean an engine bug; callers fail the whole batch instead of
// recording it as an ordinary replication failure.
var ErrCalendarUnderflow = errors.New("event calendar underflow")

// Simulator runs one replication of the periodic-review inventory model.
//
// State fields are exported for inspection between construction and Run;
// mutating them mid-run is not supported.
type Simulator struct {
	Config Config

	// Simulation state.
	Clock     float64 // simulated months, never decreases
	Level     int     // signed inventory: positive on hand, negative backordered
	InTransit int     // units of the single outstanding order, 0 when none

	// Recorder, when non-nil, captures the level path and order
	// lifecycle. Nil recording costs nothing.
	Recorder *trace.Recorder

	source   variate.Source
	calendar *Calendar
	stats    *CostStats
}

// NewSimulator builds a replication from a config and seed. Defaults are
// applied to a copy; the caller's config is not modified.
func NewSimulator(cfg Config, seed int64) (*Simulator, error) {
	cfg.ApplyDefaults()
	src, err := variate.NewSource(seed, cfg.Interarrival, cfg.DemandSize, cfg.LeadTime)
	if err != nil {
		return nil, err
	}
	return NewSimulatorWithSource(cfg, src), nil
}

// NewSimulatorWithSource builds a replication drawing from the given
// source. Used by the experiment driver's fault-injection hook and tests.
func NewSimulatorWithSource(cfg Config, src variate.Source) *Simulator {
	cfg.ApplyDefaults()
	return &Simulator{
		Config:   cfg,
		Level:    *cfg.InitialInventory,
		source:   src,
		calendar: NewCalendar(),
		stats:    NewCostStats(cfg.Costs),
	}
}

// Run executes events until the horizon and returns the replication's
// cost summary. A variate draw failure aborts this replication only; the
// returned error wraps the failing draw.
func (s *Simulator) Run() (ReplicationResult, error) {
	if err := s.scheduleInitial(); err != nil {
		return ReplicationResult{}, err
	}

	for {
		ev, ok := s.calendar.PopNext()
		if !ok {
			return ReplicationResult{}, fmt.Errorf("%w at t=%.4f", ErrCalendarUnderflow, s.Clock)
		}
		if ev.Time < s.Clock {
			panic(fmt.Sprintf("clock went backwards: %g < %g", ev.Time, s.Clock))
		}

		// Charge the interval since the previous event at the level that
		// held throughout it, then mutate.
		s.stats.Accrue(s.Level, ev.Time)
		s.Clock = ev.Time

		logrus.Tracef("t=%.4f %s level=%d in_transit=%d", s.Clock, ev.Kind, s.Level, s.InTransit)

		var err error
		switch ev.Kind {
		case EventKindDemandArrival:
			err = s.handleDemandArrival()
		case EventKindOrderArrival:
			s.handleOrderArrival()
		case EventKindEndOfMonthReview:
			err = s.handleReview()
		case EventKindEndOfSimulation:
			return s.summarize(), nil
		default:
			panic(fmt.Sprintf("unknown event kind %d", ev.Kind))
		}
		if err != nil {
			return ReplicationResult{}, err
		}
	}
}

// scheduleInitial seeds the calendar: the first customer, the first
// review one period in, and the horizon cutoff.
func (s *Simulator) scheduleInitial() error {
	gap, err := s.source.Interarrival()
	if err != nil {
		return fmt.Errorf("drawing first interarrival: %w", err)
	}
	s.calendar.Schedule(Event{Time: gap, Kind: EventKindDemandArrival})
	if s.Config.ReviewPeriod <= s.Config.HorizonMonths {
		s.calendar.Schedule(Event{Time: s.Config.ReviewPeriod, Kind: EventKindEndOfMonthReview})
	}
	s.calendar.Schedule(Event{Time: s.Config.HorizonMonths, Kind: EventKindEndOfSimulation})
	s.Recorder.RecordLevel(0, s.Level)
	return nil
}

// handleDemandArrival withdraws one customer's demand, possibly driving
// the level negative (backlog is unbounded), and books the next arrival.
func (s *Simulator) handleDemandArrival() error {
	size, err := s.source.DemandSize()
	if err != nil {
		return fmt.Errorf("drawing demand size: %w", err)
	}
	s.Level -= size
	s.Recorder.RecordLevel(s.Clock, s.Level)

	gap, err := s.source.Interarrival()
	if err != nil {
		return fmt.Errorf("drawing interarrival: %w", err)
	}
	s.calendar.Schedule(Event{Time: s.Clock + gap, Kind: EventKindDemandArrival})
	return nil
}

// handleReview places an order when the level has fallen below the
// reorder point, then books the next review.
func (s *Simulator) handleReview() error {
	if s.Level < s.Config.Policy.ReorderPoint {
		if s.InTransit != 0 {
			panic(fmt.Sprintf("review at t=%.4f found an outstanding order of %d units", s.Clock, s.InTransit))
		}
		quantity := s.Config.Policy.OrderUpTo - s.Level
		s.stats.AddOrder(quantity)
		s.InTransit = quantity

		lead, err := s.source.LeadTime()
		if err != nil {
			return fmt.Errorf("drawing lead time: %w", err)
		}
		s.calendar.Schedule(Event{Time: s.Clock + lead, Kind: EventKindOrderArrival})
		s.Recorder.RecordOrderPlaced(s.Clock, quantity)
		logrus.Debugf("t=%.4f ordered %d units (level %d below reorder point %d)",
			s.Clock, quantity, s.Level, s.Config.Policy.ReorderPoint)
	}

	if next := s.Clock + s.Config.ReviewPeriod; next <= s.Config.HorizonMonths {
		s.calendar.Schedule(Event{Time: next, Kind: EventKindEndOfMonthReview})
	}
	return nil
}

// handleOrderArrival adds the outstanding order to the level in one
// signed step, clearing any backlog before the remainder goes on hand.
func (s *Simulator) handleOrderArrival() {
	s.Level += s.InTransit
	s.InTransit = 0
	s.Recorder.RecordOrderArrived(s.Clock)
	s.Recorder.RecordLevel(s.Clock, s.Level)
}

func (s *Simulator) summarize() ReplicationResult {
	h := s.Config.HorizonMonths
	order := s.stats.OrderCost()
	holding := s.stats.HoldingCost()
	shortage := s.stats.ShortageCost()
	return ReplicationResult{
		AvgMonthlyCost:         (order + holding + shortage) / h,
		AvgMonthlyOrderCost:    order / h,
		AvgMonthlyHoldingCost:  holding / h,
		AvgMonthlyShortageCost: shortage / h,
		TimeAccounted:          s.stats.AccountedTime(),
	}
}
