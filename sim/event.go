package sim

// EventKind tags the four event types that drive the simulation.
type EventKind int

const (
	EventKindDemandArrival EventKind = iota
	EventKindOrderArrival
	EventKindEndOfMonthReview
	EventKindEndOfSimulation
)

// String returns the human-readable event kind name.
func (k EventKind) String() string {
	switch k {
	case EventKindDemandArrival:
		return "DemandArrival"
	case EventKindOrderArrival:
		return "OrderArrival"
	case EventKindEndOfMonthReview:
		return "EndOfMonthReview"
	case EventKindEndOfSimulation:
		return "EndOfSimulation"
	default:
		return "Unknown"
	}
}

// EventKindPriority orders events that share a timestamp. Lower values pop
// first: the horizon cutoff preempts everything else, an arriving order
// lands before the review that would otherwise re-order the same
// shortfall, and reviews run before new demand.
var EventKindPriority = map[EventKind]int{
	EventKindEndOfSimulation:  0,
	EventKindOrderArrival:     1,
	EventKindEndOfMonthReview: 2,
	EventKindDemandArrival:    3,
}

// Event is a tagged entry on the calendar. It carries no payload: demand
// sizes are drawn when the event is handled, and order quantities follow
// from simulator state at placement time.
type Event struct {
	Time float64 // simulated months
	Kind EventKind

	seq uint64 // assigned by the calendar, final tie-breaker
}
