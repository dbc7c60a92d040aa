package sim

import "container/heap"

// Calendar is the pending-event queue with deterministic ordering.
// Ordering: time → kind priority → schedule sequence.
type Calendar struct {
	h       eventHeap
	nextSeq uint64
}

// NewCalendar creates an empty calendar.
func NewCalendar() *Calendar {
	c := &Calendar{h: make(eventHeap, 0)}
	heap.Init(&c.h)
	return c
}

// Len reports the number of pending events.
func (c *Calendar) Len() int {
	return c.h.Len()
}

// Schedule adds an event. The calendar stamps each event with a sequence
// number so otherwise identical events pop in scheduling order.
func (c *Calendar) Schedule(e Event) {
	c.nextSeq++
	e.seq = c.nextSeq
	heap.Push(&c.h, e)
}

// PopNext removes and returns the earliest event. The second return is
// false when the calendar is empty.
func (c *Calendar) PopNext() (Event, bool) {
	if c.h.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(&c.h).(Event), true
}

// Peek returns the earliest event without removing it.
func (c *Calendar) Peek() (Event, bool) {
	if c.h.Len() == 0 {
		return Event{}, false
	}
	return c.h[0], true
}

// eventHeap implements heap.Interface with the calendar's total order.
type eventHeap []Event

func (h eventHeap) Len() int {
	return len(h)
}

// Less orders by timestamp, then kind priority, then schedule sequence.
func (h eventHeap) Less(i, j int) bool {
	ei, ej := h[i], h[j]
	if ei.Time != ej.Time {
		return ei.Time < ej.Time
	}
	pi, pj := EventKindPriority[ei.Kind], EventKindPriority[ej.Kind]
	if pi != pj {
		return pi < pj
	}
	return ei.seq < ej.seq
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
