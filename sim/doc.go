// Package sim provides the discrete-event simulation engine for a
// single-product, periodic-review (s, S) inventory system.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the four event kinds and the tie-breaking order for
//     simultaneous events
//   - calendar.go: the pending-event min-heap (time → kind priority →
//     schedule sequence)
//   - simulator.go: the event loop, the accrue-then-mutate rule, and one
//     handler per event kind
//
// # Architecture
//
// The sim package holds the single-replication engine; everything around
// it lives in sub-packages:
//   - sim/variate/: distribution specs, samplers, and the per-replication
//     partitioned RNG streams
//   - sim/experiment/: the replication driver, worker pool, and the
//     Student's t interval aggregation
//   - sim/optimize/: greedy local search over the (s, S) policy space
//   - sim/trace/: optional level-path and order-lifecycle recording
//
// # Model
//
// One replication walks a virtual clock (float64 months) through a
// calendar of four event kinds: customers arrive with exponential gaps
// and withdraw an integer demand; a review at every period end orders
// back up to S when the level has fallen below s; placed orders arrive
// after a bounded lead time; a horizon cutoff ends the run. The level is
// a single signed integer, so an arriving order clears backlog and
// deposits the remainder on hand in one addition. Costs accrue
// time-weighted between events at the level that held throughout the
// interval.
//
// Replications never share mutable state. Reproducibility is per seed:
// the same seed and config produce bit-for-bit identical results, with
// each variate kind on its own RNG stream.
package sim
