// Package trace provides optional recording of a replication's inventory
// level path and order lifecycle. It stores pure data types and has no
// dependency on the engine packages.
package trace

// LevelRecord captures the inventory level immediately after it changes.
// The level holds from Clock until the next record's Clock.
type LevelRecord struct {
	Clock float64
	Level int
}

// OrderRecord captures one replenishment order from placement to arrival.
// Arrival fields stay zero while the order is in flight.
type OrderRecord struct {
	PlacedAt  float64
	Quantity  int
	ArrivedAt float64
	Arrived   bool
}
