// Package variate supplies the random inputs of the inventory model:
// distribution specs, samplers, and per-replication partitioned RNG
// streams.
package variate

import "fmt"

// Source supplies the three random inputs of one replication. A draw
// error is fatal to the replication that made it and is never retried;
// the rand-backed implementation returned by NewSource cannot fail.
type Source interface {
	// Interarrival returns the gap in months until the next customer.
	Interarrival() (float64, error)
	// DemandSize returns the units requested by one customer.
	DemandSize() (int, error)
	// LeadTime returns the delay in months before a placed order arrives.
	LeadTime() (float64, error)
}

// randSource draws each variate kind from its own partitioned stream.
type randSource struct {
	rng          *PartitionedRNG
	interarrival Sampler
	demandSize   SizeSampler
	leadTime     Sampler
}

// NewSource builds a Source from distribution specs, with one isolated
// stream per variate kind derived from the replication seed.
func NewSource(seed int64, interarrival, demandSize, leadTime Spec) (Source, error) {
	ia, err := NewSampler(interarrival)
	if err != nil {
		return nil, fmt.Errorf("interarrival distribution: %w", err)
	}
	ds, err := NewSizeSampler(demandSize)
	if err != nil {
		return nil, fmt.Errorf("demand size distribution: %w", err)
	}
	lt, err := NewSampler(leadTime)
	if err != nil {
		return nil, fmt.Errorf("lead time distribution: %w", err)
	}
	return &randSource{
		rng:          NewPartitionedRNG(seed),
		interarrival: ia,
		demandSize:   ds,
		leadTime:     lt,
	}, nil
}

func (s *randSource) Interarrival() (float64, error) {
	return s.interarrival.Sample(s.rng.ForStream(StreamInterarrival)), nil
}

func (s *randSource) DemandSize() (int, error) {
	return s.demandSize.Sample(s.rng.ForStream(StreamDemandSize)), nil
}

func (s *randSource) LeadTime() (float64, error) {
	return s.leadTime.Sample(s.rng.ForStream(StreamLeadTime)), nil
}
