package variate

import (
	"hash/fnv"
	"math/rand"
)

// Stream names for the model's independent draw sequences. Keeping each
// variate kind on its own stream means draws of one kind never shift
// another, so the order of draws inside an event handler does not matter.
const (
	StreamInterarrival = "demand_interarrival"
	StreamDemandSize   = "demand_size"
	StreamLeadTime     = "lead_time"
)

// PartitionedRNG provides deterministic, isolated RNG streams derived from
// a single replication seed.
//
// Derivation: each named stream is seeded with seed XOR fnv1a64(name) and
// cached on first use. Two replications with the same seed MUST produce
// bit-for-bit identical draw sequences on every stream.
//
// Not safe for concurrent use; each replication owns its PartitionedRNG.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG for one replication seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// ForStream returns the deterministically seeded RNG for the named stream.
// The same name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.streams[name] = rng
	return rng
}

// Seed returns the replication seed this PartitionedRNG derives from.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
