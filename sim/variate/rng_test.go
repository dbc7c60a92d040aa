package variate

import (
	"testing"
)

func TestPartitionedRNG_SameSeedSameStream(t *testing.T) {
	a := NewPartitionedRNG(42)
	b := NewPartitionedRNG(42)

	ra := a.ForStream(StreamLeadTime)
	rb := b.ForStream(StreamLeadTime)
	for i := 0; i < 1000; i++ {
		va, vb := ra.Float64(), rb.Float64()
		if va != vb {
			t.Fatalf("draw %d: %v != %v for identical seed and stream", i, va, vb)
		}
	}
}

func TestPartitionedRNG_DifferentStreamsDiverge(t *testing.T) {
	p := NewPartitionedRNG(42)
	ra := p.ForStream(StreamInterarrival)
	rb := p.ForStream(StreamDemandSize)

	same := 0
	for i := 0; i < 100; i++ {
		if ra.Float64() == rb.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("streams with different names produced identical sequences")
	}
}

func TestPartitionedRNG_DifferentSeedsDiverge(t *testing.T) {
	ra := NewPartitionedRNG(1).ForStream(StreamInterarrival)
	rb := NewPartitionedRNG(2).ForStream(StreamInterarrival)

	same := 0
	for i := 0; i < 100; i++ {
		if ra.Float64() == rb.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestPartitionedRNG_StreamInstanceCached(t *testing.T) {
	p := NewPartitionedRNG(42)
	if p.ForStream(StreamLeadTime) != p.ForStream(StreamLeadTime) {
		t.Error("repeated ForStream calls returned distinct generators")
	}
}

func TestPartitionedRNG_Seed(t *testing.T) {
	p := NewPartitionedRNG(7)
	if got := p.Seed(); got != 7 {
		t.Errorf("Seed() = %d, want 7", got)
	}
}
