package engine

import (
	"testing"

	v1 "krypt.co/ikescan/isakmp/v1"
)

func TestEnumerateCandidatesAESVariants(t *testing.T) {
	candidates := EnumerateCandidates()

	counts := map[CandidateTransform]int{}
	for _, c := range candidates {
		counts[c]++
	}
	for c, n := range counts {
		if n != 1 {
			t.Fatalf("candidate %+v produced %d times, want 1", c, n)
		}
	}

	keyLengths := map[uint16]int{}
	for _, c := range candidates {
		if c.Encryption == v1.EncAESCBC {
			keyLengths[c.KeyLength]++
		} else if c.KeyLength != 0 {
			t.Fatalf("non-AES candidate %+v has a key length", c)
		}
	}
	for _, want := range []uint16{128, 192, 256} {
		if keyLengths[want] == 0 {
			t.Fatalf("no AES_CBC candidate with key length %d", want)
		}
	}
}

func TestEnumerateCandidatesStable(t *testing.T) {
	a := EnumerateCandidates()
	b := EnumerateCandidates()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestChunkBatches(t *testing.T) {
	candidates := make([]CandidateTransform, 45)
	for i := range candidates {
		candidates[i] = CandidateTransform{Encryption: v1.EncryptionAlgorithm(i)}
	}

	batches := ChunkBatches(candidates, 20)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	if len(batches[0].Transforms) != 20 || len(batches[1].Transforms) != 20 || len(batches[2].Transforms) != 5 {
		t.Fatalf("batch sizes = %d, %d, %d", len(batches[0].Transforms), len(batches[1].Transforms), len(batches[2].Transforms))
	}
}
