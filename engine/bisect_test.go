package engine

import (
	"testing"

	v1 "krypt.co/ikescan/isakmp/v1"
)

func makeCandidates(n int) []CandidateTransform {
	out := make([]CandidateTransform, n)
	for i := range out {
		out[i] = CandidateTransform{Encryption: v1.EncryptionAlgorithm(i + 1)}
	}
	return out
}

func TestBisectInvariants(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 20, 21} {
		r := makeCandidates(n)
		a, b := Bisect(r)
		if len(a)+len(b) != n {
			t.Fatalf("n=%d: |a|+|b| = %d, want %d", n, len(a)+len(b), n)
		}
		diff := len(a) - len(b)
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 {
			t.Fatalf("n=%d: ||a|-|b|| = %d, want <= 1", n, diff)
		}
		combined := append(append([]CandidateTransform{}, a...), b...)
		if len(combined) != len(r) {
			t.Fatalf("n=%d: combined length mismatch", n)
		}
		for i := range r {
			if combined[i] != r[i] {
				t.Fatalf("n=%d: order not preserved at index %d", n, i)
			}
		}
	}
}

func TestNonAccepted(t *testing.T) {
	members := makeCandidates(5)
	accepted := []CandidateTransform{members[1], members[3]}
	rem := nonAccepted(members, accepted)
	if len(rem) != 3 {
		t.Fatalf("remainder length = %d, want 3", len(rem))
	}
	for _, m := range rem {
		if m == members[1] || m == members[3] {
			t.Fatalf("accepted member %+v leaked into remainder", m)
		}
	}
}
