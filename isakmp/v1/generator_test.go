package v1

import "testing"

func specsOfSize(n int) []TransformSpec {
	specs := make([]TransformSpec, n)
	for i := range specs {
		specs[i] = TransformSpec{
			Encryption: EncAESCBC,
			KeyLength:  128,
			Hash:       HashSHA2_256,
			Auth:       AuthPreSharedKey,
			Group:      GroupMODP2048,
		}
	}
	return specs
}

func TestGenerateMainModeRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 20, 100, 500} {
		buf := GenerateMainMode(0x1122334455667788, 0, specsOfSize(n))
		pkt, err := ParsePacket(buf)
		if err != nil {
			t.Fatalf("batch size %d: %v", n, err)
		}
		if len(pkt.Payloads) != 1 {
			t.Fatalf("batch size %d: got %d top-level payloads, want 1", n, len(pkt.Payloads))
		}
		sa, ok := pkt.Payloads[0].(SecurityAssociation)
		if !ok {
			t.Fatalf("batch size %d: top-level payload is not a SecurityAssociation", n)
		}
		if len(sa.Proposals) != 1 {
			t.Fatalf("batch size %d: got %d proposals, want 1", n, len(sa.Proposals))
		}
		if len(sa.Proposals[0].Transforms) != n {
			t.Fatalf("batch size %d: got %d transforms, want %d", n, len(sa.Proposals[0].Transforms), n)
		}
		if int(pkt.Header.Length) != len(buf) {
			t.Fatalf("batch size %d: header length %d != encoded length %d", n, pkt.Header.Length, len(buf))
		}
	}
}

func TestGenerateMainModeLengthIsWordAligned(t *testing.T) {
	buf := GenerateMainMode(1, 0, specsOfSize(3))
	if len(buf)%4 != 0 {
		t.Fatalf("encoded message length %d is not a multiple of 4", len(buf))
	}
}
