package v2

import "testing"

// TestSecurityAssociationManyEmptyProposals grounds scenario 6: 100 empty
// proposals round-trip with unique SPI bytes, preserved in order. Protocol
// 4 (FC-ESP-Header) carries no mandatory-transform rule, so an empty
// transform list is legal and the numbering logic can be tested in
// isolation.
func TestSecurityAssociationManyEmptyProposals(t *testing.T) {
	const n = 100
	sa := SecurityAssociation{}
	for i := 0; i < n; i++ {
		sa.Proposals = append(sa.Proposals, Proposal{
			ProposalNo: uint8(i + 1),
			Protocol:   ProtoFcEncapsulatingSecurityPayloadHeader,
			SPI:        []byte{byte(i >> 8), byte(i)},
		})
	}

	encoded := sa.Encode()
	decoded, err := ParseSecurityAssociation(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Proposals) != n {
		t.Fatalf("decoded %d proposals, want %d", len(decoded.Proposals), n)
	}

	seenSPIs := make(map[string]bool)
	for i, p := range decoded.Proposals {
		if p.ProposalNo != uint8(i+1) {
			t.Fatalf("proposal %d: number = %d, want %d", i, p.ProposalNo, i+1)
		}
		key := string(p.SPI)
		if seenSPIs[key] {
			t.Fatalf("proposal %d: duplicate SPI %v", i, p.SPI)
		}
		seenSPIs[key] = true
	}
}

func TestSecurityAssociationEmpty(t *testing.T) {
	decoded, err := ParseSecurityAssociation(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Proposals) != 0 {
		t.Fatalf("decoded %d proposals, want 0", len(decoded.Proposals))
	}
}

func TestSecurityAssociationInvalidNumberingStart(t *testing.T) {
	sa := SecurityAssociation{Proposals: []Proposal{
		{ProposalNo: 2, Protocol: ProtoFcEncapsulatingSecurityPayloadHeader},
	}}
	encoded := sa.Encode()
	_, err := ParseSecurityAssociation(encoded)
	if _, ok := err.(*InvalidProposalNumberingStartError); !ok {
		t.Fatalf("err = %v, want *InvalidProposalNumberingStartError", err)
	}
}

func TestSecurityAssociationInvalidNumberingGap(t *testing.T) {
	sa := SecurityAssociation{Proposals: []Proposal{
		{ProposalNo: 1, Protocol: ProtoFcEncapsulatingSecurityPayloadHeader},
		{ProposalNo: 3, Protocol: ProtoFcEncapsulatingSecurityPayloadHeader},
	}}
	encoded := sa.Encode()
	_, err := ParseSecurityAssociation(encoded)
	if _, ok := err.(*InvalidProposalNumberingError); !ok {
		t.Fatalf("err = %v, want *InvalidProposalNumberingError", err)
	}
}
