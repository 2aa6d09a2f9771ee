package v1

import "testing"

func buildProposal(specs ...TransformSpec) Proposal {
	transforms := make([]Transform, len(specs))
	for i, spec := range specs {
		next := PayloadTransform
		if i == len(specs)-1 {
			next = PayloadNone
		}
		attrLen := 0
		for _, a := range spec.attributes() {
			attrLen += len(a.Encode())
		}
		transforms[i] = Transform{
			NextPayload:  next,
			Length:       uint16(staticTransformSize + attrLen),
			TransformNo:  uint8(i + 1),
			TransformID:  TransformKeyIKE,
			SAAttributes: spec.attributes(),
		}
	}
	length := staticProposalSize
	for _, t := range transforms {
		length += int(t.Length)
	}
	return Proposal{
		NextPayload:    PayloadNone,
		Length:         uint16(length),
		ProposalNo:     1,
		ProtocolID:     ProtoISAKMP,
		SPISize:        0,
		NoOfTransforms: uint8(len(transforms)),
		Transforms:     transforms,
	}
}

func TestProposalRoundTrip(t *testing.T) {
	spec := TransformSpec{Encryption: Enc3DESCBC, Hash: HashSHA, Auth: AuthPreSharedKey, Group: GroupMODP1024}
	p := buildProposal(spec, spec)
	encoded := p.Encode()

	decoded, err := ParseProposal(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Transforms) != 2 {
		t.Fatalf("decoded %d transforms, want 2", len(decoded.Transforms))
	}
	if decoded.ProtocolID != ProtoISAKMP {
		t.Fatalf("protocol id = %v, want ISAKMP", decoded.ProtocolID)
	}
}

// TestParseProposalTransformCountMismatch grounds scenario 5: a proposal
// whose declared transform count does not match its actual transform
// count is rejected as UnexpectedPayload.
func TestParseProposalTransformCountMismatch(t *testing.T) {
	spec := TransformSpec{Encryption: EncDESCBC, Hash: HashMD5, Auth: AuthPreSharedKey, Group: GroupMODP768}
	p := buildProposal(spec)
	p.NoOfTransforms = 2 // declare two, encode only one
	encoded := p.Encode()

	_, err := ParseProposal(encoded)
	if err != ErrUnexpectedPayload {
		t.Fatalf("err = %v, want ErrUnexpectedPayload", err)
	}
}

func TestParseProposalTooSmall(t *testing.T) {
	_, err := ParseProposal(make([]byte, staticProposalSize-1))
	if err != ErrBufferTooSmall {
		t.Fatalf("err = %v, want ErrBufferTooSmall", err)
	}
}
