package v1

import "encoding/binary"

// defaultLifeDurationSeconds is the SA lifetime this scanner proposes for
// every transform. The value itself is never negotiated to completion, so
// any RFC-legal duration works.
const defaultLifeDurationSeconds = 7080

// TransformSpec describes one candidate Phase-1 transform: the four
// mandatory attributes (encryption, hash, auth, group) plus an optional
// key length for variable-key ciphers such as AES.
type TransformSpec struct {
	Encryption EncryptionAlgorithm
	KeyLength  uint16 // 0 omits the KeyLength attribute (fixed-key cipher)
	Hash       HashAlgorithm
	Auth       AuthenticationMethod
	Group      GroupDescription
}

func (s TransformSpec) attributes() []DataAttribute {
	attrs := []DataAttribute{
		{Short: &DataAttributeShort{AttributeType: AttrEncryptionAlgorithm, AttributeValue: uint16(s.Encryption)}},
		{Short: &DataAttributeShort{AttributeType: AttrHashAlgorithm, AttributeValue: uint16(s.Hash)}},
		{Short: &DataAttributeShort{AttributeType: AttrAuthenticationMethod, AttributeValue: uint16(s.Auth)}},
		{Short: &DataAttributeShort{AttributeType: AttrGroupDescription, AttributeValue: uint16(s.Group)}},
		{Short: &DataAttributeShort{AttributeType: AttrLifeType, AttributeValue: uint16(LifeSeconds)}},
	}

	duration := make([]byte, 4)
	binary.BigEndian.PutUint32(duration, defaultLifeDurationSeconds)
	attrs = append(attrs, DataAttribute{Long: &DataAttributeLong{AttributeType: AttrLifeDuration, AttributeValue: duration}})

	if s.KeyLength != 0 {
		attrs = append(attrs, DataAttribute{Short: &DataAttributeShort{AttributeType: AttrKeyLength, AttributeValue: s.KeyLength}})
	}
	return attrs
}

// padToWord returns the number of zero bytes needed to round n up to the
// next multiple of 4. GenerateMainMode uses it on the total message length.
// The formula is exact (rather than the "add the remainder" shortcut, which
// pads n%4 bytes and can leave the length unaligned).
func padToWord(n int) int {
	return (4 - n%4) % 4
}

// GenerateMainMode builds one ISAKMP Main Mode, first-message-style packet
// proposing a single SA with one proposal containing len(specs) transforms,
// one per candidate combination. initiatorCookie is the caller's random
// correlation key; the responder cookie is left zero since none has been
// assigned yet.
func GenerateMainMode(initiatorCookie uint64, messageID uint32, specs []TransformSpec) []byte {
	transforms := make([]Transform, len(specs))
	for i, spec := range specs {
		attrs := spec.attributes()
		attrLen := 0
		for _, a := range attrs {
			attrLen += len(a.Encode())
		}
		next := PayloadTransform
		if i == len(specs)-1 {
			next = PayloadNone
		}
		transforms[i] = Transform{
			NextPayload:  next,
			Length:       uint16(staticTransformSize + attrLen),
			TransformNo:  uint8(i),
			TransformID:  TransformKeyIKE,
			SAAttributes: attrs,
		}
	}

	proposalLen := staticProposalSize
	for _, t := range transforms {
		proposalLen += int(t.Length)
	}
	proposal := Proposal{
		NextPayload:    PayloadNone,
		Length:         uint16(proposalLen),
		ProposalNo:     1,
		ProtocolID:     ProtoISAKMP,
		SPISize:        0,
		NoOfTransforms: uint8(len(transforms)),
		Transforms:     transforms,
	}

	sa := SecurityAssociation{
		NextPayload: PayloadNone,
		Length:      uint16(staticSASize + proposalLen),
		DOI:         DOIIPSec,
		Situation:   1, // SIT_IDENTITY_ONLY
		Proposals:   []Proposal{proposal},
	}

	unpadded := int(HeaderSize) + int(sa.Length)
	padding := padToWord(unpadded)

	header := Header{
		InitiatorCookie: initiatorCookie,
		ResponderCookie: 0,
		NextPayload:     PayloadSecurityAssociation,
		MajorVersion:    1,
		MinorVersion:    0,
		ExchangeMode:    ExchangeIdentityProtection,
		Flags:           0,
		MessageID:       messageID,
		Length:          uint32(unpadded + padding),
	}

	pkt := Packet{Header: header, Payloads: []Payload{sa}}
	buf := pkt.Encode()
	if padding > 0 {
		buf = append(buf, make([]byte, padding)...)
	}
	return buf
}
