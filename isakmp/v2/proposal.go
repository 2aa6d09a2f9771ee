package v2

import "encoding/binary"

// proposalHeaderSize is the fixed portion of a v2 Proposal substructure:
// last-substruct flag, reserved byte, length, proposal number, protocol id,
// SPI size, transform count.
const proposalHeaderSize = 8

// Proposal is one parsed v2 Proposal substructure: a security protocol, an
// SPI, and the transform lists that protocol negotiates.
type Proposal struct {
	More       bool
	Length     uint16
	ProposalNo uint8
	Protocol   SecurityProtocol
	SPI        []byte

	EncryptionAlgorithms []EncryptionTransform
	PRFs                 []PseudorandomFunction
	IntegrityAlgorithms  []IntegrityAlgorithm
	KeyExchangeMethods   []KeyExchangeMethod
	SequenceNumbers      []SequenceNumberType
}

// ParseProposal parses one Proposal substructure from the front of buf,
// walking its transform chain until a transform's LastSubstruct flag
// indicates no more follow.
func ParseProposal(buf []byte) (Proposal, error) {
	if len(buf) < proposalHeaderSize {
		return Proposal{}, ErrBufferTooSmall
	}
	length := binary.BigEndian.Uint16(buf[2:4])
	spiSize := buf[6]
	numTransforms := buf[7]
	protocol, err := ParseSecurityProtocol(buf[5])
	if err != nil {
		return Proposal{}, err
	}

	spiEnd := proposalHeaderSize + int(spiSize)
	if int(length) > len(buf) || spiEnd > int(length) {
		return Proposal{}, ErrBufferTooSmall
	}

	p := Proposal{
		More:       buf[0] == FlagMoreFollowingProposals,
		Length:     length,
		ProposalNo: buf[4],
		Protocol:   protocol,
		SPI:        append([]byte(nil), buf[proposalHeaderSize:spiEnd]...),
	}

	body := buf[spiEnd:length]
	offset := 0
	count := 0
	for offset < len(body) {
		t, err := ParseTransform(body[offset:])
		if err != nil {
			return Proposal{}, err
		}
		switch {
		case t.Encryption != nil:
			p.EncryptionAlgorithms = append(p.EncryptionAlgorithms, *t.Encryption)
		case t.PRF != nil:
			p.PRFs = append(p.PRFs, *t.PRF)
		case t.Integrity != nil:
			p.IntegrityAlgorithms = append(p.IntegrityAlgorithms, *t.Integrity)
		case t.KeyExchange != nil:
			p.KeyExchangeMethods = append(p.KeyExchangeMethods, *t.KeyExchange)
		case t.SequenceNumber != nil:
			p.SequenceNumbers = append(p.SequenceNumbers, *t.SequenceNumber)
		}
		offset += int(t.Length)
		count++
		if !t.More {
			break
		}
	}
	_ = numTransforms // advisory only; the transform chain's own terminator is authoritative

	if err := p.validateMandatoryTransforms(); err != nil {
		return Proposal{}, err
	}

	return p, nil
}

// validateMandatoryTransforms enforces the transform lists each security
// protocol must carry a non-empty instance of.
func (p Proposal) validateMandatoryTransforms() error {
	switch p.Protocol {
	case ProtoInternetKeyExchange:
		if len(p.EncryptionAlgorithms) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "encryption"}
		}
		if len(p.PRFs) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "PRF"}
		}
		if len(p.KeyExchangeMethods) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "key exchange"}
		}
	case ProtoAuthenticationHeader:
		if len(p.EncryptionAlgorithms) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "encryption"}
		}
		if len(p.SequenceNumbers) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "sequence number"}
		}
	case ProtoEncapsulatingSecurityPayload:
		if len(p.IntegrityAlgorithms) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "integrity"}
		}
		if len(p.SequenceNumbers) == 0 {
			return &MissingMandatoryTransformError{Protocol: p.Protocol, Missing: "sequence number"}
		}
	}
	return nil
}

func (p Proposal) Encode() []byte {
	var transforms []Transform
	appendWithMore := func(t Transform) {
		if len(transforms) > 0 {
			transforms[len(transforms)-1].More = true
		}
		transforms = append(transforms, t)
	}
	for _, e := range p.EncryptionAlgorithms {
		enc := e
		appendWithMore(Transform{Kind: TransformTypeEncryptionAlgorithm, Encryption: &enc})
	}
	for _, prf := range p.PRFs {
		v := prf
		appendWithMore(Transform{Kind: TransformTypePseudoRandomFunction, PRF: &v})
	}
	for _, in := range p.IntegrityAlgorithms {
		v := in
		appendWithMore(Transform{Kind: TransformTypeIntegrityAlgorithm, Integrity: &v})
	}
	for _, ke := range p.KeyExchangeMethods {
		v := ke
		appendWithMore(Transform{Kind: TransformTypeKeyExchangeMethod, KeyExchange: &v})
	}
	for _, sn := range p.SequenceNumbers {
		v := sn
		appendWithMore(Transform{Kind: TransformTypeSequenceNumber, SequenceNumber: &v})
	}

	for i := range transforms {
		attrLen := 0
		if transforms[i].Encryption != nil && transforms[i].Encryption.KeyLength != 0 {
			attrLen = attributeHeaderSize
		}
		transforms[i].Length = uint16(transformHeaderSize + attrLen)
	}

	buf := make([]byte, proposalHeaderSize)
	if p.More {
		buf[0] = FlagMoreFollowingProposals
	}
	buf[4] = p.ProposalNo
	buf[5] = uint8(p.Protocol)
	buf[6] = uint8(len(p.SPI))
	buf[7] = uint8(len(transforms))
	buf = append(buf, p.SPI...)
	for _, t := range transforms {
		buf = append(buf, t.Encode()...)
	}
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(buf)))
	return buf
}
