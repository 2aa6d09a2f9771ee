package v1

import "encoding/binary"

// staticSASize is the fixed portion of a security-association payload: the
// generic header plus the 32-bit DOI and the 32-bit situation.
const staticSASize = GenericPayloadHeaderSize + 8

// SecurityAssociation is the top-level Phase-1 SA payload: a DOI, a
// situation (always IPsec's "SIT_IDENTITY_ONLY" bit for this scanner), and
// one or more proposals.
type SecurityAssociation struct {
	NextPayload PayloadType
	Length      uint16
	DOI         DomainOfInterpretation
	Situation   uint32
	Proposals   []Proposal
}

// ParseSecurityAssociation parses the SA payload and every proposal nested
// beneath it.
func ParseSecurityAssociation(buf []byte) (SecurityAssociation, error) {
	if len(buf) < staticSASize {
		return SecurityAssociation{}, ErrBufferTooSmall
	}
	gph, err := ParseGenericPayloadHeader(buf)
	if err != nil {
		return SecurityAssociation{}, err
	}
	rawDOI := binary.BigEndian.Uint32(buf[4:8])
	doi, err := ParseDomainOfInterpretation(rawDOI)
	if err != nil {
		return SecurityAssociation{}, err
	}

	sa := SecurityAssociation{
		NextPayload: gph.NextPayload,
		Length:      gph.PayloadLength,
		DOI:         doi,
		Situation:   binary.BigEndian.Uint32(buf[8:12]),
	}

	if int(sa.Length) > len(buf) {
		return SecurityAssociation{}, ErrBufferTooSmall
	}
	remaining := buf[staticSASize:sa.Length]
	offset := 0
	for offset < len(remaining) {
		p, err := ParseProposal(remaining[offset:])
		if err != nil {
			return SecurityAssociation{}, err
		}
		sa.Proposals = append(sa.Proposals, p)
		offset += int(p.Length)
	}
	return sa, nil
}

func (sa SecurityAssociation) Encode() []byte {
	buf := make([]byte, staticSASize)
	gph := GenericPayloadHeader{NextPayload: sa.NextPayload, PayloadLength: sa.Length}
	copy(buf[0:4], gph.Encode())
	binary.BigEndian.PutUint32(buf[4:8], uint32(sa.DOI))
	binary.BigEndian.PutUint32(buf[8:12], sa.Situation)
	for _, p := range sa.Proposals {
		buf = append(buf, p.Encode()...)
	}
	return buf
}
