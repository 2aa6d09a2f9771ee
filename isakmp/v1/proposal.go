package v1

// staticProposalSize is the fixed portion of a proposal payload: generic
// header, proposal number, protocol id, SPI size, and transform count.
const staticProposalSize = GenericPayloadHeaderSize + 4

// Proposal is a parsed Phase-1 proposal payload.
type Proposal struct {
	NextPayload    PayloadType
	Length         uint16
	ProposalNo     uint8
	ProtocolID     ProtocolID
	SPISize        uint8
	NoOfTransforms uint8
	SPI            []byte
	Transforms     []Transform
}

// ParseProposal parses one proposal payload, walking its transform list
// until the declared length is exhausted, and enforces that the parsed
// transform count equals the declared NoOfTransforms (§3 invariant).
func ParseProposal(buf []byte) (Proposal, error) {
	if len(buf) < staticProposalSize {
		return Proposal{}, ErrBufferTooSmall
	}
	gph, err := ParseGenericPayloadHeader(buf)
	if err != nil {
		return Proposal{}, err
	}

	p := Proposal{
		NextPayload:    gph.NextPayload,
		Length:         gph.PayloadLength,
		ProposalNo:     buf[4],
		ProtocolID:     ProtocolID(buf[5]),
		SPISize:        buf[6],
		NoOfTransforms: buf[7],
	}

	spiEnd := staticProposalSize + int(p.SPISize)
	if len(buf) < spiEnd {
		return Proposal{}, ErrBufferTooSmall
	}
	p.SPI = append([]byte(nil), buf[staticProposalSize:spiEnd]...)

	if int(p.Length) > len(buf) {
		return Proposal{}, ErrBufferTooSmall
	}
	remaining := buf[spiEnd:p.Length]
	offset := 0
	for offset < len(remaining) {
		t, err := ParseTransform(remaining[offset:])
		if err != nil {
			return Proposal{}, err
		}
		p.Transforms = append(p.Transforms, t)
		offset += int(t.Length)
	}

	if len(p.Transforms) != int(p.NoOfTransforms) {
		return Proposal{}, ErrUnexpectedPayload
	}

	return p, nil
}

func (p Proposal) Encode() []byte {
	buf := make([]byte, staticProposalSize)
	gph := GenericPayloadHeader{NextPayload: p.NextPayload, PayloadLength: p.Length}
	copy(buf[0:4], gph.Encode())
	buf[4] = p.ProposalNo
	buf[5] = uint8(p.ProtocolID)
	buf[6] = p.SPISize
	buf[7] = p.NoOfTransforms
	buf = append(buf, p.SPI...)
	for _, t := range p.Transforms {
		buf = append(buf, t.Encode()...)
	}
	return buf
}
