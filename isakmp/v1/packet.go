package v1

// Payload is implemented by every payload type this package parses. It
// mirrors the tagged-union dispatch the generic payload header already
// performs on the wire: the concrete Go type IS the tag.
type Payload interface {
	Encode() []byte
	Type() PayloadType
}

func (p Proposal) Type() PayloadType            { return PayloadProposal }
func (sa SecurityAssociation) Type() PayloadType { return PayloadSecurityAssociation }
func (n Notification) Type() PayloadType         { return PayloadNotification }
func (v VendorID) Type() PayloadType             { return PayloadVendorID }
func (t Transform) Type() PayloadType            { return PayloadTransform }

// Packet is a fully parsed ISAKMP message: its header plus the chain of
// payloads reachable by following each payload's NextPayload field.
type Packet struct {
	Header   Header
	Payloads []Payload
}

// ParsePacket parses an ISAKMP header followed by its payload chain. Only
// the payload types this scanner exchanges during Phase 1 negotiation are
// dispatched; any other next-payload value is surfaced as
// ErrUnexpectedPayload rather than silently skipped, since a scanner that
// can't interpret a payload can't safely continue walking the chain.
func ParsePacket(buf []byte) (Packet, error) {
	header, err := ParseHeader(buf)
	if err != nil {
		return Packet{}, err
	}

	pkt := Packet{Header: header}
	cursor := header.NextPayload
	offset := HeaderSize

	for cursor != PayloadNone {
		if offset >= len(buf) {
			return Packet{}, ErrBufferTooSmall
		}
		body := buf[offset:]

		var payload Payload
		var next PayloadType
		var size int

		switch cursor {
		case PayloadSecurityAssociation:
			sa, err := ParseSecurityAssociation(body)
			if err != nil {
				return Packet{}, err
			}
			payload, next, size = sa, sa.NextPayload, int(sa.Length)
		case PayloadProposal:
			p, err := ParseProposal(body)
			if err != nil {
				return Packet{}, err
			}
			payload, next, size = p, p.NextPayload, int(p.Length)
		case PayloadNotification:
			n, err := ParseNotification(body)
			if err != nil {
				return Packet{}, err
			}
			payload, next, size = n, n.NextPayload, int(n.Length)
		case PayloadVendorID:
			v, err := ParseVendorID(body)
			if err != nil {
				return Packet{}, err
			}
			payload, next, size = v, v.NextPayload, int(v.Length)
		default:
			return Packet{}, ErrUnexpectedPayload
		}

		pkt.Payloads = append(pkt.Payloads, payload)
		cursor = next
		offset += size
	}

	return pkt, nil
}

func (pkt Packet) Encode() []byte {
	buf := pkt.Header.Encode()
	for _, p := range pkt.Payloads {
		buf = append(buf, p.Encode()...)
	}
	return buf
}
