package v2

// Opaque is a payload this scanner recognizes by type but does not need to
// interpret beyond its raw body: KeyExchange, Nonce, VendorID, Delete, and
// EncryptedAndAuthenticated all carry data this scanner never decrypts or
// inspects during Phase 1 transform probing.
type Opaque struct {
	Kind PayloadType
	Data []byte
}

// Payload is implemented by every payload type the v2 packet walker
// dispatches.
type Payload interface {
	Type() PayloadType
}

func (sa SecurityAssociation) Type() PayloadType { return PayloadSecurityAssociation }
func (n Notification) Type() PayloadType         { return PayloadNotify }
func (o Opaque) Type() PayloadType                { return o.Kind }

// Packet is a fully parsed IKEv2 message.
type Packet struct {
	Header   Header
	Payloads []Payload
}

// ParsePacket parses an IKEv2 header followed by its payload chain. The
// EncryptedAndAuthenticated payload, when present, ends the walk: the
// next-payload value it declares and any bytes following it are ignored,
// per RFC 7296's framing of encrypted payloads as a terminal wrapper.
func ParsePacket(buf []byte) (Packet, error) {
	header, err := ParseHeader(buf)
	if err != nil {
		return Packet{}, err
	}

	pkt := Packet{Header: header}
	cursor := header.NextPayload
	offset := HeaderSize
	sawEncrypted := false

	for cursor != PayloadNoNextPayload {
		if sawEncrypted {
			break
		}
		if offset >= len(buf) {
			return Packet{}, ErrBufferTooSmall
		}

		gph, err := ParseGenericPayloadHeader(buf[offset:])
		if err != nil {
			return Packet{}, err
		}
		bodyStart := offset + GenericPayloadHeaderSize
		bodyEnd := offset + int(gph.PayloadLength)
		if bodyEnd > len(buf) || bodyEnd < bodyStart {
			return Packet{}, ErrBufferTooSmall
		}
		body := buf[bodyStart:bodyEnd]

		var payload Payload
		switch cursor {
		case PayloadSecurityAssociation:
			sa, err := ParseSecurityAssociation(body)
			if err != nil {
				return Packet{}, err
			}
			payload = sa
		case PayloadNotify:
			n, err := ParseNotification(body, len(body))
			if err != nil {
				return Packet{}, err
			}
			payload = n
		case PayloadKeyExchange, PayloadNonce, PayloadVendorID, PayloadDelete:
			payload = Opaque{Kind: cursor, Data: append([]byte(nil), body...)}
		case PayloadEncryptedAndAuthenticated:
			payload = Opaque{Kind: cursor, Data: append([]byte(nil), body...)}
			sawEncrypted = true
		default:
			return Packet{}, ErrUnexpectedPayload
		}

		pkt.Payloads = append(pkt.Payloads, payload)
		cursor = gph.NextPayload
		offset = bodyEnd
	}

	return pkt, nil
}

func (pkt Packet) Encode() []byte {
	buf := pkt.Header.Encode()
	for i, p := range pkt.Payloads {
		next := PayloadNoNextPayload
		if i != len(pkt.Payloads)-1 {
			next = pkt.Payloads[i+1].Type()
		}

		var body []byte
		switch v := p.(type) {
		case SecurityAssociation:
			body = v.Encode()
		case Notification:
			body = v.Encode()
		case Opaque:
			body = v.Data
		}

		gph := GenericPayloadHeader{NextPayload: next, PayloadLength: uint16(GenericPayloadHeaderSize + len(body))}
		buf = append(buf, gph.Encode()...)
		buf = append(buf, body...)
	}
	return buf
}
