package v1

import "encoding/binary"

// HeaderSize is the fixed, on-wire size of the ISAKMP header (RFC 2408
// §3.1): two 64-bit cookies, four tag/flag bytes, a 32-bit message ID and a
// 32-bit length.
const HeaderSize = 28

// Header is the parsed, network-endian ISAKMP header.
type Header struct {
	InitiatorCookie uint64
	ResponderCookie uint64
	NextPayload     PayloadType
	MajorVersion    uint8
	MinorVersion    uint8
	ExchangeMode    ExchangeType
	Flags           uint8
	MessageID       uint32
	Length          uint32
}

// ParseHeader reads a Header from the front of buf. The minor-version
// extraction intentionally masks with 0x0F rather than shifting, matching
// the more robust of the two forms found in the reference parser.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrBufferTooSmall
	}

	versionByte := buf[17]
	exchangeMode, err := ParseExchangeType(buf[18])
	if err != nil {
		return Header{}, err
	}
	nextPayload, err := ParsePayloadType(buf[16])
	if err != nil {
		return Header{}, err
	}

	h := Header{
		InitiatorCookie: binary.BigEndian.Uint64(buf[0:8]),
		ResponderCookie: binary.BigEndian.Uint64(buf[8:16]),
		NextPayload:     nextPayload,
		MajorVersion:    versionByte >> 4,
		MinorVersion:    versionByte & 0x0F,
		ExchangeMode:    exchangeMode,
		Flags:           buf[19],
		MessageID:       binary.BigEndian.Uint32(buf[20:24]),
		Length:          binary.BigEndian.Uint32(buf[24:28]),
	}
	if h.ExchangeMode == ExchangeNone {
		return Header{}, ErrUnexpectedPayload
	}
	return h, nil
}

// Encode serializes h into a fresh HeaderSize-byte slice.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint64(buf[0:8], h.InitiatorCookie)
	binary.BigEndian.PutUint64(buf[8:16], h.ResponderCookie)
	buf[16] = uint8(h.NextPayload)
	buf[17] = (h.MajorVersion << 4) | (h.MinorVersion & 0x0F)
	buf[18] = uint8(h.ExchangeMode)
	buf[19] = h.Flags
	binary.BigEndian.PutUint32(buf[20:24], h.MessageID)
	binary.BigEndian.PutUint32(buf[24:28], h.Length)
	return buf
}

// GenericPayloadHeaderSize is the fixed size of the 4-byte payload prefix
// that precedes every payload body.
const GenericPayloadHeaderSize = 4

// GenericPayloadHeader is the next-payload/reserved/length prefix common to
// every ISAKMP payload.
type GenericPayloadHeader struct {
	NextPayload   PayloadType
	PayloadLength uint16
}

// ParseGenericPayloadHeader reads the 4-byte generic payload prefix. A
// non-zero reserved byte is a protocol-invariant violation.
func ParseGenericPayloadHeader(buf []byte) (GenericPayloadHeader, error) {
	if len(buf) < GenericPayloadHeaderSize {
		return GenericPayloadHeader{}, ErrBufferTooSmall
	}
	if buf[1] != 0 {
		return GenericPayloadHeader{}, ErrUnexpectedPayload
	}
	nextPayload, err := ParsePayloadType(buf[0])
	if err != nil {
		return GenericPayloadHeader{}, err
	}
	return GenericPayloadHeader{
		NextPayload:   nextPayload,
		PayloadLength: binary.BigEndian.Uint16(buf[2:4]),
	}, nil
}

func (g GenericPayloadHeader) Encode() []byte {
	buf := make([]byte, GenericPayloadHeaderSize)
	buf[0] = uint8(g.NextPayload)
	buf[1] = 0
	binary.BigEndian.PutUint16(buf[2:4], g.PayloadLength)
	return buf
}
