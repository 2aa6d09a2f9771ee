package v2

import "encoding/binary"

// HeaderSize is the fixed, on-wire size of the IKEv2 header (RFC 7296
// §3.1): identical layout to the v1 header, but the flag byte's bits and
// the version sentinel carry v2-specific meaning.
const HeaderSize = 28

// VersionValue is the major/minor version byte ParseHeader requires for
// IKEv2: major 2, minor 0. Any other value is ErrUnexpectedPayload.
const VersionValue uint8 = 0x20

// Header is the parsed, network-endian IKEv2 header.
type Header struct {
	InitiatorCookie uint64
	ResponderCookie uint64
	NextPayload     PayloadType
	MajorVersion    uint8
	MinorVersion    uint8
	ExchangeType    ExchangeType
	Flags           uint8
	MessageID       uint32
	Length          uint32
}

// Initiator reports whether the flag byte marks the sender as the exchange
// initiator.
func (h Header) Initiator() bool { return h.Flags&FlagInitiator != 0 }

// Response reports whether the flag byte marks this message as a response.
func (h Header) Response() bool { return h.Flags&FlagResponse != 0 }

func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrBufferTooSmall
	}
	nextPayload, err := ParsePayloadType(buf[16])
	if err != nil {
		return Header{}, err
	}
	versionByte := buf[17]
	if versionByte != VersionValue {
		return Header{}, ErrUnexpectedPayload
	}
	exchangeType, err := ParseExchangeType(buf[18])
	if err != nil {
		return Header{}, err
	}

	return Header{
		InitiatorCookie: binary.BigEndian.Uint64(buf[0:8]),
		ResponderCookie: binary.BigEndian.Uint64(buf[8:16]),
		NextPayload:     nextPayload,
		MajorVersion:    versionByte >> 4,
		MinorVersion:    versionByte & 0x0F,
		ExchangeType:    exchangeType,
		Flags:           buf[19],
		MessageID:       binary.BigEndian.Uint32(buf[20:24]),
		Length:          binary.BigEndian.Uint32(buf[24:28]),
	}, nil
}

func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint64(buf[0:8], h.InitiatorCookie)
	binary.BigEndian.PutUint64(buf[8:16], h.ResponderCookie)
	buf[16] = uint8(h.NextPayload)
	buf[17] = (h.MajorVersion << 4) | (h.MinorVersion & 0x0F)
	buf[18] = uint8(h.ExchangeType)
	buf[19] = h.Flags
	binary.BigEndian.PutUint32(buf[20:24], h.MessageID)
	binary.BigEndian.PutUint32(buf[24:28], h.Length)
	return buf
}

// GenericPayloadHeaderSize is the fixed size of the 4-byte prefix common to
// every IKEv2 payload: next-payload, critical/reserved flags, length.
const GenericPayloadHeaderSize = 4

type GenericPayloadHeader struct {
	NextPayload   PayloadType
	Critical      bool
	PayloadLength uint16
}

func ParseGenericPayloadHeader(buf []byte) (GenericPayloadHeader, error) {
	if len(buf) < GenericPayloadHeaderSize {
		return GenericPayloadHeader{}, ErrBufferTooSmall
	}
	nextPayload, err := ParsePayloadType(buf[0])
	if err != nil {
		return GenericPayloadHeader{}, err
	}
	return GenericPayloadHeader{
		NextPayload:   nextPayload,
		Critical:      buf[1]&FlagCritical != 0,
		PayloadLength: binary.BigEndian.Uint16(buf[2:4]),
	}, nil
}

func (g GenericPayloadHeader) Encode() []byte {
	buf := make([]byte, GenericPayloadHeaderSize)
	buf[0] = uint8(g.NextPayload)
	if g.Critical {
		buf[1] = uint8(FlagCritical)
	}
	binary.BigEndian.PutUint16(buf[2:4], g.PayloadLength)
	return buf
}
