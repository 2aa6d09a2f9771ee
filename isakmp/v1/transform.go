package v1

import "encoding/binary"

// staticTransformSize is the fixed portion of a transform payload: the
// generic header, transform number, transform id, and two reserved bytes.
const staticTransformSize = GenericPayloadHeaderSize + 4

// Transform is a parsed Phase-1 transform payload.
type Transform struct {
	NextPayload  PayloadType
	Length       uint16
	TransformNo  uint8
	TransformID  TransformID
	SAAttributes []DataAttribute
}

// ParseTransform parses one transform payload from the front of buf,
// walking its attribute list until the declared payload length is
// exhausted (§4.3 "Proposal -> transform -> attribute recursion").
func ParseTransform(buf []byte) (Transform, error) {
	if len(buf) < staticTransformSize {
		return Transform{}, ErrBufferTooSmall
	}
	gph, err := ParseGenericPayloadHeader(buf)
	if err != nil {
		return Transform{}, err
	}
	if buf[6] != 0 || buf[7] != 0 {
		return Transform{}, ErrUnexpectedPayload
	}

	t := Transform{
		NextPayload: gph.NextPayload,
		Length:      gph.PayloadLength,
		TransformNo: buf[4],
		TransformID: TransformID(buf[5]),
	}

	if int(t.Length) > len(buf) {
		return Transform{}, ErrBufferTooSmall
	}
	remaining := buf[staticTransformSize:t.Length]
	offset := 0
	for offset < len(remaining) {
		attr, n, err := ParseDataAttribute(remaining[offset:])
		if err != nil {
			return Transform{}, err
		}
		t.SAAttributes = append(t.SAAttributes, attr)
		offset += n
	}
	return t, nil
}

// Encode serializes the transform, including its attribute list, to wire
// bytes. The caller is responsible for setting Length before calling Encode
// (the generator computes it as it builds each transform).
func (t Transform) Encode() []byte {
	buf := make([]byte, staticTransformSize)
	gph := GenericPayloadHeader{NextPayload: t.NextPayload, PayloadLength: t.Length}
	copy(buf[0:4], gph.Encode())
	buf[4] = t.TransformNo
	buf[5] = uint8(t.TransformID)
	binary.BigEndian.PutUint16(buf[6:8], 0)
	for _, attr := range t.SAAttributes {
		buf = append(buf, attr.Encode()...)
	}
	return buf
}
