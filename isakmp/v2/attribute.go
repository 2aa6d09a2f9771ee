package v2

import "encoding/binary"

// attributeHeaderSize is the size of a fixed-length (TV) attribute: a
// 16-bit type (with FlagAttributeFormat set) and a 16-bit value. This
// scanner only ever emits and parses the TV form, since KeyLength is the
// only attribute it needs; the TLV form exists for SignatureAlgorithm,
// which it never negotiates.
const attributeHeaderSize = 4

// Attribute is a fixed-length transform attribute, e.g. a KeyLength
// qualifying a variable-key encryption transform.
type Attribute struct {
	Type  AttributeType
	Value uint16
}

// ParseAttribute parses a fixed-length attribute from the front of buf. A
// nil return means no fixed-length attribute was found: buf was empty or
// starts with a TLV-form attribute.
func ParseAttribute(buf []byte) (*Attribute, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if len(buf) < attributeHeaderSize {
		return nil, ErrBufferTooSmall
	}
	rawType := binary.BigEndian.Uint16(buf[0:2])
	if rawType&FlagAttributeFormat == 0 {
		// TLV-form attribute: not KeyLength, nothing this scanner needs.
		return nil, nil
	}
	attrType, err := ParseAttributeType(rawType &^ FlagAttributeFormat)
	if err != nil {
		return nil, err
	}
	return &Attribute{Type: attrType, Value: binary.BigEndian.Uint16(buf[2:4])}, nil
}

func (a Attribute) Encode() []byte {
	buf := make([]byte, attributeHeaderSize)
	binary.BigEndian.PutUint16(buf[0:2], uint16(a.Type)|FlagAttributeFormat)
	binary.BigEndian.PutUint16(buf[2:4], a.Value)
	return buf
}
