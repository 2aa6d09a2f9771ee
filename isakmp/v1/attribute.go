package v1

import "encoding/binary"

// DataAttribute is a Phase-1 SA attribute. Exactly one of Short or Long is
// non-nil, discriminated on the wire by the MSB of the first attribute-type
// byte: a single leading tag bit selects the shape of everything that
// follows.
type DataAttribute struct {
	Short *DataAttributeShort
	Long  *DataAttributeLong
}

type DataAttributeShort struct {
	AttributeType  AttributeType
	AttributeValue uint16
}

type DataAttributeLong struct {
	AttributeType  AttributeType
	AttributeValue []byte
}

// ParseDataAttribute parses one attribute from the front of buf and returns
// the number of bytes it consumed.
func ParseDataAttribute(buf []byte) (DataAttribute, int, error) {
	if len(buf) < 1 {
		return DataAttribute{}, 0, ErrBufferTooSmall
	}

	if buf[0]&0x80 == 0 {
		// Long form: type (MSB=0), length, value.
		if len(buf) < 4 {
			return DataAttribute{}, 0, ErrBufferTooSmall
		}
		rawType := binary.BigEndian.Uint16(buf[0:2])
		length := binary.BigEndian.Uint16(buf[2:4])
		attrType, err := ParseAttributeType(rawType)
		if err != nil {
			return DataAttribute{}, 0, err
		}
		end := 4 + int(length)
		if len(buf) < end {
			return DataAttribute{}, 0, ErrBufferTooSmall
		}
		value := append([]byte(nil), buf[4:end]...)
		return DataAttribute{Long: &DataAttributeLong{AttributeType: attrType, AttributeValue: value}}, end, nil
	}

	// Short form: type with MSB=1 (stripped before lookup), 16-bit value.
	if len(buf) < 4 {
		return DataAttribute{}, 0, ErrBufferTooSmall
	}
	rawType := binary.BigEndian.Uint16(buf[0:2]) &^ 0x8000
	value := binary.BigEndian.Uint16(buf[2:4])
	attrType, err := ParseAttributeType(rawType)
	if err != nil {
		return DataAttribute{}, 0, err
	}
	return DataAttribute{Short: &DataAttributeShort{AttributeType: attrType, AttributeValue: value}}, 4, nil
}

// Encode serializes the attribute back to its wire form.
func (a DataAttribute) Encode() []byte {
	if a.Short != nil {
		buf := make([]byte, 4)
		binary.BigEndian.PutUint16(buf[0:2], uint16(a.Short.AttributeType)|0x8000)
		binary.BigEndian.PutUint16(buf[2:4], a.Short.AttributeValue)
		return buf
	}
	buf := make([]byte, 4+len(a.Long.AttributeValue))
	binary.BigEndian.PutUint16(buf[0:2], uint16(a.Long.AttributeType)&^0x8000)
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(a.Long.AttributeValue)))
	copy(buf[4:], a.Long.AttributeValue)
	return buf
}

// EncodeShortAttribute is a convenience for the generator, which only ever
// emits short-form attributes.
func EncodeShortAttribute(t AttributeType, value uint16) []byte {
	a := DataAttribute{Short: &DataAttributeShort{AttributeType: t, AttributeValue: value}}
	return a.Encode()
}
