package v2

import "encoding/binary"

// transformHeaderSize is the fixed portion of a v2 Transform: last-substruct
// flag, reserved byte, length, transform type, reserved byte, transform id.
const transformHeaderSize = 8

// EncryptionTransform pairs an encryption algorithm with its optional key
// length, the only attribute this scanner's transforms ever carry.
type EncryptionTransform struct {
	Algorithm EncryptionAlgorithm
	KeyLength uint16 // 0 means no KeyLength attribute was present
}

// Transform is one parsed v2 Transform substructure. At most one of the
// typed fields is populated, selected by Kind (none for the transform types
// ParseTransform does not dispatch), mirroring the way the
// reference parser dispatches transform_id interpretation on transform_type.
type Transform struct {
	More   bool
	Length uint16
	Kind   TransformType

	Encryption     *EncryptionTransform
	PRF            *PseudorandomFunction
	Integrity      *IntegrityAlgorithm
	KeyExchange    *KeyExchangeMethod
	SequenceNumber *SequenceNumberType
}

// ParseTransform parses one Transform substructure from the front of buf.
func ParseTransform(buf []byte) (Transform, error) {
	if len(buf) < transformHeaderSize {
		return Transform{}, ErrBufferTooSmall
	}
	length := binary.BigEndian.Uint16(buf[2:4])
	if int(length) > len(buf) || int(length) < transformHeaderSize {
		return Transform{}, ErrBufferTooSmall
	}
	kind, err := ParseTransformType(buf[4])
	if err != nil {
		return Transform{}, err
	}
	rawID := binary.BigEndian.Uint16(buf[6:8])

	t := Transform{
		More:   buf[0] == FlagMoreFollowingTransforms,
		Length: length,
		Kind:   kind,
	}

	switch kind {
	case TransformTypeEncryptionAlgorithm:
		alg, err := ParseEncryptionAlgorithm(rawID)
		if err != nil {
			return Transform{}, err
		}
		enc := EncryptionTransform{Algorithm: alg}
		attr, err := ParseAttribute(buf[transformHeaderSize:length])
		if err != nil {
			return Transform{}, err
		}
		if attr != nil && attr.Type == AttrKeyLength {
			enc.KeyLength = attr.Value
		}
		t.Encryption = &enc
	case TransformTypePseudoRandomFunction:
		prf, err := ParsePseudorandomFunction(rawID)
		if err != nil {
			return Transform{}, err
		}
		t.PRF = &prf
	case TransformTypeIntegrityAlgorithm:
		integ, err := ParseIntegrityAlgorithm(rawID)
		if err != nil {
			return Transform{}, err
		}
		t.Integrity = &integ
	case TransformTypeKeyExchangeMethod:
		ke, err := ParseKeyExchangeMethod(rawID)
		if err != nil {
			return Transform{}, err
		}
		t.KeyExchange = &ke
	case TransformTypeSequenceNumber:
		sn, err := ParseSequenceNumberType(rawID)
		if err != nil {
			return Transform{}, err
		}
		t.SequenceNumber = &sn
	default:
		// Additional key exchange and key-wrap transform types are
		// recognized but not dispatched; this scanner never proposes them.
	}

	return t, nil
}

func (t Transform) Encode() []byte {
	buf := make([]byte, transformHeaderSize)
	if t.More {
		buf[0] = FlagMoreFollowingTransforms
	}
	binary.BigEndian.PutUint16(buf[2:4], t.Length)
	buf[4] = uint8(t.Kind)

	var rawID uint16
	switch {
	case t.Encryption != nil:
		rawID = uint16(t.Encryption.Algorithm)
	case t.PRF != nil:
		rawID = uint16(*t.PRF)
	case t.Integrity != nil:
		rawID = uint16(*t.Integrity)
	case t.KeyExchange != nil:
		rawID = uint16(*t.KeyExchange)
	case t.SequenceNumber != nil:
		rawID = uint16(*t.SequenceNumber)
	}
	binary.BigEndian.PutUint16(buf[6:8], rawID)

	if t.Encryption != nil && t.Encryption.KeyLength != 0 {
		attr := Attribute{Type: AttrKeyLength, Value: t.Encryption.KeyLength}
		buf = append(buf, attr.Encode()...)
	}
	return buf
}
