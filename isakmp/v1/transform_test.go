package v1

import "testing"

func buildTransform(transformNo uint8, spec TransformSpec) Transform {
	attrs := spec.attributes()
	attrLen := 0
	for _, a := range attrs {
		attrLen += len(a.Encode())
	}
	return Transform{
		NextPayload:  PayloadNone,
		Length:       uint16(staticTransformSize + attrLen),
		TransformNo:  transformNo,
		TransformID:  TransformKeyIKE,
		SAAttributes: attrs,
	}
}

func TestTransformRoundTrip(t *testing.T) {
	spec := TransformSpec{
		Encryption: EncAESCBC,
		KeyLength:  256,
		Hash:       HashSHA2_256,
		Auth:       AuthPreSharedKey,
		Group:      GroupMODP2048,
	}
	transform := buildTransform(1, spec)
	encoded := transform.Encode()

	decoded, err := ParseTransform(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.TransformNo != 1 || decoded.TransformID != TransformKeyIKE {
		t.Fatalf("decoded transform = %+v", decoded)
	}
	if len(decoded.SAAttributes) != len(spec.attributes()) {
		t.Fatalf("decoded %d attributes, want %d", len(decoded.SAAttributes), len(spec.attributes()))
	}

	var sawKeyLength bool
	for _, a := range decoded.SAAttributes {
		if a.Short != nil && a.Short.AttributeType == AttrKeyLength {
			sawKeyLength = true
			if a.Short.AttributeValue != 256 {
				t.Fatalf("key length = %d, want 256", a.Short.AttributeValue)
			}
		}
	}
	if !sawKeyLength {
		t.Fatal("expected a KeyLength attribute for AES_CBC/256")
	}
}

// TestParseTransformRejectsNonZeroReserved grounds scenario 4: a malformed
// reserved byte in the transform header is reported as UnexpectedPayload.
func TestParseTransformRejectsNonZeroReserved(t *testing.T) {
	spec := TransformSpec{Encryption: EncAESCBC, Hash: HashSHA, Auth: AuthPreSharedKey, Group: GroupMODP1024}
	transform := buildTransform(1, spec)
	encoded := transform.Encode()
	encoded[7] = 1 // corrupt the second reserved byte

	_, err := ParseTransform(encoded)
	if err != ErrUnexpectedPayload {
		t.Fatalf("err = %v, want ErrUnexpectedPayload", err)
	}
}

func TestParseTransformTooSmall(t *testing.T) {
	_, err := ParseTransform(make([]byte, staticTransformSize-1))
	if err != ErrBufferTooSmall {
		t.Fatalf("err = %v, want ErrBufferTooSmall", err)
	}
}
