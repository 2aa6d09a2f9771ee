package v2

import (
	"fmt"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		InitiatorCookie: 0xaabbccddeeff0011,
		ResponderCookie: 0x1122334455667788,
		NextPayload:     PayloadSecurityAssociation,
		MajorVersion:    2,
		MinorVersion:    0,
		ExchangeType:    ExchangeIkeSaInit,
		Flags:           FlagInitiator,
		MessageID:       0,
		Length:          28,
	}
	encoded := h.Encode()
	decoded, err := ParseHeader(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != h {
		t.Fatalf("decoded %+v != original %+v", decoded, h)
	}
	if !decoded.Initiator() {
		t.Fatal("expected Initiator() true")
	}
	if decoded.Response() {
		t.Fatal("expected Response() false")
	}
}

func TestParseExchangeTypeClasses(t *testing.T) {
	cases := []struct {
		raw  uint8
		want string
	}{
		{10, "*v2.ReservedError"},
		{100, "*v2.UnassignedError"},
		{250, "*v2.PrivateUseError"},
	}
	for _, c := range cases {
		_, err := ParseExchangeType(c.raw)
		if err == nil {
			t.Fatalf("raw %d: expected error", c.raw)
		}
		var ee EnumError
		ok := false
		switch err.(type) {
		case *ReservedError, *UnassignedError, *PrivateUseError, *OutOfRangeError:
			ok = true
			ee = err.(EnumError)
		}
		if !ok {
			t.Fatalf("raw %d: err %v is not an EnumError", c.raw, err)
		}
		if ee.Field() != "ExchangeType" {
			t.Fatalf("raw %d: field = %s", c.raw, ee.Field())
		}
		if got := fmt.Sprintf("%T", err); got != c.want {
			t.Fatalf("raw %d: err type = %s, want %s", c.raw, got, c.want)
		}
	}
}

func TestParseAttributeTypeOutOfRange(t *testing.T) {
	_, err := ParseAttributeType(40000)
	if _, ok := err.(*OutOfRangeError); !ok {
		t.Fatalf("err = %v, want *OutOfRangeError", err)
	}
}
