package v2

import "testing"

func TestNotificationRoundTripKnownType(t *testing.T) {
	n := Notification{
		Protocol: ProtoInternetKeyExchange,
		RawType:  uint16(NotifyNoProposalChosen),
		SPI:      []byte{1, 2, 3, 4},
		Data:     nil,
	}
	encoded := n.Encode()
	decoded, err := ParseNotification(encoded, len(encoded))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.MessageType == nil || *decoded.MessageType != NotifyNoProposalChosen {
		t.Fatalf("message type = %v, want NotifyNoProposalChosen", decoded.MessageType)
	}
	if len(decoded.SPI) != 4 {
		t.Fatalf("spi = %v", decoded.SPI)
	}
}

func TestNotificationUnrecognizedTypeLeavesMessageTypeNil(t *testing.T) {
	n := Notification{
		Protocol: ProtoInternetKeyExchange,
		RawType:  9999,
	}
	encoded := n.Encode()
	decoded, err := ParseNotification(encoded, len(encoded))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.MessageType != nil {
		t.Fatalf("message type = %v, want nil", decoded.MessageType)
	}
	if decoded.RawType != 9999 {
		t.Fatalf("raw type = %d, want 9999", decoded.RawType)
	}
}

func TestNotificationProtocolZeroIsLegal(t *testing.T) {
	n := Notification{Protocol: 0, RawType: uint16(NotifyInvalidSyntax)}
	encoded := n.Encode()
	decoded, err := ParseNotification(encoded, len(encoded))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Protocol != 0 {
		t.Fatalf("protocol = %v, want 0", decoded.Protocol)
	}
}
