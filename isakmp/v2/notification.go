package v2

import "encoding/binary"

// notificationHeaderSize is the fixed portion of a v2 Notify payload body
// (excluding the generic payload header): protocol id, SPI size, message
// type.
const notificationHeaderSize = 4

// Notification is a parsed v2 Notify payload. MessageType is nil when the
// raw type is not one of the error codes this scanner recognizes; RawType
// always carries the wire value so callers can still match on codes this
// package does not recognize.
type Notification struct {
	Protocol    SecurityProtocol
	SPISize     uint8
	RawType     uint16
	MessageType *NotifyErrorMessage
	SPI         []byte
	Data        []byte
}

// ParseNotification parses a Notify payload body of the given total length
// (as declared by its generic payload header).
func ParseNotification(buf []byte, length int) (Notification, error) {
	if len(buf) < notificationHeaderSize {
		return Notification{}, ErrBufferTooSmall
	}
	protocol, err := ParseSecurityProtocol(buf[0])
	if err != nil {
		// Protocol ID 0 is legal in a notification (means "not SA-specific").
		if buf[0] != 0 {
			return Notification{}, err
		}
		protocol = 0
	}
	spiSize := buf[1]
	rawType := binary.BigEndian.Uint16(buf[2:4])

	spiEnd := notificationHeaderSize + int(spiSize)
	if spiEnd > length || length > len(buf) {
		return Notification{}, ErrBufferTooSmall
	}

	n := Notification{
		Protocol: protocol,
		SPISize:  spiSize,
		RawType:  rawType,
		SPI:      append([]byte(nil), buf[notificationHeaderSize:spiEnd]...),
		Data:     append([]byte(nil), buf[spiEnd:length]...),
	}
	if mt, err := ParseNotifyErrorMessage(rawType); err == nil {
		n.MessageType = &mt
	}
	return n, nil
}

func (n Notification) Encode() []byte {
	buf := make([]byte, notificationHeaderSize)
	buf[0] = uint8(n.Protocol)
	buf[1] = uint8(len(n.SPI))
	binary.BigEndian.PutUint16(buf[2:4], n.RawType)
	buf = append(buf, n.SPI...)
	buf = append(buf, n.Data...)
	return buf
}
