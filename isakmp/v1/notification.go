package v1

import "encoding/binary"

// staticNotificationSize is the fixed portion of a notification payload:
// generic header, DOI, protocol id, SPI size, and notify message type.
const staticNotificationSize = GenericPayloadHeaderSize + 4 + 4

// Notification carries the responder's rejection reason for a proposal,
// most commonly NotifyNoProposalChosen when none of an offered batch's
// transforms were acceptable.
type Notification struct {
	NextPayload  PayloadType
	Length       uint16
	DOI          DomainOfInterpretation
	ProtocolID   ProtocolID
	SPISize      uint8
	MessageType  NotifyMessageType
	SPI          []byte
	NotifyData   []byte
}

func ParseNotification(buf []byte) (Notification, error) {
	if len(buf) < staticNotificationSize {
		return Notification{}, ErrBufferTooSmall
	}
	gph, err := ParseGenericPayloadHeader(buf)
	if err != nil {
		return Notification{}, err
	}
	rawDOI := binary.BigEndian.Uint32(buf[4:8])
	doi, err := ParseDomainOfInterpretation(rawDOI)
	if err != nil {
		return Notification{}, err
	}
	rawMsgType := binary.BigEndian.Uint16(buf[10:12])
	msgType, err := ParseNotifyMessageType(rawMsgType)
	if err != nil {
		return Notification{}, err
	}

	n := Notification{
		NextPayload: gph.NextPayload,
		Length:      gph.PayloadLength,
		DOI:         doi,
		ProtocolID:  ProtocolID(buf[8]),
		SPISize:     buf[9],
		MessageType: msgType,
	}

	spiEnd := staticNotificationSize + int(n.SPISize)
	if len(buf) < spiEnd || int(n.Length) > len(buf) || int(n.Length) < spiEnd {
		return Notification{}, ErrBufferTooSmall
	}
	n.SPI = append([]byte(nil), buf[staticNotificationSize:spiEnd]...)
	n.NotifyData = append([]byte(nil), buf[spiEnd:n.Length]...)
	return n, nil
}

func (n Notification) Encode() []byte {
	buf := make([]byte, staticNotificationSize)
	gph := GenericPayloadHeader{NextPayload: n.NextPayload, PayloadLength: n.Length}
	copy(buf[0:4], gph.Encode())
	binary.BigEndian.PutUint32(buf[4:8], uint32(n.DOI))
	buf[8] = uint8(n.ProtocolID)
	buf[9] = n.SPISize
	binary.BigEndian.PutUint16(buf[10:12], uint16(n.MessageType))
	buf = append(buf, n.SPI...)
	buf = append(buf, n.NotifyData...)
	return buf
}
