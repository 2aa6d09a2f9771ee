package engine

import (
	"context"
	"net"

	v1 "krypt.co/ikescan/isakmp/v1"
)

// maxDatagramSize is the largest possible UDP payload over IPv4 (65,535
// minus the 8-byte UDP header and the 20-byte IPv4 header), per §4.7.
const maxDatagramSize = 65507

// inbound is one event the receive task hands to the driver: a parsed
// packet or a fatal I/O error. Parse errors never reach the driver; the
// receive task logs and drops them.
type inbound struct {
	packet *v1.Packet
	err    error
}

// receive owns the read half of the UDP socket. It allocates one buffer,
// reused for every datagram (the parser copies out what it keeps), and on
// each iteration reads a datagram, parses it, and forwards the result on
// ch. A parse error never stops the loop; an I/O error is forwarded once
// and the task exits. The task also exits when ctx is cancelled or ch's
// consumer goes away (send on ch selects against ctx.Done()).
func receive(ctx context.Context, conn *net.UDPConn, ch chan<- inbound) {
	buf := make([]byte, maxDatagramSize)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case ch <- inbound{err: err}:
			case <-ctx.Done():
			}
			return
		}

		pkt, parseErr := v1.ParsePacket(buf[:n])
		var msg inbound
		if parseErr != nil {
			log.Warning("engine: dropping unparsable datagram:", parseErr)
			continue
		}
		msg = inbound{packet: &pkt}

		select {
		case ch <- msg:
		case <-ctx.Done():
			return
		}
	}
}
