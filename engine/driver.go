package engine

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"net"
	"time"

	lru "github.com/hashicorp/golang-lru"
	v1 "krypt.co/ikescan/isakmp/v1"
)

// inFlightCapacity bounds the cookie-to-batch registry so a scan against a
// target that silently drops datagrams can't grow it without limit.
const inFlightCapacity = 4096

// Run enumerates every candidate transform, binds a UDP socket to cfg.IP's
// address family, and drives the search to completion or a fatal error.
func Run(ctx context.Context, cfg Config) ([]CandidateTransform, error) {
	conn, err := bind(cfg.IP)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return run(ctx, conn, cfg, EnumerateCandidates())
}

// run is Run's testable core: it takes the socket and candidate list as
// parameters instead of constructing them, so tests can drive it against a
// mock UDP responder with a small synthetic candidate set.
func run(ctx context.Context, conn *net.UDPConn, cfg Config, candidates []CandidateTransform) ([]CandidateTransform, error) {
	remote := &net.UDPAddr{IP: cfg.IP, Port: cfg.Port}

	pending := ChunkBatches(candidates, cfg.TransformNo)
	inFlight, err := lru.New(inFlightCapacity)
	if err != nil {
		return nil, err
	}
	results := newResultSet()

	ch := make(chan inbound)
	go recoverToLog(func() { receive(ctx, conn, ch) }, log)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	doSleep := false
	emptyTicks := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case msg := <-ch:
			if msg.err != nil {
				return nil, newReceiveError(msg.err)
			}
			pending = handlePacket(*msg.packet, inFlight, results, pending, &doSleep)

		case <-ticker.C:
			if len(pending) == 0 {
				if !doSleep {
					emptyTicks++
					if emptyTicks >= 2 {
						return results.sorted(), nil
					}
					continue
				}
				// do_sleep is pending but bisection enqueued nothing (the
				// whole batch was accepted): honor the pause anyway.
				time.Sleep(cfg.SleepOnTransformFound)
				doSleep = false
				continue
			}

			emptyTicks = 0
			batch := pending[0]
			pending = pending[1:]

			cookie, err := randomCookie()
			if err != nil {
				return nil, err
			}
			probe := v1.GenerateMainMode(cookie, 0, batch.Transforms)
			inFlight.Add(cookie, batch)

			if _, err := conn.WriteToUDP(probe, remote); err != nil {
				return nil, newSendError(err)
			}

			if doSleep {
				time.Sleep(cfg.SleepOnTransformFound)
				doSleep = false
			}
		}
	}
}

// handlePacket applies one received packet to the in-flight map and result
// set, returning the (possibly extended) pending queue.
func handlePacket(pkt v1.Packet, inFlight *lru.Cache, results resultSet, pending []Batch, doSleep *bool) []Batch {
	cookie := pkt.Header.InitiatorCookie

	var accepted []CandidateTransform
	sawSA := false
	sawReject := false
	for _, p := range pkt.Payloads {
		switch payload := p.(type) {
		case v1.SecurityAssociation:
			sawSA = true
			accepted = append(accepted, decodeAccepted(payload, log)...)
		case v1.Notification:
			if payload.MessageType == v1.NotifyNoProposalChosen {
				sawReject = true
			}
		}
	}

	batchVal, ok := inFlight.Get(cookie)
	if !ok {
		log.Warning("engine: response for unknown cookie", cookie)
		return pending
	}

	switch {
	case sawSA:
		batch := batchVal.(Batch)
		results.add(accepted...)
		remainder := nonAccepted(batch.Transforms, accepted)
		a, b := Bisect(remainder)
		if len(a) > 0 {
			pending = append(pending, Batch{Transforms: a})
		}
		if len(b) > 0 {
			pending = append(pending, Batch{Transforms: b})
		}
		inFlight.Remove(cookie)
		*doSleep = true
	case sawReject:
		inFlight.Remove(cookie)
	default:
		log.Info("engine: unrecognized response for cookie", cookie, "- leaving in-flight")
	}

	return pending
}

// randomCookie draws a uniform 64-bit initiator cookie. A
// cryptographically secure source isn't required (the cookie only
// correlates within this process's lifetime) but crypto/rand is the
// simplest uniform source available without pulling in a dependency whose
// entropy shape doesn't fit a raw 64-bit value.
func randomCookie() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
