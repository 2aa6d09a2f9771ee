package engine

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	v1 "krypt.co/ikescan/isakmp/v1"
)

func attrShort(t v1.AttributeType, value uint16) v1.DataAttribute {
	return v1.DataAttribute{Short: &v1.DataAttributeShort{AttributeType: t, AttributeValue: value}}
}

func buildAcceptedTransform(ct CandidateTransform) v1.Transform {
	attrs := []v1.DataAttribute{
		attrShort(v1.AttrEncryptionAlgorithm, uint16(ct.Encryption)),
		attrShort(v1.AttrHashAlgorithm, uint16(ct.Hash)),
		attrShort(v1.AttrAuthenticationMethod, uint16(ct.Auth)),
		attrShort(v1.AttrGroupDescription, uint16(ct.Group)),
	}
	if ct.KeyLength != 0 {
		attrs = append(attrs, attrShort(v1.AttrKeyLength, ct.KeyLength))
	}
	attrLen := 0
	for _, a := range attrs {
		attrLen += len(a.Encode())
	}
	return v1.Transform{
		NextPayload:  v1.PayloadNone,
		Length:       uint16(8 + attrLen),
		TransformID:  v1.TransformKeyIKE,
		SAAttributes: attrs,
	}
}

func buildAcceptingSA(ct CandidateTransform) v1.SecurityAssociation {
	tr := buildAcceptedTransform(ct)
	proposal := v1.Proposal{
		NextPayload:    v1.PayloadNone,
		Length:         uint16(8 + int(tr.Length)),
		ProposalNo:     1,
		ProtocolID:     v1.ProtoISAKMP,
		NoOfTransforms: 1,
		Transforms:     []v1.Transform{tr},
	}
	return v1.SecurityAssociation{
		NextPayload: v1.PayloadNone,
		Length:      uint16(12 + int(proposal.Length)),
		DOI:         v1.DOIIPSec,
		Situation:   1,
		Proposals:   []v1.Proposal{proposal},
	}
}

func buildRejectNotification() v1.Notification {
	n := v1.Notification{
		NextPayload: v1.PayloadNone,
		DOI:         v1.DOIIPSec,
		ProtocolID:  v1.ProtoISAKMP,
		MessageType: v1.NotifyNoProposalChosen,
	}
	n.Length = uint16(len(n.Encode()))
	return n
}

func buildResponsePacket(cookie uint64, next v1.PayloadType, payloads []v1.Payload) []byte {
	pkt := v1.Packet{
		Header: v1.Header{
			InitiatorCookie: cookie,
			NextPayload:     next,
			MajorVersion:    1,
			ExchangeMode:    v1.ExchangeIdentityProtection,
		},
		Payloads: payloads,
	}
	return pkt.Encode()
}

// mockResponder reads probes from conn and replies according to accept. It
// runs until conn is closed.
func mockResponder(t *testing.T, conn *net.UDPConn, probeCount *int32, accept func([]CandidateTransform) (CandidateTransform, bool)) {
	buf := make([]byte, maxDatagramSize)
	for {
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		atomic.AddInt32(probeCount, 1)

		pkt, err := v1.ParsePacket(buf[:n])
		if err != nil {
			t.Logf("mock responder: unparsable probe: %v", err)
			continue
		}
		var sent []CandidateTransform
		for _, p := range pkt.Payloads {
			if sa, ok := p.(v1.SecurityAssociation); ok {
				sent = append(sent, decodeAccepted(sa, log)...)
			}
		}

		var resp []byte
		if accepted, ok := accept(sent); ok {
			resp = buildResponsePacket(pkt.Header.InitiatorCookie, v1.PayloadSecurityAssociation, []v1.Payload{buildAcceptingSA(accepted)})
		} else {
			resp = buildResponsePacket(pkt.Header.InitiatorCookie, v1.PayloadNotification, []v1.Payload{buildRejectNotification()})
		}
		conn.WriteToUDP(resp, from)
	}
}

func loopbackSocket(t *testing.T) *net.UDPConn {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func syntheticCandidates(n int) []CandidateTransform {
	out := make([]CandidateTransform, n)
	for i := range out {
		out[i] = CandidateTransform{
			Encryption: v1.EncryptionAlgorithm(900 + i),
			Hash:       v1.HashAlgorithm(900 + i),
			Auth:       v1.AuthenticationMethod(900 + i),
			Group:      v1.GroupDescription(900 + i),
		}
	}
	return out
}

// TestSearchEmptyScan grounds scenario 1: a responder that rejects every
// probe against a 160-candidate enumeration with transform_no=20 yields an
// empty result within 9 probes.
func TestSearchEmptyScan(t *testing.T) {
	engineConn := loopbackSocket(t)
	defer engineConn.Close()
	responderConn := loopbackSocket(t)
	defer responderConn.Close()

	var probes int32
	go mockResponder(t, responderConn, &probes, func([]CandidateTransform) (CandidateTransform, bool) {
		return CandidateTransform{}, false
	})

	cfg := Config{
		IP:                    net.IPv4(127, 0, 0, 1),
		Port:                  responderConn.LocalAddr().(*net.UDPAddr).Port,
		Interval:              20 * time.Millisecond,
		TransformNo:           20,
		SleepOnTransformFound: 5 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := run(ctx, engineConn, cfg, syntheticCandidates(160))
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 0 {
		t.Fatalf("result = %+v, want empty", result)
	}
	if got := atomic.LoadInt32(&probes); got > 9 {
		t.Fatalf("sent %d probes, want <= 9", got)
	}
}

// TestSearchSingleAcceptance grounds scenario 2: a responder that accepts
// exactly one tuple out of a single initial batch is found within
// ceil(log2(n))+2 probes.
func TestSearchSingleAcceptance(t *testing.T) {
	engineConn := loopbackSocket(t)
	defer engineConn.Close()
	responderConn := loopbackSocket(t)
	defer responderConn.Close()

	target := CandidateTransform{
		Encryption: v1.Enc3DESCBC,
		Hash:       v1.HashSHA,
		Auth:       v1.AuthPreSharedKey,
		Group:      v1.GroupMODP1024,
	}
	candidates := syntheticCandidates(40)
	candidates[17] = target

	var probes int32
	go mockResponder(t, responderConn, &probes, func(sent []CandidateTransform) (CandidateTransform, bool) {
		for _, s := range sent {
			if s == target {
				return target, true
			}
		}
		return CandidateTransform{}, false
	})

	cfg := Config{
		IP:                    net.IPv4(127, 0, 0, 1),
		Port:                  responderConn.LocalAddr().(*net.UDPAddr).Port,
		Interval:              10 * time.Millisecond,
		TransformNo:           len(candidates), // one initial batch, matching the search-correctness bound
		SleepOnTransformFound: 2 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := run(ctx, engineConn, cfg, candidates)
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 1 || result[0] != target {
		t.Fatalf("result = %+v, want [%+v]", result, target)
	}

	got := atomic.LoadInt32(&probes)
	if got < 1 {
		t.Fatal("expected at least one probe")
	}
	maxProbes := int32(6 + 2) // ceil(log2(40)) + 2
	if got > maxProbes {
		t.Fatalf("sent %d probes, want <= %d", got, maxProbes)
	}
}
