package v2

// SecurityAssociation is a v2 SA payload body: an ordered, strictly
// numbered chain of proposals. The generic payload header that precedes it
// is parsed separately by the packet walker.
type SecurityAssociation struct {
	Proposals []Proposal
}

// ParseSecurityAssociation parses an SA payload body (excluding its generic
// payload header). An empty buffer is a valid, proposal-less SA. The first
// proposal's number must equal 1; each subsequent proposal's number must be
// exactly one more than its predecessor's.
func ParseSecurityAssociation(buf []byte) (SecurityAssociation, error) {
	if len(buf) == 0 {
		return SecurityAssociation{}, nil
	}

	sa := SecurityAssociation{}
	offset := 0

	first, err := ParseProposal(buf[offset:])
	if err != nil {
		return SecurityAssociation{}, err
	}
	if first.ProposalNo != firstProposalNumber {
		return SecurityAssociation{}, &InvalidProposalNumberingStartError{Got: first.ProposalNo}
	}
	sa.Proposals = append(sa.Proposals, first)
	offset += int(first.Length)

	prev := first
	for prev.More {
		next, err := ParseProposal(buf[offset:])
		if err != nil {
			return SecurityAssociation{}, err
		}
		if next.ProposalNo != prev.ProposalNo+1 {
			return SecurityAssociation{}, &InvalidProposalNumberingError{Got: next.ProposalNo, Want: prev.ProposalNo + 1}
		}
		sa.Proposals = append(sa.Proposals, next)
		offset += int(next.Length)
		prev = next
	}

	return sa, nil
}

func (sa SecurityAssociation) Encode() []byte {
	var buf []byte
	for i, p := range sa.Proposals {
		p.More = i != len(sa.Proposals)-1
		if p.ProposalNo == 0 {
			p.ProposalNo = uint8(i + 1)
		}
		buf = append(buf, p.Encode()...)
	}
	return buf
}
