package engine

import (
	"github.com/op/go-logging"
	v1 "krypt.co/ikescan/isakmp/v1"
)

// decodeTransform extracts a CandidateTransform from a parsed transform's
// attribute list. A transform lacking any of the four mandatory attributes
// is an InvalidTransformError.
func decodeTransform(t v1.Transform) (CandidateTransform, error) {
	var ct CandidateTransform
	var haveEnc, haveHash, haveAuth, haveGroup bool

	for _, attr := range t.SAAttributes {
		if attr.Short == nil {
			continue
		}
		switch attr.Short.AttributeType {
		case v1.AttrEncryptionAlgorithm:
			ct.Encryption = v1.EncryptionAlgorithm(attr.Short.AttributeValue)
			haveEnc = true
		case v1.AttrHashAlgorithm:
			ct.Hash = v1.HashAlgorithm(attr.Short.AttributeValue)
			haveHash = true
		case v1.AttrAuthenticationMethod:
			ct.Auth = v1.AuthenticationMethod(attr.Short.AttributeValue)
			haveAuth = true
		case v1.AttrGroupDescription:
			ct.Group = v1.GroupDescription(attr.Short.AttributeValue)
			haveGroup = true
		case v1.AttrKeyLength:
			ct.KeyLength = attr.Short.AttributeValue
		}
	}

	switch {
	case !haveEnc:
		return CandidateTransform{}, &InvalidTransformError{Missing: "encryption"}
	case !haveHash:
		return CandidateTransform{}, &InvalidTransformError{Missing: "hash"}
	case !haveAuth:
		return CandidateTransform{}, &InvalidTransformError{Missing: "auth"}
	case !haveGroup:
		return CandidateTransform{}, &InvalidTransformError{Missing: "group"}
	}
	return ct, nil
}

// decodeProposal decodes every transform in a proposal. One invalid
// transform invalidates the whole proposal.
func decodeProposal(p v1.Proposal) ([]CandidateTransform, error) {
	cts := make([]CandidateTransform, 0, len(p.Transforms))
	for _, t := range p.Transforms {
		ct, err := decodeTransform(t)
		if err != nil {
			return nil, err
		}
		cts = append(cts, ct)
	}
	return cts, nil
}

// decodeAccepted decodes every proposal in sa, logging and skipping any
// proposal that fails to decode. The SA's proposals that do decode are
// concatenated into one accepted-transform list.
func decodeAccepted(sa v1.SecurityAssociation, log *logging.Logger) []CandidateTransform {
	var accepted []CandidateTransform
	for _, p := range sa.Proposals {
		cts, err := decodeProposal(p)
		if err != nil {
			log.Warning("engine: skipping proposal with invalid transform:", err)
			continue
		}
		accepted = append(accepted, cts...)
	}
	return accepted
}
