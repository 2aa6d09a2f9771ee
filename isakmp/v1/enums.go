package v1

// PayloadType is the ISAKMP "next payload" identifier space (RFC 2408 §3.1).
type PayloadType uint8

const (
	PayloadNone                PayloadType = 0
	PayloadSecurityAssociation PayloadType = 1
	PayloadProposal            PayloadType = 2
	PayloadTransform           PayloadType = 3
	PayloadKeyExchange         PayloadType = 4
	PayloadIdentification      PayloadType = 5
	PayloadCertificate         PayloadType = 6
	PayloadCertificateRequest  PayloadType = 7
	PayloadHash                PayloadType = 8
	PayloadSignature           PayloadType = 9
	PayloadNonce               PayloadType = 10
	PayloadNotification        PayloadType = 11
	PayloadDelete              PayloadType = 12
	PayloadVendorID            PayloadType = 13
)

// ParsePayloadType maps a raw next-payload byte to a PayloadType, failing
// with UnparsableVariantError for values this scanner never needs to
// recognize (the corresponding payload is simply not dispatched).
func ParsePayloadType(raw uint8) (PayloadType, error) {
	switch PayloadType(raw) {
	case PayloadNone, PayloadSecurityAssociation, PayloadProposal, PayloadTransform,
		PayloadKeyExchange, PayloadIdentification, PayloadCertificate, PayloadCertificateRequest,
		PayloadHash, PayloadSignature, PayloadNonce, PayloadNotification, PayloadDelete, PayloadVendorID:
		return PayloadType(raw), nil
	default:
		return 0, &UnparsableVariantError{Field: "PayloadType", Raw: uint16(raw)}
	}
}

// ExchangeType is the ISAKMP exchange-mode identifier space.
type ExchangeType uint8

const (
	ExchangeNone              ExchangeType = 0
	ExchangeBase              ExchangeType = 1
	ExchangeIdentityProtection ExchangeType = 2
	ExchangeAuthOnly          ExchangeType = 3
	ExchangeAggressive        ExchangeType = 4
	ExchangeInformational     ExchangeType = 5
)

func ParseExchangeType(raw uint8) (ExchangeType, error) {
	switch ExchangeType(raw) {
	case ExchangeNone, ExchangeBase, ExchangeIdentityProtection, ExchangeAuthOnly,
		ExchangeAggressive, ExchangeInformational:
		return ExchangeType(raw), nil
	default:
		return 0, &UnparsableVariantError{Field: "ExchangeType", Raw: uint16(raw)}
	}
}

// DomainOfInterpretation identifies the DOI under which a negotiation runs.
// This scanner only ever emits and expects DOIIPSec.
type DomainOfInterpretation uint32

const DOIIPSec DomainOfInterpretation = 1

func ParseDomainOfInterpretation(raw uint32) (DomainOfInterpretation, error) {
	if raw != uint32(DOIIPSec) {
		return 0, &UnparsableVariantError{Field: "DomainOfInterpretation", Raw: uint16(raw)}
	}
	return DomainOfInterpretation(raw), nil
}

// NotifyMessageType is the ISAKMP notification-type identifier space
// (RFC 2408 §3.14.1). Only the values this scanner needs to recognize on
// the wire are enumerated; anything else is surfaced as unparsable so the
// caller can decide whether to ignore it.
type NotifyMessageType uint16

const (
	NotifyInvalidPayloadType      NotifyMessageType = 1
	NotifyDOINotSupported         NotifyMessageType = 2
	NotifySituationNotSupported   NotifyMessageType = 3
	NotifyInvalidCookie           NotifyMessageType = 4
	NotifyInvalidMajorVersion     NotifyMessageType = 5
	NotifyInvalidMinorVersion     NotifyMessageType = 6
	NotifyInvalidExchangeType     NotifyMessageType = 7
	NotifyInvalidFlags            NotifyMessageType = 8
	NotifyInvalidMessageID        NotifyMessageType = 9
	NotifyInvalidProtocolID       NotifyMessageType = 10
	NotifyInvalidSPI              NotifyMessageType = 11
	NotifyInvalidTransformID      NotifyMessageType = 12
	NotifyAttributesNotSupported  NotifyMessageType = 13
	NotifyNoProposalChosen        NotifyMessageType = 14
	NotifyBadProposalSyntax       NotifyMessageType = 15
	NotifyPayloadMalformed        NotifyMessageType = 16
	NotifyInvalidKeyInformation   NotifyMessageType = 17
	NotifyInvalidIDInformation    NotifyMessageType = 18
	NotifyAuthenticationFailed    NotifyMessageType = 24
	NotifyConnected               NotifyMessageType = 16384
)

func ParseNotifyMessageType(raw uint16) (NotifyMessageType, error) {
	switch NotifyMessageType(raw) {
	case NotifyInvalidPayloadType, NotifyDOINotSupported, NotifySituationNotSupported,
		NotifyInvalidCookie, NotifyInvalidMajorVersion, NotifyInvalidMinorVersion,
		NotifyInvalidExchangeType, NotifyInvalidFlags, NotifyInvalidMessageID,
		NotifyInvalidProtocolID, NotifyInvalidSPI, NotifyInvalidTransformID,
		NotifyAttributesNotSupported, NotifyNoProposalChosen, NotifyBadProposalSyntax,
		NotifyPayloadMalformed, NotifyInvalidKeyInformation, NotifyInvalidIDInformation,
		NotifyAuthenticationFailed, NotifyConnected:
		return NotifyMessageType(raw), nil
	default:
		return 0, &UnparsableVariantError{Field: "NotifyMessageType", Raw: raw}
	}
}

// AttributeType is the Phase-1 SA attribute identifier space (RFC 2409
// Appendix A). The MSB used on the wire to pick short vs. long encoding is
// stripped by the caller before this lookup.
type AttributeType uint16

const (
	AttrEncryptionAlgorithm AttributeType = 1
	AttrHashAlgorithm       AttributeType = 2
	AttrAuthenticationMethod AttributeType = 3
	AttrGroupDescription    AttributeType = 4
	AttrGroupType           AttributeType = 5
	AttrGroupPrime          AttributeType = 6
	AttrGroupGeneratorOne   AttributeType = 7
	AttrGroupGeneratorTwo   AttributeType = 8
	AttrGroupCurveA         AttributeType = 9
	AttrGroupCurveB         AttributeType = 10
	AttrLifeType            AttributeType = 11
	AttrLifeDuration        AttributeType = 12
	AttrPRF                 AttributeType = 13
	AttrKeyLength           AttributeType = 14
	AttrFieldSize           AttributeType = 15
	AttrGroupOrder          AttributeType = 16
)

func ParseAttributeType(raw uint16) (AttributeType, error) {
	switch AttributeType(raw) {
	case AttrEncryptionAlgorithm, AttrHashAlgorithm, AttrAuthenticationMethod, AttrGroupDescription,
		AttrGroupType, AttrGroupPrime, AttrGroupGeneratorOne, AttrGroupGeneratorTwo,
		AttrGroupCurveA, AttrGroupCurveB, AttrLifeType, AttrLifeDuration, AttrPRF,
		AttrKeyLength, AttrFieldSize, AttrGroupOrder:
		return AttributeType(raw), nil
	default:
		return 0, &UnparsableVariantError{Field: "AttributeType", Raw: raw}
	}
}

// EncryptionAlgorithm is the Phase-1 encryption-algorithm transform
// attribute value space.
type EncryptionAlgorithm uint16

const (
	EncDESCBC      EncryptionAlgorithm = 1
	EncIDEACBC     EncryptionAlgorithm = 2
	EncBlowfishCBC EncryptionAlgorithm = 3
	EncRC5CBC      EncryptionAlgorithm = 4
	Enc3DESCBC     EncryptionAlgorithm = 5
	EncCASTCBC     EncryptionAlgorithm = 6
	EncAESCBC      EncryptionAlgorithm = 7
)

// AllEncryptionAlgorithms enumerates the non-zero, known values in
// ascending order, for use by the transform-enumeration stage of the
// search engine.
func AllEncryptionAlgorithms() []EncryptionAlgorithm {
	return []EncryptionAlgorithm{EncDESCBC, EncIDEACBC, EncBlowfishCBC, EncRC5CBC, Enc3DESCBC, EncCASTCBC, EncAESCBC}
}

// HashAlgorithm is the Phase-1 hash-algorithm transform attribute value
// space.
type HashAlgorithm uint16

const (
	HashMD5      HashAlgorithm = 1
	HashSHA      HashAlgorithm = 2
	HashTiger    HashAlgorithm = 3
	HashSHA2_256 HashAlgorithm = 4
	HashSHA2_384 HashAlgorithm = 5
	HashSHA2_512 HashAlgorithm = 6
)

func AllHashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{HashMD5, HashSHA, HashTiger, HashSHA2_256, HashSHA2_384, HashSHA2_512}
}

// AuthenticationMethod is the Phase-1 authentication-method transform
// attribute value space.
type AuthenticationMethod uint16

const (
	AuthPreSharedKey       AuthenticationMethod = 1
	AuthDSSSignatures      AuthenticationMethod = 2
	AuthRSASignatures      AuthenticationMethod = 3
	AuthRSAEncryption      AuthenticationMethod = 4
	AuthRevisedRSAEncrypt  AuthenticationMethod = 5
	AuthECDSASignatures    AuthenticationMethod = 6
)

func AllAuthenticationMethods() []AuthenticationMethod {
	return []AuthenticationMethod{AuthPreSharedKey, AuthDSSSignatures, AuthRSASignatures, AuthRSAEncryption, AuthRevisedRSAEncrypt, AuthECDSASignatures}
}

// GroupDescription is the Diffie-Hellman group transform attribute value
// space.
type GroupDescription uint16

const (
	GroupMODP768  GroupDescription = 1
	GroupMODP1024 GroupDescription = 2
	GroupEC2N155  GroupDescription = 3
	GroupEC2N185  GroupDescription = 4
	GroupMODP1536 GroupDescription = 5
	GroupMODP2048 GroupDescription = 14
	GroupMODP3072 GroupDescription = 15
	GroupMODP4096 GroupDescription = 16
	GroupMODP6144 GroupDescription = 17
	GroupMODP8192 GroupDescription = 18
)

func AllGroupDescriptions() []GroupDescription {
	return []GroupDescription{GroupMODP768, GroupMODP1024, GroupEC2N155, GroupEC2N185, GroupMODP1536,
		GroupMODP2048, GroupMODP3072, GroupMODP4096, GroupMODP6144, GroupMODP8192}
}

// LifeType is the value of the LifeType attribute; this scanner always
// proposes LifeSeconds.
type LifeType uint16

const (
	LifeSeconds   LifeType = 1
	LifeKilobytes LifeType = 2
)

// ProtocolID identifies the protocol a proposal negotiates. This scanner
// only builds ISAKMP (Phase 1) proposals, but recognizes the IPsec
// protocols that may appear in a (malformed or unexpected) response.
type ProtocolID uint8

const (
	ProtoISAKMP   ProtocolID = 1
	ProtoIPSecAH  ProtocolID = 2
	ProtoIPSecESP ProtocolID = 3
)

// TransformID identifies the Phase-1 ISAKMP transform. KEY_IKE is the only
// value defined for protocol ISAKMP.
type TransformID uint8

const TransformKeyIKE TransformID = 1
