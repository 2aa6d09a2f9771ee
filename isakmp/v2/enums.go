package v2

// Flag bits for the IKEv2 header's flag byte (RFC 7296 §3.1).
const (
	FlagInitiator     uint8 = 0b1000
	FlagHigherVersion uint8 = 0b10000
	FlagResponse      uint8 = 0b100000
)

// FlagCritical marks a payload's generic header as "reject if unrecognized"
// rather than "skip if unrecognized" (RFC 7296 §2.5).
const FlagCritical uint8 = 0b10000000

// FlagMoreFollowingProposals is the ProposalHeader.LastSubstruct value that
// indicates another proposal follows; 0 marks the last proposal.
const FlagMoreFollowingProposals uint8 = 2

// FlagMoreFollowingTransforms is the TransformHeader.LastSubstruct value
// that indicates another transform follows; 0 marks the last transform.
const FlagMoreFollowingTransforms uint8 = 3

// FlagAttributeFormat is the bit set in an attribute's type field when the
// attribute uses the fixed-length TV (type/value) format rather than TLV.
const FlagAttributeFormat uint16 = 0x8000

const firstProposalNumber uint8 = 1

// ExchangeType is the IKEv2 exchange-type identifier space (RFC 7296 §3.1).
// Values 0-33 are reserved and 240-255 private use. Only 34-38 are
// recognized; every value from 39 to 239 is reported as unassigned.
type ExchangeType uint8

const (
	ExchangeIkeSaInit      ExchangeType = 34
	ExchangeIkeAuth        ExchangeType = 35
	ExchangeCreateChildSa  ExchangeType = 36
	ExchangeInformational  ExchangeType = 37
	ExchangeIkeSessionResume ExchangeType = 38
)

func ParseExchangeType(raw uint8) (ExchangeType, error) {
	switch {
	case raw <= 33:
		return 0, reservedErr("ExchangeType", uint32(raw))
	case raw == 34, raw == 35, raw == 36, raw == 37, raw == 38:
		return ExchangeType(raw), nil
	case raw <= 239:
		return 0, unassignedErr("ExchangeType", uint32(raw))
	default:
		return 0, privateUseErr("ExchangeType", uint32(raw))
	}
}

// PayloadType is the IKEv2 "next payload" identifier space. Value 0 means
// "no next payload" and, uniquely, matches the v1 encoding. Values 1-32 are
// reserved, 55-127 unassigned, 128-255 private use.
type PayloadType uint8

const (
	PayloadNoNextPayload               PayloadType = 0
	PayloadSecurityAssociation         PayloadType = 33
	PayloadKeyExchange                 PayloadType = 34
	PayloadIdentificationInitiator     PayloadType = 35
	PayloadIdentificationResponder     PayloadType = 36
	PayloadCertificate                 PayloadType = 37
	PayloadCertificateRequest          PayloadType = 38
	PayloadAuthentication              PayloadType = 39
	PayloadNonce                       PayloadType = 40
	PayloadNotify                      PayloadType = 41
	PayloadDelete                      PayloadType = 42
	PayloadVendorID                    PayloadType = 43
	PayloadTrafficSelectorInitiator    PayloadType = 44
	PayloadTrafficSelectorResponder    PayloadType = 45
	PayloadEncryptedAndAuthenticated   PayloadType = 46
	PayloadConfiguration               PayloadType = 47
	PayloadExtensibleAuthentication    PayloadType = 48
)

func ParsePayloadType(raw uint8) (PayloadType, error) {
	switch {
	case raw == 0:
		return PayloadNoNextPayload, nil
	case raw <= 32:
		return 0, reservedErr("PayloadType", uint32(raw))
	case raw >= 33 && raw <= 48:
		return PayloadType(raw), nil
	case raw <= 54:
		return PayloadType(raw), nil // RFC 6467/7383/8019: accepted but not dispatched
	case raw <= 127:
		return 0, unassignedErr("PayloadType", uint32(raw))
	default:
		return 0, privateUseErr("PayloadType", uint32(raw))
	}
}

// TransformType identifies which attribute a Transform negotiates. Value 0
// is reserved, 15-240 unassigned, 241-255 private use.
type TransformType uint8

const (
	TransformTypeEncryptionAlgorithm           TransformType = 1
	TransformTypePseudoRandomFunction          TransformType = 2
	TransformTypeIntegrityAlgorithm            TransformType = 3
	TransformTypeKeyExchangeMethod             TransformType = 4
	TransformTypeSequenceNumber                TransformType = 5
	TransformTypeAdditionalKeyExchange1        TransformType = 6
	TransformTypeAdditionalKeyExchange2        TransformType = 7
	TransformTypeAdditionalKeyExchange3        TransformType = 8
	TransformTypeAdditionalKeyExchange4        TransformType = 9
	TransformTypeAdditionalKeyExchange5        TransformType = 10
	TransformTypeAdditionalKeyExchange6        TransformType = 11
	TransformTypeAdditionalKeyExchange7        TransformType = 12
	TransformTypeKeyWrapAlgorithm              TransformType = 13
	TransformTypeGroupControllerAuthentication TransformType = 14
)

func ParseTransformType(raw uint8) (TransformType, error) {
	switch {
	case raw == 0:
		return 0, reservedErr("TransformType", uint32(raw))
	case raw >= 1 && raw <= 14:
		return TransformType(raw), nil
	case raw <= 240:
		return 0, unassignedErr("TransformType", uint32(raw))
	default:
		return 0, privateUseErr("TransformType", uint32(raw))
	}
}

// AttributeType identifies a transform attribute's meaning. Only KeyLength
// is used on the wire by this scanner; SignatureAlgorithm requires TLV
// encoding this scanner never emits or expects.
type AttributeType uint16

const (
	AttrKeyLength         AttributeType = 14
	AttrSignatureAlgorithm AttributeType = 18
)

func ParseAttributeType(raw uint16) (AttributeType, error) {
	switch {
	case raw <= 13:
		return 0, reservedErr("AttributeType", uint32(raw))
	case raw == 14:
		return AttrKeyLength, nil
	case raw <= 17:
		return 0, reservedErr("AttributeType", uint32(raw))
	case raw == 18:
		return AttrSignatureAlgorithm, nil
	case raw <= 32767:
		return 0, reservedErr("AttributeType", uint32(raw))
	default:
		return 0, outOfRangeErr("AttributeType", uint32(raw))
	}
}

// EncryptionAlgorithm is the IKEv2 encryption-transform value space. This
// scanner enumerates only the subset relevant to Phase 1 probing; values
// outside that subset still parse (so a response naming one is recognized)
// but the generator never emits them.
type EncryptionAlgorithm uint16

const (
	EncDesIv64          EncryptionAlgorithm = 1
	EncDes              EncryptionAlgorithm = 2
	EncTripleDes        EncryptionAlgorithm = 3
	EncRc5              EncryptionAlgorithm = 4
	EncIdea             EncryptionAlgorithm = 5
	EncCast             EncryptionAlgorithm = 6
	EncBlowfish         EncryptionAlgorithm = 7
	EncTripleIdea       EncryptionAlgorithm = 8
	EncDesIv32          EncryptionAlgorithm = 9
	EncNull             EncryptionAlgorithm = 11
	EncAesCbc           EncryptionAlgorithm = 12
	EncAesCtr           EncryptionAlgorithm = 13
	EncAesCcm8          EncryptionAlgorithm = 14
	EncAesCcm12         EncryptionAlgorithm = 15
	EncAesCcm16         EncryptionAlgorithm = 16
	EncAesGcm8          EncryptionAlgorithm = 18
	EncAesGcm12         EncryptionAlgorithm = 19
	EncAesGcm16         EncryptionAlgorithm = 20
	EncNullAuthAesGmac  EncryptionAlgorithm = 21
	EncCamelliaCbc      EncryptionAlgorithm = 23
	EncCamelliaCtr      EncryptionAlgorithm = 24
	EncCamelliaCcm8     EncryptionAlgorithm = 25
	EncCamelliaCcm12    EncryptionAlgorithm = 26
	EncCamelliaCcm16    EncryptionAlgorithm = 27
	EncChacha20Poly1305 EncryptionAlgorithm = 28
)

func ParseEncryptionAlgorithm(raw uint16) (EncryptionAlgorithm, error) {
	switch raw {
	case 0:
		return 0, reservedErr("EncryptionAlgorithm", uint32(raw))
	case 1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 23, 24, 25, 26, 27, 28:
		return EncryptionAlgorithm(raw), nil
	case 10, 22:
		return 0, reservedErr("EncryptionAlgorithm", uint32(raw))
	case 17:
		return 0, unassignedErr("EncryptionAlgorithm", uint32(raw))
	default:
		if raw <= 1023 {
			return 0, unassignedErr("EncryptionAlgorithm", uint32(raw))
		}
		return 0, privateUseErr("EncryptionAlgorithm", uint32(raw))
	}
}

// AllEncryptionAlgorithms enumerates the non-deprecated, allowed values of
// this space. The engine's transform enumeration uses the v1 lists, not
// this one.
func AllEncryptionAlgorithms() []EncryptionAlgorithm {
	return []EncryptionAlgorithm{EncTripleDes, EncAesCbc, EncAesCtr, EncAesGcm8, EncAesGcm12, EncAesGcm16, EncChacha20Poly1305}
}

// PseudorandomFunction is the IKEv2 PRF transform value space.
type PseudorandomFunction uint16

const (
	PrfHmacMd5      PseudorandomFunction = 1
	PrfHmacSha1     PseudorandomFunction = 2
	PrfHmacTiger    PseudorandomFunction = 3
	PrfAes128Xcbc   PseudorandomFunction = 4
	PrfHmacSha2_256 PseudorandomFunction = 5
	PrfHmacSha2_384 PseudorandomFunction = 6
	PrfHmacSha2_512 PseudorandomFunction = 7
	PrfAes128Cmac   PseudorandomFunction = 8
)

func ParsePseudorandomFunction(raw uint16) (PseudorandomFunction, error) {
	switch {
	case raw == 0:
		return 0, reservedErr("PseudorandomFunction", uint32(raw))
	case raw >= 1 && raw <= 8:
		return PseudorandomFunction(raw), nil
	case raw <= 1023:
		return 0, unassignedErr("PseudorandomFunction", uint32(raw))
	default:
		return 0, privateUseErr("PseudorandomFunction", uint32(raw))
	}
}

func AllPseudorandomFunctions() []PseudorandomFunction {
	return []PseudorandomFunction{PrfHmacSha1, PrfHmacSha2_256, PrfHmacSha2_384, PrfHmacSha2_512, PrfAes128Cmac}
}

// IntegrityAlgorithm is the IKEv2 integrity transform value space.
type IntegrityAlgorithm uint16

const (
	IntegNone            IntegrityAlgorithm = 0
	IntegHmacMd5_96       IntegrityAlgorithm = 1
	IntegHmacSha1_96      IntegrityAlgorithm = 2
	IntegDesMac          IntegrityAlgorithm = 3
	IntegKpdkMd5          IntegrityAlgorithm = 4
	IntegAesXcbc96        IntegrityAlgorithm = 5
	IntegHmacMd5_128      IntegrityAlgorithm = 6
	IntegHmacSha1_160     IntegrityAlgorithm = 7
	IntegAesCmac96        IntegrityAlgorithm = 8
	IntegAes128Gmac       IntegrityAlgorithm = 9
	IntegAes192Gmac       IntegrityAlgorithm = 10
	IntegAes256Gmac       IntegrityAlgorithm = 11
	IntegHmacSha2_256_128 IntegrityAlgorithm = 12
	IntegHmacSha2_384_192 IntegrityAlgorithm = 13
	IntegHmacSha2_512_256 IntegrityAlgorithm = 14
)

func ParseIntegrityAlgorithm(raw uint16) (IntegrityAlgorithm, error) {
	switch {
	case raw <= 14:
		return IntegrityAlgorithm(raw), nil
	case raw <= 1023:
		return 0, unassignedErr("IntegrityAlgorithm", uint32(raw))
	default:
		return 0, privateUseErr("IntegrityAlgorithm", uint32(raw))
	}
}

func AllIntegrityAlgorithms() []IntegrityAlgorithm {
	return []IntegrityAlgorithm{IntegHmacSha1_96, IntegAesXcbc96, IntegAesCmac96, IntegHmacSha2_256_128, IntegHmacSha2_384_192, IntegHmacSha2_512_256}
}

// KeyExchangeMethod is the Diffie-Hellman / key-exchange transform value
// space (historically "D-H Group").
type KeyExchangeMethod uint16

const (
	KeNone                 KeyExchangeMethod = 0
	KeModP768              KeyExchangeMethod = 1
	KeModP1024             KeyExchangeMethod = 2
	KeModP1536             KeyExchangeMethod = 5
	KeModP2048             KeyExchangeMethod = 14
	KeModP3072             KeyExchangeMethod = 15
	KeModP4096             KeyExchangeMethod = 16
	KeModP6144             KeyExchangeMethod = 17
	KeModP8192             KeyExchangeMethod = 18
	KeEcpGroup256          KeyExchangeMethod = 19
	KeEcpGroup384          KeyExchangeMethod = 20
	KeEcpGroup521          KeyExchangeMethod = 21
	KeModP2048with224Prime KeyExchangeMethod = 23
	KeModP2048with256Prime KeyExchangeMethod = 24
	KeEcpGroup192          KeyExchangeMethod = 25
	KeEcpGroup224          KeyExchangeMethod = 26
	KeCurve25519           KeyExchangeMethod = 31
	KeCurve448             KeyExchangeMethod = 32
)

func ParseKeyExchangeMethod(raw uint16) (KeyExchangeMethod, error) {
	switch raw {
	case 0, 1, 2:
		return KeyExchangeMethod(raw), nil
	case 3, 4:
		return 0, reservedErr("KeyExchangeMethod", uint32(raw))
	case 5:
		return KeyExchangeMethod(raw), nil
	case 14, 15, 16, 17, 18, 19, 20, 21, 23, 24, 25, 26, 31, 32:
		return KeyExchangeMethod(raw), nil
	default:
		if raw <= 13 || raw == 22 || (raw >= 27 && raw <= 1023) {
			return 0, unassignedErr("KeyExchangeMethod", uint32(raw))
		}
		return 0, privateUseErr("KeyExchangeMethod", uint32(raw))
	}
}

func AllKeyExchangeMethods() []KeyExchangeMethod {
	return []KeyExchangeMethod{KeModP1024, KeModP2048, KeModP3072, KeModP4096, KeEcpGroup256, KeEcpGroup384, KeCurve25519}
}

// SequenceNumberType is the Phase-2 "extended sequence numbers" transform
// value space; present here because IKEv2 AH/ESP proposals carry it, even
// though this scanner only ever negotiates IKE SAs.
type SequenceNumberType uint16

const (
	SeqSequential32bit          SequenceNumberType = 0
	SeqPartiallyTransmitted64bit SequenceNumberType = 1
)

func ParseSequenceNumberType(raw uint16) (SequenceNumberType, error) {
	switch raw {
	case 0, 1:
		return SequenceNumberType(raw), nil
	default:
		if raw <= 1023 {
			return 0, unassignedErr("SequenceNumberType", uint32(raw))
		}
		return 0, privateUseErr("SequenceNumberType", uint32(raw))
	}
}

// SecurityProtocol identifies the protocol a proposal negotiates. This
// scanner only ever builds IKE proposals; the mandatory-transform rule
// (§3) only constrains IKE, AH, and ESP proposals, so a proposal naming one
// of the other protocols here parses without that enforcement.
type SecurityProtocol uint8

const (
	ProtoInternetKeyExchange                  SecurityProtocol = 1
	ProtoAuthenticationHeader                 SecurityProtocol = 2
	ProtoEncapsulatingSecurityPayload         SecurityProtocol = 3
	ProtoFcEncapsulatingSecurityPayloadHeader SecurityProtocol = 4
	ProtoFcCtAuthentication                   SecurityProtocol = 5
	ProtoGroupIKEUpdate                       SecurityProtocol = 6
)

func ParseSecurityProtocol(raw uint8) (SecurityProtocol, error) {
	switch raw {
	case 1, 2, 3, 4, 5, 6:
		return SecurityProtocol(raw), nil
	case 0:
		return 0, reservedErr("SecurityProtocol", uint32(raw))
	default:
		if raw <= 200 {
			return 0, unassignedErr("SecurityProtocol", uint32(raw))
		}
		return 0, privateUseErr("SecurityProtocol", uint32(raw))
	}
}

// NotifyErrorMessage is the notify-type value space for error
// notifications. NoProposalChosen is the one this scanner's engine acts on.
type NotifyErrorMessage uint16

const (
	NotifyUnsupportedCriticalPayload NotifyErrorMessage = 1
	NotifyInvalidIkeSpi              NotifyErrorMessage = 4
	NotifyInvalidMajorVersion        NotifyErrorMessage = 5
	NotifyInvalidSyntax              NotifyErrorMessage = 7
	NotifyInvalidMessageId           NotifyErrorMessage = 9
	NotifyInvalidSpi                 NotifyErrorMessage = 11
	NotifyNoProposalChosen           NotifyErrorMessage = 14
	NotifyInvalidKeyExchangePayload  NotifyErrorMessage = 17
	NotifyAuthenticationFailed       NotifyErrorMessage = 24
)

func ParseNotifyErrorMessage(raw uint16) (NotifyErrorMessage, error) {
	switch raw {
	case 1, 4, 5, 7, 9, 11, 14, 17, 24:
		return NotifyErrorMessage(raw), nil
	case 0, 2, 3, 6, 8, 10, 12, 13, 15, 16, 18, 19, 20, 21, 22, 23:
		return 0, reservedErr("NotifyErrorMessage", uint32(raw))
	default:
		if raw <= 8191 {
			return 0, unassignedErr("NotifyErrorMessage", uint32(raw))
		}
		if raw <= 16383 {
			return 0, privateUseErr("NotifyErrorMessage", uint32(raw))
		}
		return 0, outOfRangeErr("NotifyErrorMessage", uint32(raw))
	}
}
