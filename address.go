package smpp

// Type-Of-Number values (SMPP 3.4 §5.2.5).
const (
	TONUnknown         uint8 = 0x00
	TONInternational   uint8 = 0x01
	TONNational        uint8 = 0x02
	TONNetworkSpecific uint8 = 0x03
	TONSubscriberNum   uint8 = 0x04
	TONAlphanumeric    uint8 = 0x05
	TONAbbreviated     uint8 = 0x06
)

// Numbering-Plan-Indicator values (SMPP 3.4 §5.2.6).
const (
	NPIUnknown    uint8 = 0x00
	NPIISDN       uint8 = 0x01 // E.164
	NPIData       uint8 = 0x03
	NPITelex      uint8 = 0x04
	NPILandMobile uint8 = 0x06
	NPINational   uint8 = 0x08
	NPIPrivate    uint8 = 0x09
	NPIERMES      uint8 = 0x0A
	NPIInternet   uint8 = 0x0E
	NPIWAPClient  uint8 = 0x12
)

const (
	maxAlphanumericAddrLen = 11
	maxPhoneAddrLen        = 20
)

// Address is the (value, ton, npi) triple spec.md §3 names. NewAddress
// enforces the length invariant; the fields are exported, so an Address
// written as a struct literal is not validated.
type Address struct {
	Value string
	TON   uint8
	NPI   uint8
}

// NewAddress validates value against the TON-dependent length budget
// (spec.md §3, invariant 6 in §8) before constructing the Address.
func NewAddress(value string, ton, npi uint8) (Address, error) {
	limit := maxPhoneAddrLen
	if ton == TONAlphanumeric {
		limit = maxAlphanumericAddrLen
	}
	if len(value) > limit {
		return Address{}, &Error{
			Kind:    KindInvalidAddress,
			Message: "address value exceeds maximum length for its TON",
		}
	}
	return Address{Value: value, TON: ton, NPI: npi}, nil
}
