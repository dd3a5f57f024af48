package distid

import (
	"math/big"
	"strings"
)

// init self-checks the decimal layout's word round-trip: write a sentinel
// value through the word constructor, read it back through the word
// accessors, and panic on mismatch so a broken build fails at load time
// rather than silently miscomparing IDs later.
func init() {
	const sentinelHi, sentinelMid, sentinelLo uint32 = 0xA5A5A5A5, 0x5A5A5A5A, 0x0F0F0F0F
	d, err := NewDecimalPayloadFromWords(0, sentinelHi, sentinelMid, sentinelLo)
	if err != nil {
		panic("distid: decimal layout self-check: " + err.Error())
	}
	ss, hi, mid, lo := d.Words()
	if ss != 0 || hi != sentinelHi || mid != sentinelMid || lo != sentinelLo {
		panic("distid: decimal layout self-check failed: in-memory word layout does not round-trip")
	}
}

// NewDecimalPayloadFromUint64 widens v into a 96-bit decimal payload (hi
// word zero; v fills the mid and lo words).
func NewDecimalPayloadFromUint64(v uint64) DecimalPayload {
	return DecimalPayload{hi: 0, lo: v}
}

// bigInt returns d's value as a *big.Int. This is used only by
// [DecimalPayload.DecimalString] and [ParseDecimalPayload]: the display and
// parsing paths. The hot encode/decode path (binary.go) never allocates a
// big.Int.
func (d DecimalPayload) bigInt() *big.Int {
	hi := new(big.Int).SetUint64(uint64(d.hi))
	hi.Lsh(hi, 64)
	lo := new(big.Int).SetUint64(d.lo)
	return hi.Or(hi, lo)
}

// DecimalString renders d as its base-10 textual form: exactly the
// characters 0-9, no sign, no separators, no scientific notation.
func (d DecimalPayload) DecimalString() string {
	return d.bigInt().String()
}

func (d DecimalPayload) String() string { return d.DecimalString() }

// ParseDecimalPayload parses s as an unsigned base-10 integer and validates
// it against the [MaxDistributedID] domain.
func ParseDecimalPayload(s string) (DecimalPayload, error) {
	if s == "" || strings.ContainsAny(s, "+- \t") {
		return DecimalPayload{}, &InvalidEncodingError{Input: s, Offset: 0}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return DecimalPayload{}, &InvalidEncodingError{Input: s, Offset: 0}
	}
	if n.Sign() < 0 || n.BitLen() > 96 {
		return DecimalPayload{}, &InvalidDomainError{Value: s, Reason: "does not fit a 96-bit mantissa"}
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(n, mask64).Uint64()
	hi := new(big.Int).Rsh(n, 64).Uint64()
	d := DecimalPayload{hi: uint32(hi), lo: lo}
	if err := d.validate(); err != nil {
		return DecimalPayload{}, err
	}
	return d, nil
}
