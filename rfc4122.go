package distid

import (
	gofrsuuid "github.com/gofrs/uuid"
	googleuuid "github.com/google/uuid"
)

// This file turns what was once benchmark-only comparison tooling
// (google/uuid, gofrs/uuid: see benchmark_test.go) into real interop:
// an application handing a [UUID] to a system that expects canonical
// RFC 9562 text (another service's client library, a native UUID database
// column) needs a real parser/formatter, not a hand-rolled one.
//
// RFC4122's 16-byte wire form is the straight big-endian concatenation of
// its fields, which is exactly this package's [Uint128] encoding. The
// conversion to/from [UUID] is purely the sortable byte re-layout
// [EncodeUUID]/[DecodeUUID] already implement.

// ParseRFC4122 parses s as canonical RFC 9562 UUID text (e.g.
// "f81d4fae-7dec-11d0-a765-00a0c91e6bf6") using google/uuid, then re-lays
// the bytes out into this package's sortable [UUID] form.
func ParseRFC4122(s string) (UUID, error) {
	gu, err := googleuuid.Parse(s)
	if err != nil {
		return UUID{}, &InvalidEncodingError{Input: s, Offset: 0}
	}
	v, err := DecodeUint128(gu[:])
	if err != nil {
		return UUID{}, err
	}
	return EncodeUUID(v), nil
}

// RFC4122 formats u as canonical RFC 9562 UUID text, undoing this package's
// sortable byte re-layout first.
func (u UUID) RFC4122() string {
	v := DecodeUUID(u)
	straight := EncodeUint128(v)
	gu, err := googleuuid.FromBytes(straight[:])
	if err != nil {
		// straight is always exactly 16 bytes, so FromBytes cannot fail.
		panic("distid: RFC4122: " + err.Error())
	}
	return gu.String()
}

// IsValidRFC4122 reports whether s parses as RFC 9562 UUID text, using
// gofrs/uuid as an independent cross-check against [ParseRFC4122]'s
// google/uuid-based parser. Both reference libraries stay in scope for
// exactly this kind of cross-validation.
func IsValidRFC4122(s string) bool {
	_, err := gofrsuuid.FromString(s)
	return err == nil
}
