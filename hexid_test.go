package distid

import "testing"

func TestHexadecimalMaxDistributedIDVector(t *testing.T) {
	got, err := DecimalPayloadToHexadecimal(MaxDistributedID)
	if err != nil {
		t.Fatal(err)
	}
	want := "00204FCE5E3E2502610FFFFFFF"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	back, err := DecimalPayloadFromHexadecimal(got)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(MaxDistributedID) {
		t.Fatal("round trip mismatch")
	}
}

func TestHexWidths(t *testing.T) {
	if got := ToHexadecimal(42); len(got) != HexWidthUint64 {
		t.Fatalf("got length %d, want %d", len(got), HexWidthUint64)
	}
	s, err := DecimalPayloadToHexadecimal(ZeroDecimalPayload)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != HexWidthDecimal {
		t.Fatalf("got length %d, want %d", len(s), HexWidthDecimal)
	}
	if got := Uint128ToHexadecimal(Uint128{}); len(got) != HexWidthUUID {
		t.Fatalf("got length %d, want %d", len(got), HexWidthUUID)
	}
}

func TestHexRejectsWrongWidth(t *testing.T) {
	if _, err := Uint64FromHexadecimal("ABCD"); err == nil {
		t.Fatal("expected InvalidLengthError")
	}
}

func TestHexDecodeRejectsNonzeroSignScale(t *testing.T) {
	// Flip the leading always-zero byte to a nonzero value: still 26 hex
	// chars, but the decoded sign/scale word becomes nonzero.
	bad := "FF204FCE5E3E2502610FFFFFFF"
	if _, err := DecimalPayloadFromHexadecimal(bad); err == nil {
		t.Fatal("expected InvalidDomainError")
	}
}

func TestUUIDHexRoundTrip(t *testing.T) {
	v := Uint128{Hi: 0xAABBCCDDEEFF0011, Lo: 0x2233445566778899}
	u := EncodeUUID(v)
	s := UUIDToHexadecimal(u)
	if len(s) != 32 {
		t.Fatalf("got length %d, want 32", len(s))
	}
	back, err := UUIDFromHexadecimal(s)
	if err != nil {
		t.Fatal(err)
	}
	if back != u {
		t.Fatalf("round trip mismatch")
	}
	// Case-insensitive decode.
	if _, err := UUIDFromHexadecimal(lowerASCII(s)); err != nil {
		t.Fatal(err)
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
