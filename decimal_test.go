package distid

import (
	"math/big"
	"testing"
)

func TestParseDecimalPayloadRejectsEmpty(t *testing.T) {
	if _, err := ParseDecimalPayload(""); err == nil {
		t.Fatal("expected InvalidEncodingError for empty string")
	}
}

func TestParseDecimalPayloadRejectsSign(t *testing.T) {
	for _, s := range []string{"-1", "+1"} {
		if _, err := ParseDecimalPayload(s); err == nil {
			t.Fatalf("expected InvalidEncodingError for %q", s)
		}
	}
}

func TestParseDecimalPayloadRejectsWhitespace(t *testing.T) {
	if _, err := ParseDecimalPayload(" 123"); err == nil {
		t.Fatal("expected InvalidEncodingError for leading whitespace")
	}
}

func TestParseDecimalPayloadRejectsNonDigits(t *testing.T) {
	if _, err := ParseDecimalPayload("12a34"); err == nil {
		t.Fatal("expected InvalidEncodingError for non-digit characters")
	}
}

func TestParseDecimalPayloadZero(t *testing.T) {
	d, err := ParseDecimalPayload("0")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(ZeroDecimalPayload) {
		t.Fatal("expected zero value")
	}
}

func TestParseDecimalPayloadAtExactMax(t *testing.T) {
	d, err := ParseDecimalPayload(MaxDistributedID.DecimalString())
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(MaxDistributedID) {
		t.Fatal("round trip through decimal text mismatch at the boundary")
	}
}

func TestParseDecimalPayloadRejectsOneOverMax(t *testing.T) {
	max, ok := new(big.Int).SetString(MaxDistributedID.DecimalString(), 10)
	if !ok {
		t.Fatal("could not parse MaxDistributedID.DecimalString() as a big.Int")
	}
	over := new(big.Int).Add(max, big.NewInt(1))
	if _, err := ParseDecimalPayload(over.String()); err == nil {
		t.Fatal("expected InvalidDomainError one past MaxDistributedID")
	}
}

func TestParseDecimalPayloadRejectsTooManyBits(t *testing.T) {
	// 2^96, one past the largest value a 96-bit mantissa can hold.
	huge := "79228162514264337593543950336"
	if _, err := ParseDecimalPayload(huge); err == nil {
		t.Fatal("expected InvalidDomainError for a value exceeding 96 bits")
	}
}

func TestDecimalStringRoundTrip(t *testing.T) {
	d := NewDecimalPayloadFromUint64(98765432109)
	s := d.DecimalString()
	back, err := ParseDecimalPayload(s)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Fatalf("got %s, want %s", back.DecimalString(), d.DecimalString())
	}
}
