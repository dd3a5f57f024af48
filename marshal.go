package distid

// encoding.TextMarshaler/TextAppender and encoding.BinaryMarshaler on every
// typed ID shape, so these types drop into JSON struct fields and
// encoding/gob without bespoke adapters. Compare/Before/After/Equal live on
// types.go next to each type; this file carries only the encoding.*
// surface plus fmt.Stringer and JSON.

// String renders u in this package's own 32-character uppercase hex form
// of its stored bytes, not RFC 9562 text. See [UUID.RFC4122] for that.
func (u UUID) String() string { return u.ToHexadecimal() }

// MarshalText implements encoding.TextMarshaler using [UUID.String].
func (u UUID) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// AppendText implements encoding.TextAppender.
func (u UUID) AppendText(b []byte) ([]byte, error) { return append(b, u.String()...), nil }

// UnmarshalText implements encoding.TextUnmarshaler, parsing the 32-char
// hex form [UUID.MarshalText] produces.
func (u *UUID) UnmarshalText(text []byte) error {
	v, err := UUIDFromHexadecimal(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UUID) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UUID) UnmarshalBinary(data []byte) error {
	v, _, err := DecodeUUIDBytes(data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON encodes u as a quoted hex string.
func (u UUID) MarshalJSON() ([]byte, error) { return quoteJSON(u.String()), nil }

// UnmarshalJSON decodes a quoted hex string produced by [UUID.MarshalJSON].
func (u *UUID) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler, rendering d in its
// canonical base-10 decimal form.
func (d DecimalPayload) MarshalText() ([]byte, error) { return []byte(d.DecimalString()), nil }

// AppendText implements encoding.TextAppender.
func (d DecimalPayload) AppendText(b []byte) ([]byte, error) {
	return append(b, d.DecimalString()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DecimalPayload) UnmarshalText(text []byte) error {
	v, err := ParseDecimalPayload(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 16-byte
// big-endian encoding.
func (d DecimalPayload) MarshalBinary() ([]byte, error) {
	b, err := EncodeDecimalPayload(d)
	if err != nil {
		return nil, err
	}
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DecimalPayload) UnmarshalBinary(data []byte) error {
	v, err := DecodeDecimalPayload(data)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes d as a quoted base-10 string: a JSON number would
// silently lose precision above 2^53, and d routinely exceeds that.
func (d DecimalPayload) MarshalJSON() ([]byte, error) { return quoteJSON(d.DecimalString()), nil }

// UnmarshalJSON decodes a quoted base-10 string produced by
// [DecimalPayload.MarshalJSON].
func (d *DecimalPayload) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler, rendering f in base-10.
func (f FluidID) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// AppendText implements encoding.TextAppender.
func (f FluidID) AppendText(b []byte) ([]byte, error) { return append(b, f.String()...), nil }

// String renders f in base-10.
func (f FluidID) String() string { return NewDecimalPayloadFromUint64(uint64(f)).DecimalString() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FluidID) UnmarshalText(text []byte) error {
	v, err := parseFluidDecimal(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f FluidID) MarshalBinary() ([]byte, error) {
	b := EncodeUint64(uint64(f))
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *FluidID) UnmarshalBinary(data []byte) error {
	v, err := DecodeUint64(data)
	if err != nil {
		return err
	}
	*f = FluidID(v)
	return nil
}

// MarshalJSON encodes f as a quoted base-10 string, for the same reason as
// [DecimalPayload.MarshalJSON]: a 63-bit value overflows float64 precision.
func (f FluidID) MarshalJSON() ([]byte, error) { return quoteJSON(f.String()), nil }

// UnmarshalJSON decodes a quoted base-10 string produced by
// [FluidID.MarshalJSON].
func (f *FluidID) UnmarshalJSON(data []byte) error {
	s, err := unquoteJSON(data)
	if err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}

func parseFluidDecimal(s string) (FluidID, error) {
	d, err := ParseDecimalPayload(s)
	if err != nil {
		return 0, err
	}
	if d.Hi() != 0 {
		return 0, &InvalidDomainError{Value: s, Reason: "exceeds 64 bits"}
	}
	return FluidID(d.lo), nil
}

func quoteJSON(s string) []byte {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out
}

func unquoteJSON(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", &InvalidEncodingError{Input: string(data), Offset: 0}
	}
	return string(data[1 : len(data)-1]), nil
}
