package distid

import "encoding/binary"

// EncodeUint64 writes v as 8 big-endian bytes.
func EncodeUint64(v uint64) [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], v)
	return out
}

// DecodeUint64 reads 8 big-endian bytes. It fails with [InvalidLengthError]
// if b is not exactly 8 bytes long.
func DecodeUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, &InvalidLengthError{Got: len(b), Want: "8"}
	}
	return binary.BigEndian.Uint64(b), nil
}

// EncodeUint128 writes v as 16 big-endian bytes, most significant half
// first.
func EncodeUint128(v Uint128) [16]byte {
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], v.Hi)
	binary.BigEndian.PutUint64(out[8:16], v.Lo)
	return out
}

// DecodeUint128 reads 16 big-endian bytes. It fails with
// [InvalidLengthError] if b is not exactly 16 bytes long.
func DecodeUint128(b []byte) (Uint128, error) {
	if len(b) != 16 {
		return Uint128{}, &InvalidLengthError{Got: len(b), Want: "16"}
	}
	return Uint128{Hi: binary.BigEndian.Uint64(b[0:8]), Lo: binary.BigEndian.Uint64(b[8:16])}, nil
}

// EncodeDecimalPayload writes d as 16 big-endian bytes in the word order
// sign_and_scale (always 0), hi, mid, lo. It fails with
// [InvalidDomainError] if d exceeds [MaxDistributedID].
func EncodeDecimalPayload(d DecimalPayload) ([16]byte, error) {
	var out [16]byte
	if err := d.validate(); err != nil {
		return out, err
	}
	ss, hi, mid, lo := d.Words()
	binary.BigEndian.PutUint32(out[0:4], ss)
	binary.BigEndian.PutUint32(out[4:8], hi)
	binary.BigEndian.PutUint32(out[8:12], mid)
	binary.BigEndian.PutUint32(out[12:16], lo)
	return out, nil
}

// DecodeDecimalPayload reads 16 big-endian bytes laid out
// sign_and_scale, hi, mid, lo and re-validates the domain. It fails with
// [InvalidLengthError] if b is not 16 bytes, or [InvalidDomainError] if the
// sign/scale word is nonzero or the value exceeds [MaxDistributedID].
func DecodeDecimalPayload(b []byte) (DecimalPayload, error) {
	if len(b) != 16 {
		return DecimalPayload{}, &InvalidLengthError{Got: len(b), Want: "16"}
	}
	ss := binary.BigEndian.Uint32(b[0:4])
	hi := binary.BigEndian.Uint32(b[4:8])
	mid := binary.BigEndian.Uint32(b[8:12])
	lo := binary.BigEndian.Uint32(b[12:16])
	d, err := NewDecimalPayloadFromWords(ss, hi, mid, lo)
	if err != nil {
		return DecimalPayload{}, err
	}
	if err := d.validate(); err != nil {
		return DecimalPayload{}, err
	}
	return d, nil
}

// EncodeUUID lays v out in this package's UUID byte layout: the straight
// big-endian encoding's first 4 bytes, next 2 bytes, and next 2 bytes are
// each byte-reversed; the last 8 bytes are left untouched. See the note on
// [UUID] for how this layout relates to numeric order.
func EncodeUUID(v Uint128) UUID {
	straight := EncodeUint128(v)
	var u UUID
	u[0], u[1], u[2], u[3] = straight[3], straight[2], straight[1], straight[0]
	u[4], u[5] = straight[5], straight[4]
	u[6], u[7] = straight[7], straight[6]
	copy(u[8:16], straight[8:16])
	return u
}

// DecodeUUID inverts [EncodeUUID], recovering the straight big-endian u128
// value a UUID's sortable byte layout encodes.
func DecodeUUID(u UUID) Uint128 {
	var straight [16]byte
	straight[3], straight[2], straight[1], straight[0] = u[0], u[1], u[2], u[3]
	straight[5], straight[4] = u[4], u[5]
	straight[7], straight[6] = u[6], u[7]
	copy(straight[8:16], u[8:16])
	return Uint128{
		Hi: binary.BigEndian.Uint64(straight[0:8]),
		Lo: binary.BigEndian.Uint64(straight[8:16]),
	}
}

// EncodeUUIDBytes writes v's sortable UUID byte layout into a 16-byte slice,
// the []byte counterpart to [EncodeUUID] for callers working with
// caller-owned buffers.
func EncodeUUIDBytes(v Uint128, out []byte) error {
	if len(out) != 16 {
		return &InvalidLengthError{Got: len(out), Want: "16"}
	}
	u := EncodeUUID(v)
	copy(out, u[:])
	return nil
}

// DecodeUUIDBytes reads a 16-byte slice as a [UUID] and returns its
// underlying [Uint128] value.
func DecodeUUIDBytes(b []byte) (UUID, Uint128, error) {
	if len(b) != 16 {
		return UUID{}, Uint128{}, &InvalidLengthError{Got: len(b), Want: "16"}
	}
	var u UUID
	copy(u[:], b)
	return u, DecodeUUID(u), nil
}
