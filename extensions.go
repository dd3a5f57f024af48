package distid

// This file gathers the typed-value convenience methods: thin wrappers with
// no logic beyond delegating to the standalone transcoding functions, kept
// separate from those functions' own files so each type's method surface
// reads as one list.

// ToAlphanumeric encodes d as its 16-character Base62 form.
func (d DecimalPayload) ToAlphanumeric() (string, error) { return DecimalPayloadToAlphanumeric(d) }

// ToHexadecimal encodes d as its 26-character hex form.
func (d DecimalPayload) ToHexadecimal() (string, error) { return DecimalPayloadToHexadecimal(d) }

// ToBinary encodes d as its 16-byte big-endian form.
func (d DecimalPayload) ToBinary() ([16]byte, error) { return EncodeDecimalPayload(d) }

// ToGUID reinterprets d's value as a [UUID] in this package's sortable byte
// layout.
func (d DecimalPayload) ToGUID() UUID { return EncodeUUID(d.Uint128()) }

// ToAlphanumeric encodes u as its 22-character Base62 form.
func (u UUID) ToAlphanumeric() string { return UUIDToAlphanumeric(DecodeUUID(u)) }

// ToHexadecimal encodes u as its 32-character hex form.
func (u UUID) ToHexadecimal() string { return UUIDToHexadecimal(u) }

// ToBinary returns u's 16 bytes in this package's sortable byte layout.
func (u UUID) ToBinary() [16]byte { return u }

// ToAlphanumeric encodes f as its 11-character Base62 form.
func (f FluidID) ToAlphanumeric() string { return ToAlphanumeric(uint64(f)) }

// ToHexadecimal encodes f as its 16-character hex form.
func (f FluidID) ToHexadecimal() string { return ToHexadecimal(uint64(f)) }

// ToBinary encodes f as its 8-byte big-endian form.
func (f FluidID) ToBinary() [8]byte { return EncodeUint64(uint64(f)) }
