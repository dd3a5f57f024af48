// Package distid mints and transcodes distributed, sortable,
// collision-resistant identifiers for use across independent application
// instances without inter-node coordination.
//
// Two orthogonal facilities are exposed:
//
//   - ID generation. [DistributedIDGenerator] composes a 28-digit decimal ID
//     (a 96-bit unsigned integer, interpretable as a UUID payload) from a
//     48-bit Unix millisecond timestamp and 48 bits of randomness, with
//     monotonic progression under clock stalls and a strict rate limit.
//     [FluidGenerator] mints a 64-bit variant composed of timestamp,
//     application-instance ID, and counter.
//
//   - ID transcoding. A family of fixed-length, order-preserving encoders
//     convert between the numeric ID shapes ([uint64], [DecimalPayload],
//     [UUID]) and their binary, hexadecimal, and alphanumeric (Base62)
//     textual forms. [PublicIdentityConverter] produces a 128-bit encrypted
//     representation (AES-ECB single block) that is reversible only with the
//     configured key and self-validating.
//
// # Generation
//
//	gen := distid.NewDistributedIDGenerator()
//	id, err := gen.NextID()
//
//	fl, err := distid.NewFluidGenerator(7, distid.WithProductionMode(true))
//	fid, err := fl.NextID()
//
// # Transcoding
//
//	s, err := id.ToAlphanumeric() // 16 Base62 characters (22 with the elided zero prefix)
//	h, err := id.ToHexadecimal()  // 26 hex characters
//	back, err := distid.DecimalPayloadFromAlphanumeric(s)
//
// # Non-goals
//
// Generated IDs are not cryptographically unpredictable: the random field is
// a 48-bit window, guessable with enough samples. The raw AES block produced
// by [PublicIdentityConverter] is not portable across architectures with
// different endianness conventions for storage. UUIDs produced by this
// package sort correctly only by this package's own rules (see the note on
// [UUID]), not necessarily by a database engine's native UUID ordering.
package distid
