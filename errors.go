package distid

import "fmt"

// InvalidDomainError is returned when an encode operation is given a value
// outside the domain of the target shape: a negative decimal, a decimal with
// nonzero scale, a decimal exceeding [MaxDistributedID], or a negative signed
// input to a facade method that requires non-negative values.
type InvalidDomainError struct {
	// Value is a human-readable rendering of the offending value.
	Value string
	// Reason describes which domain rule was violated.
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("distid: invalid domain for value %s: %s", e.Value, e.Reason)
}

// InvalidEncodingError is returned when a decoder encounters a byte outside
// the alphabet of its textual encoding (Base62 or hexadecimal).
type InvalidEncodingError struct {
	// Input is the string that failed to decode.
	Input string
	// Offset is the index of the first offending byte.
	Offset int
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("distid: invalid encoding in %q at offset %d", e.Input, e.Offset)
}

// InvalidLengthError is returned when a decoder's input length does not
// equal the fixed width the target shape requires.
type InvalidLengthError struct {
	// Got is the length actually supplied.
	Got int
	// Want describes the expected length(s).
	Want string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("distid: unexpected length %d, want %s", e.Got, e.Want)
}

// ClockOverflowError is returned by the generators when the millisecond
// timestamp exceeds the bit width available to carry it. It is fatal to the
// generator instance that raised it: the caller must decide whether to
// panic, log and exit, or replace the generator (see spec §4.8/§4.9).
type ClockOverflowError struct {
	// TimestampMillis is the offending millisecond value.
	TimestampMillis uint64
	// MaxMillis is the largest millisecond value the field can hold.
	MaxMillis uint64
}

func (e *ClockOverflowError) Error() string {
	return fmt.Sprintf("distid: clock overflow: timestamp %d exceeds field maximum %d",
		e.TimestampMillis, e.MaxMillis)
}

// ConfigurationError is returned at construction time when a generator or
// the public identity converter is given invalid configuration: a bad epoch,
// an invalid bit distribution, a short AES key, or a zero instance ID in
// production mode.
type ConfigurationError struct {
	// Field names the offending configuration field.
	Field string
	// Reason describes why the value is invalid.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("distid: invalid configuration for %s: %s", e.Field, e.Reason)
}

// InternalCryptoError is returned when an underlying cryptographic primitive
// fails: the generators return it when their random source cannot supply
// bytes. [PublicIdentityConverter] never returns it, since crypto/cipher's
// block Encrypt/Decrypt methods report no errors.
type InternalCryptoError struct {
	// Op names the failing operation (e.g. "random sequence fill").
	Op string
	// Err is the underlying error.
	Err error
}

func (e *InternalCryptoError) Error() string {
	return fmt.Sprintf("distid: internal crypto failure during %s: %v", e.Op, e.Err)
}

func (e *InternalCryptoError) Unwrap() error { return e.Err }
