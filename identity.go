package distid

import (
	"crypto/aes"
	"crypto/cipher"
	"sync"
)

// CiphertextFormatter renders a 16-byte public-identity ciphertext block as
// text.
type CiphertextFormatter func(block [16]byte) string

// CiphertextParser inverts a [CiphertextFormatter]. It fails with
// [InvalidLengthError] or [InvalidEncodingError] on malformed text, never
// with a cryptographic error, since the bytes haven't been decrypted yet.
type CiphertextParser func(s string) ([16]byte, error)

// LongASCIIFormat renders a ciphertext block as 32 uppercase hex characters.
var LongASCIIFormat CiphertextFormatter = func(block [16]byte) string {
	return EncodeHexString(block[:])
}

// LongASCIIParse parses the output of [LongASCIIFormat].
var LongASCIIParse CiphertextParser = func(s string) ([16]byte, error) {
	var block [16]byte
	if len(s) != 32 {
		return block, &InvalidLengthError{Got: len(s), Want: "32"}
	}
	b, err := DecodeHexBytes(s)
	if err != nil {
		return block, err
	}
	copy(block[:], b)
	return block, nil
}

// ShortASCIIFormat renders a ciphertext block as 22 Base62 characters.
var ShortASCIIFormat CiphertextFormatter = func(block [16]byte) string {
	var out [22]byte
	_ = EncodeBase62Block16(block[:], out[:])
	return string(out[:])
}

// ShortASCIIParse parses the output of [ShortASCIIFormat].
var ShortASCIIParse CiphertextParser = func(s string) ([16]byte, error) {
	if len(s) != 22 {
		return [16]byte{}, &InvalidLengthError{Got: len(s), Want: "22"}
	}
	return DecodeBase62Block16([]byte(s))
}

// PublicIdentityConverter performs AES-ECB single-block encrypt/decrypt
// with an embedded zero-prefix checksum, so a forged or corrupted
// ciphertext is rejected on decode instead of silently decrypting to
// garbage. A converter owns its AES transforms and scratch buffers and is
// safe for concurrent use: a single mutex serializes every encrypt/decrypt,
// released before any subsequent text formatting so formatting never holds
// the lock.
type PublicIdentityConverter struct {
	mu         sync.Mutex
	encrypter  cipher.BlockMode
	decrypter  cipher.BlockMode
	plainScr   [16]byte
	cipherScr  [16]byte
	plainScr2  [16]byte
	cipherScr2 [16]byte
}

// NewPublicIdentityConverter constructs a converter from a 16/24/32-byte AES
// key, selecting AES-128/192/256 accordingly.
func NewPublicIdentityConverter(key []byte) (*PublicIdentityConverter, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, &ConfigurationError{Field: "Key", Reason: "must be 16, 24, or 32 bytes"}
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, &ConfigurationError{Field: "Key", Reason: err.Error()}
	}
	return &PublicIdentityConverter{
		encrypter: newECBEncrypter(block),
		decrypter: newECBDecrypter(block),
	}, nil
}

func (c *PublicIdentityConverter) encrypt(plain [16]byte) ([16]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plainScr = plain
	c.encrypter.CryptBlocks(c.cipherScr[:], c.plainScr[:])
	return c.cipherScr, nil
}

func (c *PublicIdentityConverter) decrypt(block [16]byte) ([16]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cipherScr2 = block
	c.decrypter.CryptBlocks(c.plainScr2[:], c.cipherScr2[:])
	return c.plainScr2, nil
}

// EncryptUint64 encrypts v into a ciphertext block, checksummed with an
// 8-byte zero prefix (2⁻⁶⁴ forgery odds on decode).
func (c *PublicIdentityConverter) EncryptUint64(v uint64) ([16]byte, error) {
	var plain [16]byte
	idBytes := EncodeUint64(v)
	copy(plain[8:16], idBytes[:])
	return c.encrypt(plain)
}

// DecryptUint64 decrypts block and validates its 8-byte zero checksum
// prefix. ok is false if the prefix does not decrypt to zero.
func (c *PublicIdentityConverter) DecryptUint64(block [16]byte) (v uint64, ok bool) {
	plain, err := c.decrypt(block)
	if err != nil {
		return 0, false
	}
	for _, b := range plain[:8] {
		if b != 0 {
			return 0, false
		}
	}
	v, _ = DecodeUint64(plain[8:16])
	return v, true
}

// EncryptDecimalPayload encrypts d into a ciphertext block, checksummed
// with a 4-byte zero prefix (2⁻³² forgery odds on decode).
func (c *PublicIdentityConverter) EncryptDecimalPayload(d DecimalPayload) ([16]byte, error) {
	plain, err := EncodeDecimalPayload(d)
	if err != nil {
		return [16]byte{}, err
	}
	return c.encrypt(plain)
}

// DecryptDecimalPayload decrypts block and validates its 4-byte zero
// checksum prefix and the [MaxDistributedID] domain. ok is false if either
// check fails.
func (c *PublicIdentityConverter) DecryptDecimalPayload(block [16]byte) (d DecimalPayload, ok bool) {
	plain, err := c.decrypt(block)
	if err != nil {
		return DecimalPayload{}, false
	}
	d, err = DecodeDecimalPayload(plain[:])
	if err != nil {
		return DecimalPayload{}, false
	}
	return d, true
}

// EncryptUint128 encrypts v with no checksum prefix: every 16-byte
// plaintext is a valid u128, so decode for this shape cannot fail.
func (c *PublicIdentityConverter) EncryptUint128(v Uint128) ([16]byte, error) {
	plain := EncodeUint128(v)
	return c.encrypt(plain)
}

// DecryptUint128 decrypts block. This shape has no checksum: every 16-byte
// plaintext is already a syntactically valid u128, so unlike
// [PublicIdentityConverter.DecryptUint64]/[PublicIdentityConverter.DecryptDecimalPayload]
// there is no ok result.
func (c *PublicIdentityConverter) DecryptUint128(block [16]byte) (Uint128, error) {
	plain, err := c.decrypt(block)
	if err != nil {
		return Uint128{}, err
	}
	return DecodeUint128(plain[:])
}

// Uint64To encrypts v and renders the ciphertext with format.
func (c *PublicIdentityConverter) Uint64To(v uint64, format CiphertextFormatter) (string, error) {
	block, err := c.EncryptUint64(v)
	if err != nil {
		return "", err
	}
	return format(block), nil
}

// Uint64From parses s with parse and decrypts the resulting block.
func (c *PublicIdentityConverter) Uint64From(s string, parse CiphertextParser) (v uint64, ok bool) {
	block, err := parse(s)
	if err != nil {
		return 0, false
	}
	return c.DecryptUint64(block)
}

// DecimalPayloadTo encrypts d and renders the ciphertext with format.
func (c *PublicIdentityConverter) DecimalPayloadTo(d DecimalPayload, format CiphertextFormatter) (string, error) {
	block, err := c.EncryptDecimalPayload(d)
	if err != nil {
		return "", err
	}
	return format(block), nil
}

// DecimalPayloadFrom parses s with parse and decrypts the resulting block.
func (c *PublicIdentityConverter) DecimalPayloadFrom(s string, parse CiphertextParser) (d DecimalPayload, ok bool) {
	block, err := parse(s)
	if err != nil {
		return DecimalPayload{}, false
	}
	return c.DecryptDecimalPayload(block)
}

// Uint128To encrypts v and renders the ciphertext with format.
func (c *PublicIdentityConverter) Uint128To(v Uint128, format CiphertextFormatter) (string, error) {
	block, err := c.EncryptUint128(v)
	if err != nil {
		return "", err
	}
	return format(block), nil
}

// Uint128From parses s with parse and decrypts the resulting block.
func (c *PublicIdentityConverter) Uint128From(s string, parse CiphertextParser) (Uint128, error) {
	block, err := parse(s)
	if err != nil {
		return Uint128{}, err
	}
	return c.DecryptUint128(block)
}
