package distid

import "crypto/cipher"

// Go's crypto/cipher deliberately does not provide ECB mode (it is unsafe
// for multi-block plaintexts). This package needs it anyway: the public
// identity converter always encrypts exactly one 16-byte block carrying a
// built-in zero-prefix checksum, which is equivalent to CBC with a fixed
// zero IV for a single block and has no multi-block weakness to exploit.
// ecbEncrypter/ecbDecrypter implement the two-method cipher.BlockMode
// interface directly over cipher.Block.Encrypt/Decrypt, the standard
// community pattern for this narrow, intentional use of ECB.

type ecbEncrypter struct{ b cipher.Block }

func newECBEncrypter(b cipher.Block) cipher.BlockMode { return &ecbEncrypter{b} }

func (x *ecbEncrypter) BlockSize() int { return x.b.BlockSize() }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	bs := x.b.BlockSize()
	if len(src)%bs != 0 {
		panic("distid: ecb: input not a multiple of the block size")
	}
	if len(dst) < len(src) {
		panic("distid: ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Encrypt(dst, src)
		src = src[bs:]
		dst = dst[bs:]
	}
}

type ecbDecrypter struct{ b cipher.Block }

func newECBDecrypter(b cipher.Block) cipher.BlockMode { return &ecbDecrypter{b} }

func (x *ecbDecrypter) BlockSize() int { return x.b.BlockSize() }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	bs := x.b.BlockSize()
	if len(src)%bs != 0 {
		panic("distid: ecb: input not a multiple of the block size")
	}
	if len(dst) < len(src) {
		panic("distid: ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Decrypt(dst, src)
		src = src[bs:]
		dst = dst[bs:]
	}
}
