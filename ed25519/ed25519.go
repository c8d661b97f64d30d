// Package ed25519 implements the Ed25519 signature scheme (RFC 8032).
//
// Keys and signatures are fixed-size byte arrays, wire-compatible with
// every other Ed25519 implementation: a private key is the 32-byte seed
// followed by the 32-byte public key, and a signature is the encoded point
// R followed by the scalar S.
package ed25519

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"

	"filippo.io/edwards25519"

	"kurv/internal/util/memzero"
)

const (
	// SeedSize is the size of a private-key seed in bytes.
	SeedSize = 32
	// PublicKeySize is the size of a public key in bytes.
	PublicKeySize = 32
	// PrivateKeySize is the size of an expanded private key in bytes.
	PrivateKeySize = 64
	// SignatureSize is the size of a signature in bytes.
	SignatureSize = 64
)

// NewKeyFromSeed deterministically derives a key pair from seed. The seed
// is the sole entropy of the pair; the expanded private key is always
// re-derivable from it.
func NewKeyFromSeed(seed [SeedSize]byte) (pub [PublicKeySize]byte, priv [PrivateKeySize]byte) {
	az := sha512.Sum512(seed[:])
	defer memzero.Zero(az[:])

	// Clamp the signing scalar. Same masks as X25519 key clamping, applied
	// independently here; RFC 8032, section 5.1.5.
	az[0] &= 248
	az[31] &= 127
	az[31] |= 64

	s := mustClampScalar(az[:32])
	A := new(edwards25519.Point).ScalarBaseMult(s)

	copy(pub[:], A.Bytes())
	copy(priv[:SeedSize], seed[:])
	copy(priv[SeedSize:], pub[:])
	return pub, priv
}

// GenerateKey returns a fresh key pair from the system random source. The
// transient seed is wiped before returning; it survives only inside the
// private key.
func GenerateKey() (pub [PublicKeySize]byte, priv [PrivateKeySize]byte, err error) {
	var seed [SeedSize]byte
	if _, err = rand.Read(seed[:]); err != nil {
		return pub, priv, err
	}
	defer memzero.Zero(seed[:])

	pub, priv = NewKeyFromSeed(seed)
	return pub, priv, nil
}

// Sign returns the signature of message under priv. Signing is
// deterministic: the nonce is derived from the private key and the message,
// never from external randomness, so a broken random source cannot leak the
// key through repeated nonces.
func Sign(priv [PrivateKeySize]byte, message []byte) [SignatureSize]byte {
	az := sha512.Sum512(priv[:SeedSize])
	defer memzero.Zero(az[:])

	// The upper-byte mask here is 0x3f rather than key generation's 0x7f.
	// Both pin the scalar to the same group element; the exact patterns are
	// kept as the reference implementations write them.
	az[0] &= 248
	az[31] &= 63
	az[31] |= 64

	s := mustClampScalar(az[:32])

	h := sha512.New()
	h.Write(az[32:])
	h.Write(message)
	nonce := reduce(h.Sum(nil))

	R := new(edwards25519.Point).ScalarBaseMult(nonce)

	var sig [SignatureSize]byte
	copy(sig[:32], R.Bytes())

	h.Reset()
	h.Write(sig[:32])
	h.Write(priv[SeedSize:])
	h.Write(message)
	hram := reduce(h.Sum(nil))

	S := edwards25519.NewScalar().MultiplyAdd(hram, s, nonce)
	copy(sig[32:], S.Bytes())
	return sig
}

// Verify reports whether sig is a valid signature of message under pub.
// Every failure mode collapses to false: malformed S, undecodable public
// key, non-canonical scalar, mismatched R. Distinguishing them would hand
// an attacker an oracle in some protocols. Verification runs in variable
// time; all inputs are public.
func Verify(pub [PublicKeySize]byte, message []byte, sig [SignatureSize]byte) bool {
	if sig[63]&224 != 0 {
		return false
	}

	A, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return false
	}
	// Negating A lets the double-scalar multiply below recompute R
	// directly: R = [S]B - [h]A.
	A.Negate(A)

	// S must be canonical, i.e. strictly below the group order. Without
	// this check, S + order is a second valid encoding and every signature
	// is malleable; RFC 8032, section 5.1.7.
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(pub[:])
	h.Write(message)
	hram := reduce(h.Sum(nil))

	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(hram, A, S)
	return bytes.Equal(R.Bytes(), sig[:32])
}

// reduce interprets a 64-byte digest as a little-endian integer and reduces
// it modulo the group order.
func reduce(digest []byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		panic("ed25519: scalar reduction rejected a 64-byte digest")
	}
	return s
}

// mustClampScalar builds the scalar for 32 clamped bytes. The input is
// already masked; SetBytesWithClamping handles the reduction of the
// unreduced clamped value.
func mustClampScalar(b []byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(b)
	if err != nil {
		panic("ed25519: scalar clamping rejected a 32-byte input")
	}
	return s
}
