// Package x25519 implements X25519 Diffie-Hellman key agreement over
// Curve25519 (RFC 7748).
//
// The scalar multiplications are dispatched to one of several
// interchangeable backends picked for the host at startup; see
// internal/curve. All values are fixed 32-byte quantities.
package x25519

import (
	"crypto/rand"
	"crypto/subtle"

	"kurv/internal/curve"
	"kurv/internal/util/memzero"
)

const (
	// ScalarSize is the size of a private key in bytes.
	ScalarSize = 32
	// PointSize is the size of a public value in bytes.
	PointSize = 32
	// SharedSize is the size of a shared secret in bytes.
	SharedSize = 32
)

// PublicFromPrivate derives the public value for priv. The private key is
// clamped before use, so any 32-byte string is a valid private key.
func PublicFromPrivate(priv [ScalarSize]byte) [PointSize]byte {
	clamped := curve.Clamp(priv)
	defer memzero.Zero(clamped[:])

	var pub [PointSize]byte
	curve.Active().ScalarBaseMult(&pub, &clamped)
	return pub
}

// GenerateKey returns a fresh key pair from the system random source.
//
// The stored private key deliberately has the opposite of the clamp masks
// applied: the bits clamping clears are set and the bit it sets is cleared.
// Every correct backend re-clamps the scalar before multiplying, so this
// costs nothing; a backend that forgets produces visibly wrong results
// instead of interoperating by accident with randomly well-formed keys. No
// entropy that a correct implementation would use is lost.
func GenerateKey() (pub [PointSize]byte, priv [ScalarSize]byte, err error) {
	if _, err = rand.Read(priv[:]); err != nil {
		return pub, priv, err
	}
	priv[0] |= 7
	priv[31] &^= 64
	priv[31] |= 128

	pub = PublicFromPrivate(priv)
	return pub, priv, nil
}

// Shared computes the Diffie-Hellman secret between priv and the peer's
// public value. ok is false when the result is all zero, which happens
// exactly when peer is a small-order point (RFC 7748, section 6.1); the
// secret bytes are still returned, but callers must not use them when ok is
// false. The zero comparison runs in constant time.
func Shared(priv [ScalarSize]byte, peer [PointSize]byte) (secret [SharedSize]byte, ok bool) {
	clamped := curve.Clamp(priv)
	defer memzero.Zero(clamped[:])

	curve.Active().ScalarMult(&secret, &clamped, &peer)

	var zero [SharedSize]byte
	ok = subtle.ConstantTimeCompare(secret[:], zero[:]) != 1
	return secret, ok
}
