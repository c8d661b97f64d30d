// Package identity bundles the long-term key material a kurv user holds:
// an X25519 key-agreement pair and an Ed25519 signing pair.
package identity

import (
	"crypto/sha256"
	"encoding/hex"

	"kurv/ed25519"
	"kurv/x25519"
)

// Identity carries both Diffie-Hellman (X25519) and signature (Ed25519)
// material. Fixed-size arrays keep the secrets out of accidental
// reallocations.
type Identity struct {
	XPriv [32]byte `json:"x_priv"`
	XPub  [32]byte `json:"x_pub"`

	EdPriv [64]byte `json:"ed_priv"`
	EdPub  [32]byte `json:"ed_pub"`
}

// New generates a fresh identity from the system random source.
func New() (*Identity, error) {
	xPub, xPriv, err := x25519.GenerateKey()
	if err != nil {
		return nil, err
	}
	edPub, edPriv, err := ed25519.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Identity{
		XPriv:  xPriv,
		XPub:   xPub,
		EdPriv: edPriv,
		EdPub:  edPub,
	}, nil
}

// Fingerprint returns the SHA-256 hex digest of a public key.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:])
}
