package curve

import "golang.org/x/crypto/curve25519"

// genericBackend is the portable fallback used whenever the host is not
// capable of an accelerated variant, including purego builds. It has the
// same contract as the accelerated backends and passes the same vectors.
type genericBackend struct{}

func (genericBackend) Name() string { return "generic" }

func (genericBackend) ScalarBaseMult(dst, scalar *[32]byte) {
	curve25519.ScalarBaseMult(dst, scalar)
}

func (genericBackend) ScalarMult(dst, scalar, point *[32]byte) {
	// The deprecated entry point is used on purpose: unlike X25519 it
	// returns the raw bytes for low-order points, and the zero check
	// belongs to the key-agreement flow, not the backend.
	curve25519.ScalarMult(dst, scalar, point) //nolint:staticcheck
}
