// Package curve provides the Curve25519 scalar-multiplication backends and
// the policy that picks one for the host at startup.
//
// Three interchangeable implementations exist. Which one runs is a pure
// function of the host architecture, operating system and CPU features;
// callers cannot observe a difference beyond speed.
package curve

// A Backend performs X25519 scalar multiplication. Implementations must
// clamp the scalar themselves before multiplying, whatever the caller did;
// the public-key flow depends on this to surface broken implementations.
type Backend interface {
	// Name identifies the implementation in diagnostics.
	Name() string
	// ScalarBaseMult sets dst to scalar * basepoint.
	ScalarBaseMult(dst, scalar *[32]byte)
	// ScalarMult sets dst to scalar * point.
	ScalarMult(dst, scalar, point *[32]byte)
}

// Clamp returns a copy of s normalized per RFC 7748, section 5: the low
// three bits are cleared so the scalar is a multiple of the cofactor, and
// the top two bits are fixed so the scalar has a known bit length. The
// masks are normative; do not fold them into arithmetic elsewhere.
func Clamp(s [32]byte) [32]byte {
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
	return s
}
