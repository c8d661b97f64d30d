package curve

import (
	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// altBackend is the variant built from portable 64-bit multiplies: a
// Montgomery ladder over the edwards25519 field element type for general
// points, and the precomputed Edwards base table mapped back to Montgomery
// u for the basepoint. On cores with wide multipliers this outruns the
// dedicated kernels.
type altBackend struct{}

func (altBackend) Name() string { return "edwards" }

func (altBackend) ScalarBaseMult(dst, scalar *[32]byte) {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(scalar[:])
	if err != nil {
		panic("curve: edwards25519 rejected a 32-byte scalar")
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	copy(dst[:], p.BytesMontgomery())
}

func (altBackend) ScalarMult(dst, scalar, point *[32]byte) {
	ladder(dst, scalar, point)
}

// ladder is the RFC 7748, section 5 Montgomery ladder. It clamps the scalar
// itself and, via field.Element.SetBytes, ignores the high bit of the point
// encoding as the RFC requires.
func ladder(dst, scalar, point *[32]byte) {
	e := Clamp(*scalar)

	var x1, x2, z2, x3, z3, tmp0, tmp1 field.Element
	if _, err := x1.SetBytes(point[:]); err != nil {
		panic("curve: field element rejected a 32-byte point")
	}
	x2.One()
	x3.Set(&x1)
	z3.One()

	swap := 0
	for pos := 254; pos >= 0; pos-- {
		b := e[pos/8] >> uint(pos&7)
		b &= 1
		swap ^= int(b)
		x2.Swap(&x3, swap)
		z2.Swap(&z3, swap)
		swap = int(b)

		tmp0.Subtract(&x3, &z3)
		tmp1.Subtract(&x2, &z2)
		x2.Add(&x2, &z2)
		z2.Add(&x3, &z3)
		z3.Multiply(&tmp0, &x2)
		z2.Multiply(&z2, &tmp1)
		tmp0.Square(&tmp1)
		tmp1.Square(&x2)
		x3.Add(&z3, &z2)
		z2.Subtract(&z3, &z2)
		x2.Multiply(&tmp1, &tmp0)
		tmp1.Subtract(&tmp1, &tmp0)
		z2.Square(&z2)
		z3.Mult32(&tmp1, 121666)
		x3.Square(&x3)
		tmp0.Add(&tmp0, &z3)
		z3.Multiply(&x1, &z2)
		z2.Multiply(&tmp1, &tmp0)
	}

	x2.Swap(&x3, swap)
	z2.Swap(&z3, swap)

	z2.Invert(&z2)
	x2.Multiply(&x2, &z2)
	copy(dst[:], x2.Bytes())
}
