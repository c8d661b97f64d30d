package x25519_test

import (
	"encoding/hex"
	"testing"

	"kurv/x25519"
)

func unhex32(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		t.Fatalf("bad test vector %q", s)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// RFC 7748, section 6.1 key agreement vectors.
func TestRFC7748KeyAgreement(t *testing.T) {
	alicePriv := unhex32(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	alicePub := unhex32(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")
	bobPriv := unhex32(t, "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")
	bobPub := unhex32(t, "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f")
	shared := unhex32(t, "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742")

	if got := x25519.PublicFromPrivate(alicePriv); got != alicePub {
		t.Errorf("alice public: got %x, want %x", got, alicePub)
	}
	if got := x25519.PublicFromPrivate(bobPriv); got != bobPub {
		t.Errorf("bob public: got %x, want %x", got, bobPub)
	}

	got, ok := x25519.Shared(alicePriv, bobPub)
	if !ok || got != shared {
		t.Errorf("alice shared: got %x ok=%v, want %x ok=true", got, ok, shared)
	}
	got, ok = x25519.Shared(bobPriv, alicePub)
	if !ok || got != shared {
		t.Errorf("bob shared: got %x ok=%v, want %x ok=true", got, ok, shared)
	}
}

func TestAgreementCommutes(t *testing.T) {
	for i := 0; i < 16; i++ {
		aPub, aPriv, err := x25519.GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}
		bPub, bPriv, err := x25519.GenerateKey()
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}

		ab, okA := x25519.Shared(aPriv, bPub)
		ba, okB := x25519.Shared(bPriv, aPub)
		if !okA || !okB {
			t.Fatal("well-formed keys produced a degenerate secret")
		}
		if ab != ba {
			t.Fatalf("secrets disagree: %x vs %x", ab, ba)
		}
	}
}

// Generated private keys carry the inverse of the clamp masks, so backends
// that fail to re-clamp break loudly.
func TestGenerateKeyAntiMask(t *testing.T) {
	pub, priv, err := x25519.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if priv[0]&7 != 7 {
		t.Errorf("low bits not set: %#x", priv[0])
	}
	if priv[31]&64 != 0 {
		t.Errorf("bit 254 not cleared: %#x", priv[31])
	}
	if priv[31]&128 == 0 {
		t.Errorf("bit 255 not set: %#x", priv[31])
	}
	if got := x25519.PublicFromPrivate(priv); got != pub {
		t.Errorf("public does not rederive: got %x, want %x", got, pub)
	}
}

func TestSharedRejectsSmallOrderPoints(t *testing.T) {
	_, priv, err := x25519.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	var zero [32]byte
	smallOrder := [][32]byte{
		{},  // u = 0
		{1}, // u = 1
	}
	for _, peer := range smallOrder {
		secret, ok := x25519.Shared(priv, peer)
		if ok {
			t.Errorf("small-order peer %x accepted", peer)
		}
		if secret != zero {
			t.Errorf("small-order peer %x: secret %x, want all zero", peer, secret)
		}
	}
}
