package identity_test

import (
	"testing"

	"kurv/ed25519"
	"kurv/internal/identity"
	"kurv/x25519"
)

func TestNewProducesUsableKeys(t *testing.T) {
	alice, err := identity.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bob, err := identity.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if alice.XPub == bob.XPub || alice.EdPub == bob.EdPub {
		t.Fatal("two identities share key material")
	}

	ab, okA := x25519.Shared(alice.XPriv, bob.XPub)
	ba, okB := x25519.Shared(bob.XPriv, alice.XPub)
	if !okA || !okB || ab != ba {
		t.Fatal("identities cannot agree on a shared secret")
	}

	msg := []byte("hello")
	sig := ed25519.Sign(alice.EdPriv, msg)
	if !ed25519.Verify(alice.EdPub, msg, sig) {
		t.Fatal("identity signature does not verify")
	}
}

func TestFingerprint(t *testing.T) {
	id, err := identity.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fp := identity.Fingerprint(id.EdPub[:])
	if len(fp) != 64 {
		t.Fatalf("fingerprint length %d, want 64 hex chars", len(fp))
	}
	if fp != identity.Fingerprint(id.EdPub[:]) {
		t.Fatal("fingerprint is not deterministic")
	}
}
