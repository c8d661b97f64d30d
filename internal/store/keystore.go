package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"kurv/internal/identity"
	"kurv/internal/util/memzero"
)

const identityFile = "identity.enc"

// Keystore persists the local identity under a directory.
type Keystore struct {
	dir string
	mu  sync.Mutex
}

// New returns a Keystore rooted at dir.
func New(dir string) *Keystore { return &Keystore{dir: dir} }

// Save seals id under passphrase and writes it to disk.
func (s *Keystore) Save(passphrase string, id *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	blob, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, identityFile), blob, 0o600)
}

// Load reads and unseals the identity.
func (s *Keystore) Load(passphrase string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		return nil, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)

	var id identity.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, err
	}
	return &id, nil
}
