// Package store persists the local identity on disk, sealed under a
// passphrase. The plaintext identity is JSON; the envelope derives a key
// with scrypt and seals with ChaCha20-Poly1305, binding the salt as
// additional data. All methods are concurrency-safe via internal locking.
package store
