// Package commands implements the kurv CLI: identity management, X25519
// key agreement and Ed25519 signing over a passphrase-protected keystore.
package commands
