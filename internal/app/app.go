// Package app wires application dependencies for the CLI.
package app

import (
	"os"
	"path/filepath"

	"kurv/internal/store"
)

// App holds the wired dependencies commands work against.
type App struct {
	Keys *store.Keystore
}

// New builds the App from a config directory.
func New(home string) *App {
	return &App{Keys: store.New(home)}
}

// DefaultHome returns the default config directory, $HOME/.kurv.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".kurv"), nil
}
