package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// b64 returns standard base64 encoding without newlines.
func b64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func unb64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

// unhex32 decodes a hex-encoded 32-byte value such as a public key.
func unhex32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// readMessage reads the file at path, or stdin when path is "-".
func readMessage(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
