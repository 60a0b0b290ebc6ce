package client

import (
	"os"
	"path/filepath"
	"strings"
)

const tokenFileName = ".coinkeeper_token"

// tokenPath is a test seam: tests point it at a temp directory.
var tokenPath = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, tokenFileName), nil
}

// SaveToken stores the session token in the user's home directory so
// subsequent commands can run without logging in again. Tokens expire on
// their own, so a stale file just means another login.
func SaveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// LoadToken returns the cached session token, or an empty string when none
// is saved.
func LoadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
