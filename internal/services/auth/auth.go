// Package auth stores the Loopia API credentials in the OS keychain.
package auth

import (
	"errors"
	"fmt"
	"strings"
)

const ServiceName = "loopia"

// Keychain keys for the two credential halves.
const (
	UsernameKey = "loopia-username"
	PasswordKey = "loopia-password"
)

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(key string, token string) error
	GetToken(key string) (string, error)
	DeleteToken(key string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeKey lowercases and trims a keychain key so "Loopia-Username"
// and "loopia-username" address the same entry.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// SaveCredentials stores the API username and password.
func SaveCredentials(store Store, username, password string) error {
	if err := store.SetToken(UsernameKey, username); err != nil {
		return fmt.Errorf("auth: failed to store username: %w", err)
	}
	if err := store.SetToken(PasswordKey, password); err != nil {
		return fmt.Errorf("auth: failed to store password: %w", err)
	}
	return nil
}

// LoadCredentials returns the stored API username and password.
func LoadCredentials(store Store) (username, password string, err error) {
	username, err = store.GetToken(UsernameKey)
	if err != nil {
		return "", "", fmt.Errorf("loopia auth: username not found (run 'loopia auth login'): %w", err)
	}
	password, err = store.GetToken(PasswordKey)
	if err != nil {
		return "", "", fmt.Errorf("loopia auth: password not found (run 'loopia auth login'): %w", err)
	}
	return username, password, nil
}

// DeleteCredentials removes both entries. Missing entries are not an error.
func DeleteCredentials(store Store) error {
	for _, key := range []string{UsernameKey, PasswordKey} {
		if err := store.DeleteToken(key); err != nil && !errors.Is(err, ErrTokenNotFound) {
			return fmt.Errorf("auth: failed to delete %s: %w", key, err)
		}
	}
	return nil
}
