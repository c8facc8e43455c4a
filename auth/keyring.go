// Package auth provides a high-level API for persisting and retrieving service credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "monkeypaint-cli"
	user    = "scheme-token"
)

// SetToken persists the color-scheme service bearer token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// GetToken retrieves the color-scheme service bearer token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(service, user)
}

// DeleteToken removes the color-scheme service bearer token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(service, user)
}
