package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const defaultKeyringService = "hotelsuite-cli"

// KeyringStorage persists session values in the OS keychain/credential
// manager. Keys are namespaced per API base URL so logins to different
// backends do not overwrite each other.
type KeyringStorage struct {
	service string
	scope   string
}

// NewKeyringStorage creates a keyring-backed storage scoped to the given API
// base URL.
func NewKeyringStorage(scope string) *KeyringStorage {
	return &KeyringStorage{service: defaultKeyringService, scope: scope}
}

func (k *KeyringStorage) key(name string) string {
	return fmt.Sprintf("%s-%s", name, k.scope)
}

func (k *KeyringStorage) Get(key string) (string, bool, error) {
	value, err := keyring.Get(k.service, k.key(key))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load %s from keyring: %w", key, err)
	}
	return value, true, nil
}

func (k *KeyringStorage) Set(key, value string) error {
	if err := keyring.Set(k.service, k.key(key), value); err != nil {
		return fmt.Errorf("failed to save %s to keyring: %w", key, err)
	}
	return nil
}

func (k *KeyringStorage) Remove(key string) error {
	if err := keyring.Delete(k.service, k.key(key)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", key, err)
	}
	return nil
}
