package kv

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps values in the operating system keychain. Values are
// stored as strings under a fixed service name.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a keychain-backed store under the given service
// name.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Available reports whether the system keychain accepts writes. Callers
// should fall back to another backend when it doesn't.
func (s *KeyringStore) Available() bool {
	testKey := s.service + "::probe"
	if err := keyring.Set(s.service, testKey, "probe"); err != nil {
		return false
	}
	_ = keyring.Delete(s.service, testKey) // Best-effort cleanup
	return true
}

func (s *KeyringStore) Get(key string) ([]byte, error) {
	v, err := keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(v), nil
}

func (s *KeyringStore) Set(key string, value []byte) error {
	return keyring.Set(s.service, key, string(value))
}

func (s *KeyringStore) Delete(key string) error {
	err := keyring.Delete(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
