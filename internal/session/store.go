package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/kv"
)

// Store is the single owner of the persisted Credential. Reads consult an
// in-memory cache before durable storage; writes go to both the namespaced
// key and the legacy key.
type Store struct {
	kv  kv.Store
	log zerolog.Logger

	mu    sync.Mutex
	cache *Credential
}

// New creates a session store over the given storage backend.
func New(backend kv.Store, log zerolog.Logger) *Store {
	return &Store{kv: backend, log: log}
}

// Load returns the current credential, or nil when the user is logged out.
// A malformed stored record counts as logged out; storage I/O failures
// propagate.
func (s *Store) Load() (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (*Credential, error) {
	if s.cache != nil {
		return s.cache, nil
	}

	data, err := s.kv.Get(PrimaryKey)
	if errors.Is(err, kv.ErrNotFound) {
		data, err = s.kv.Get(LegacyKey)
	}
	if errors.Is(err, kv.ErrNotFound) {
		s.cache = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cred, err := ParseCredential(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding malformed stored credential")
		s.cache = nil
		return nil, nil
	}
	s.cache = cred
	return cred, nil
}

// Save persists the credential under both keys and refreshes the cache.
// The returned credential is the one passed in.
func (s *Store) Save(cred *Credential) (*Credential, error) {
	primary, err := cred.encode(false)
	if err != nil {
		return nil, err
	}
	legacy, err := cred.encode(true)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(PrimaryKey, primary); err != nil {
		return nil, err
	}
	if err := s.kv.Set(LegacyKey, legacy); err != nil {
		return nil, err
	}
	s.cache = cred.clone()
	return cred, nil
}

// Clear removes the credential from both keys and drops the cache.
// Clearing an already-empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = nil
	if err := s.kv.Delete(PrimaryKey); err != nil {
		return err
	}
	return s.kv.Delete(LegacyKey)
}

// Token returns just the bearer token, or "" when no credential exists.
func (s *Store) Token() (string, error) {
	cred, err := s.Load()
	if err != nil || cred == nil {
		return "", err
	}
	return cred.AccessToken, nil
}
