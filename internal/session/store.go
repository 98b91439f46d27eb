// Package session holds the credential for the current session: the bearer
// token used on API calls and the user cached next to it.
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	// TokenKey is the storage key of the bearer token.
	TokenKey = "token"
	// UserKey is the storage key of the JSON-encoded user.
	UserKey = "user"
)

// Store is the single source of truth for the current session's credential.
// A Store with a nil Storage behaves as if no storage is available: it reads
// as unauthenticated and ignores writes.
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage backend failures.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a store on top of the given storage backend.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{storage: storage, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the current bearer token. One layer of leading and trailing
// double quotes is stripped, since older clients stored the token
// JSON-encoded. It reports false when no token is stored.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return "", false
	}
	raw, ok, err := s.storage.Get(TokenKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to read session token")
		return "", false
	}
	if !ok {
		return "", false
	}

	token := unquote(raw)
	if token == "" {
		return "", false
	}
	return token, true
}

// User returns the cached user, if any. A cached value that no longer decodes
// is reported as absent.
func (s *Store) User() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return nil, false
	}
	raw, ok, err := s.storage.Get(UserKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to read cached user")
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("Discarding undecodable cached user")
		return nil, false
	}
	return &user, true
}

// Set stores the token verbatim together with the user.
func (s *Store) Set(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Set(TokenKey, token); err != nil {
		return err
	}
	if user == nil {
		return s.storage.Remove(UserKey)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.storage.Set(UserKey, string(data))
}

// Clear removes the token and the cached user. Clearing an empty store is a
// no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return nil
	}
	tokenErr := s.storage.Remove(TokenKey)
	userErr := s.storage.Remove(UserKey)
	if tokenErr != nil {
		return tokenErr
	}
	return userErr
}

func unquote(token string) string {
	token = strings.TrimPrefix(token, `"`)
	return strings.TrimSuffix(token, `"`)
}
