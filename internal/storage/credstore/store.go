// Package credstore provides the BadgerHold-backed bearer credential
// store. A single record under a fixed key is the only durable state the
// client keeps.
package credstore

import (
	"context"
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"

	"github.com/verifiedwealth/vw/internal/common"
	"github.com/verifiedwealth/vw/internal/interfaces"
)

// tokenKey is the fixed storage key for the bearer credential.
const tokenKey = "auth_token"

// credential is the stored record.
type credential struct {
	Key   string `badgerhold:"key"`
	Value string
}

// Store persists the bearer credential in a BadgerHold database.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore opens (creating if needed) the credential database at path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create credential directory %s: %w", path, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Credential store opened")

	return &Store{db: db, logger: logger}, nil
}

// Token returns the stored credential, or "" when none is stored.
func (s *Store) Token(_ context.Context) (string, error) {
	var entry credential
	err := s.db.Get(tokenKey, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return entry.Value, nil
}

// Set stores the credential, replacing any prior value.
func (s *Store) Set(_ context.Context, token string) error {
	entry := credential{Key: tokenKey, Value: token}
	if err := s.db.Upsert(tokenKey, &entry); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Clear removes the stored credential.
func (s *Store) Clear(_ context.Context) error {
	err := s.db.Delete(tokenKey, credential{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ interfaces.CredentialStore = (*Store)(nil)
