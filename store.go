package mailglass

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoStoredCredentials is returned by CredentialStore.Load when no entry
// exists for the key. Callers treat it as "no saved credentials", never as
// a fatal error.
var ErrNoStoredCredentials = errors.New("no stored credentials")

// TokenBundle is the credential material a store persists for one
// consumer key.
type TokenBundle struct {
	Token       string `json:"token"`
	TokenSecret string `json:"token_secret"`
	AccountID   string `json:"account_id,omitempty"`
}

// CredentialStore persists token bundles keyed by consumer key.
// Implementations can use the OS keychain, files, or any other backend.
type CredentialStore interface {
	// Save stores the bundle under key, replacing any previous entry.
	Save(key string, bundle TokenBundle) error

	// Load retrieves the bundle stored under key. It returns
	// ErrNoStoredCredentials when no entry exists.
	Load(key string) (TokenBundle, error)

	// Delete removes the entry for key. Deleting a missing entry is not
	// an error.
	Delete(key string) error
}

// MemoryStore is an in-process CredentialStore. Credentials do not survive
// the process; it is intended for tests and short-lived tools.
type MemoryStore struct {
	mu      sync.Mutex
	bundles map[string]TokenBundle
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bundles: make(map[string]TokenBundle)}
}

// Save implements CredentialStore.
func (s *MemoryStore) Save(key string, bundle TokenBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[key] = bundle
	return nil
}

// Load implements CredentialStore.
func (s *MemoryStore) Load(key string) (TokenBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bundle, ok := s.bundles[key]
	if !ok {
		return TokenBundle{}, ErrNoStoredCredentials
	}
	return bundle, nil
}

// Delete implements CredentialStore.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bundles, key)
	return nil
}

// FileStore persists token bundles as JSON files in a directory, one file
// per consumer key, written with 0600 permissions.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

// Save implements CredentialStore.
func (s *FileStore) Save(key string, bundle TokenBundle) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// Load implements CredentialStore.
func (s *FileStore) Load(key string) (TokenBundle, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return TokenBundle{}, ErrNoStoredCredentials
		}
		return TokenBundle{}, fmt.Errorf("failed to read credentials: %w", err)
	}
	var bundle TokenBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return TokenBundle{}, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return bundle, nil
}

// Delete implements CredentialStore.
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
