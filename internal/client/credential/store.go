// Package credential keeps the dashboard's bearer token in a primary
// persistent store with a session-scoped fallback.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a single-slot key/value tier holding the access token.
type Store interface {
	// Get returns the token and whether one is present.
	Get() (string, bool, error)
	// Set replaces the stored token.
	Set(token string) error
	// Delete removes the token. Deleting an empty store is not an error.
	Delete() error
}

// fileContent is the on-disk shape of a FileStore.
type fileContent struct {
	AccessToken string `json:"accessToken"`
}

// FileStore persists the token as JSON in a file readable only by the owner.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by path. The file and its parent
// directory are created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get loads the token from disk. A missing file means no token.
func (fs *FileStore) Get() (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.Open(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("open credentials: %w", err)
	}
	defer f.Close()

	var c fileContent
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return "", false, fmt.Errorf("decode credentials: %w", err)
	}
	return c.AccessToken, c.AccessToken != "", nil
}

// Set writes the token to disk with 0600 permissions.
func (fs *FileStore) Set(token string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(fs.path), 0700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	f, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create credentials: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(fileContent{AccessToken: token})
}

// Delete removes the credentials file.
func (fs *FileStore) Delete() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// EnvStore keeps the token in a process environment variable, so it lives
// exactly as long as the shell session that exported it.
type EnvStore struct {
	name string
}

// NewEnvStore returns an EnvStore reading the variable name.
func NewEnvStore(name string) *EnvStore {
	return &EnvStore{name: name}
}

func (es *EnvStore) Get() (string, bool, error) {
	v := os.Getenv(es.name)
	return v, v != "", nil
}

func (es *EnvStore) Set(token string) error {
	return os.Setenv(es.name, token)
}

func (es *EnvStore) Delete() error {
	return os.Unsetenv(es.name)
}

// MemoryStore holds the token in memory.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns a MemoryStore preloaded with token (may be empty).
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (ms *MemoryStore) Get() (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.token, ms.token != "", nil
}

func (ms *MemoryStore) Set(token string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.token = token
	return nil
}

func (ms *MemoryStore) Delete() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.token = ""
	return nil
}
