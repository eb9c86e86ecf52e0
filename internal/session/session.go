// Package session persists the backend credential between client runs.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"taskflow/internal/entities"

	"github.com/joho/godotenv"
)

const (
	keyToken   = "TASKFLOW_TOKEN"
	keyCookies = "TASKFLOW_COOKIES"
)

// Store loads and saves the session credential.
type Store interface {
	Load() (entities.Session, error)
	Save(s entities.Session) error
	Clear() error
}

// FileStore keeps the session in a dotenv file readable only by its owner.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the session. A missing file is an empty session.
func (f *FileStore) Load() (entities.Session, error) {
	env, err := godotenv.Read(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entities.Session{}, nil
		}
		return entities.Session{}, fmt.Errorf("read session %s: %w", f.path, err)
	}

	s := entities.Session{Token: env[keyToken], Cookies: env[keyCookies]}
	s.UserID = UserIDFromToken(s.Token)
	return s, nil
}

// Save writes the session, replacing any previous one.
func (f *FileStore) Save(s entities.Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	env := map[string]string{
		keyToken:   s.Token,
		keyCookies: s.Cookies,
	}
	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open session %s: %w", f.path, err)
	}
	// An existing file keeps its mode on open.
	if err := file.Chmod(0o600); err != nil {
		_ = file.Close()
		return fmt.Errorf("chmod session %s: %w", f.path, err)
	}
	if _, err := file.WriteString(content + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("write session %s: %w", f.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close session %s: %w", f.path, err)
	}
	return nil
}

// Clear removes the session file.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session %s: %w", f.path, err)
	}
	return nil
}

// Memory is a process-local Store.
type Memory struct {
	mu sync.Mutex
	s  entities.Session
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load() (entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *Memory) Save(s entities.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = entities.Session{}
	return nil
}
