package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/traduzo/traduzo/internal/config"
	"github.com/traduzo/traduzo/internal/logger"
)

type fileTokenStore struct {
	path     string
	inMemory bool

	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

type persistedToken struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// NewTokenStore creates a file-backed [TokenStore] at the path given in
// storageCfg.TokenFile. The special path ":memory:" keeps the token in memory
// only (used by tests and throwaway sessions). An existing token file is
// loaded eagerly so a corrupt file fails at startup rather than mid-session.
func NewTokenStore(storageCfg config.ClientStorage, log *logger.Logger) (TokenStore, error) {
	path := storageCfg.TokenFile
	if path == "" {
		path = ":memory:"
	}

	s := &fileTokenStore{
		path:     path,
		inMemory: path == ":memory:",
		logger:   log.Component("token-store"),
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *fileTokenStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}

	var pt persistedToken
	if err = json.Unmarshal(data, &pt); err != nil {
		return fmt.Errorf("decode token file: %w", err)
	}

	s.token = pt.Token
	return nil
}

// Save implements [TokenStore]. The file is written with 0600 permissions;
// the token is a credential.
func (s *fileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.inMemory {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data, err := json.Marshal(persistedToken{Token: token, SavedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("session token persisted")
	return nil
}

// Load implements [TokenStore].
func (s *fileTokenStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrTokenNotFound
	}
	return s.token, nil
}

// Clear implements [TokenStore]. It removes the token file entirely instead
// of writing an empty slot, so a cleared session leaves nothing behind.
func (s *fileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.inMemory {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
