package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoIdentity — клиент ещё не логинился (или выполнен logout).
var ErrNoIdentity = errors.New("not logged in")

// Identity — то, что клиент отправляет в заголовках uuid/token.
type Identity struct {
	UUID  int64  `json:"uuid"`
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// IdentityStore — файловое хранилище идентичности CLI.
type IdentityStore struct {
	Path string
}

func NewIdentityStore(path string) *IdentityStore {
	return &IdentityStore{Path: path}
}

// Save сохраняет идентичность в JSON-файл с правами 0600.
func (s *IdentityStore) Save(id Identity) error {
	if id.UUID == 0 || strings.TrimSpace(id.Token) == "" {
		return errors.New("empty identity")
	}
	if s.Path == "" {
		return errors.New("identity file path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, b, 0o600)
}

// Load читает идентичность. Отсутствующий или пустой файл — ErrNoIdentity.
func (s *IdentityStore) Load() (Identity, error) {
	var id Identity
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return id, ErrNoIdentity
		}
		return id, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return id, ErrNoIdentity
	}
	if err := json.Unmarshal(b, &id); err != nil {
		return id, fmt.Errorf("decode identity file %s: %w", s.Path, err)
	}
	id.Token = strings.TrimSpace(id.Token)
	if id.UUID == 0 || id.Token == "" {
		return id, ErrNoIdentity
	}
	return id, nil
}

// Clear удаляет файл; отсутствие файла не ошибка.
func (s *IdentityStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
