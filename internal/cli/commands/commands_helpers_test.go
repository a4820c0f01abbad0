package commands

import (
	"path/filepath"
	"testing"

	"Portfolio/internal/config"
)

// withTempConfig возвращает конфиг клиента, у которого файл идентичности лежит в temp.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{ServerURL: serverURL, IdentityFile: filepath.Join(dir, "identity.json")}
}
