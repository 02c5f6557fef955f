package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

func newTestPersister(t *testing.T) (*ConfigPersister, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	return &ConfigPersister{path: func() (string, error) { return path, nil }}, path
}

func readTestConfig(t *testing.T, path string) map[string]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	values := map[string]string{}
	require.NoError(t, yaml.Unmarshal(data, &values))

	return values
}

func TestConfigPersister_SetAPIKey(t *testing.T) {
	t.Parallel()

	persister, path := newTestPersister(t)

	require.NoError(t, persister.SetAPIKey("  sk_test_123 "))
	require.NoError(t, persister.Set("base-url", "http://localhost:12111"))

	assert.Equal(t, map[string]string{
		"api_key":  "sk_test_123",
		"base_url": "http://localhost:12111",
	}, readTestConfig(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	require.ErrorIs(t, persister.SetAPIKey("   "), constants.ErrEmptyAPIKey)
}

func TestConfigPersister_Set(t *testing.T) {
	t.Parallel()

	persister, path := newTestPersister(t)

	require.NoError(t, persister.Set("output", "json"))
	require.ErrorIs(t, persister.Set("output", "xml"), constants.ErrUnsupportedOutputFormat)
	require.ErrorIs(t, persister.Set("api_key", "sk_test_1"), constants.ErrUnknownConfigKey)
	require.ErrorIs(t, persister.Set("colour", "red"), constants.ErrUnknownConfigKey)

	assert.Equal(t, map[string]string{"output": "json"}, readTestConfig(t, path))
}

func TestConfigPersister_KeepsUnknownKeys(t *testing.T) {
	t.Parallel()

	persister, path := newTestPersister(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm))
	require.NoError(t, os.WriteFile(path, []byte("custom: value\n"), constants.ConfigFilePerm))

	require.NoError(t, persister.Set("log_format", "json"))

	assert.Equal(t, map[string]string{"custom": "value", "log_format": "json"}, readTestConfig(t, path))
}
