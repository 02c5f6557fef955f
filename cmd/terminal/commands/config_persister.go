package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/terminal-hardware/internal/constants"
)

// ConfigPersister writes settings to the config file, keeping keys it does
// not manage.
type ConfigPersister struct {
	mutex sync.Mutex
	path  func() (string, error)
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{path: configFilePath}
}

// SetAPIKey stores the secret key.
func (p *ConfigPersister) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return constants.ErrEmptyAPIKey
	}

	return p.update("api_key", key)
}

// Set stores one of the settable keys.
func (p *ConfigPersister) Set(key, value string) error {
	key = strings.ReplaceAll(strings.ToLower(key), "-", "_")
	if !slices.Contains(settableKeys, key) {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	if key == "output" && !isOutputFormat(value) {
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, value)
	}

	return p.update(key, value)
}

func (p *ConfigPersister) update(key, value string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	path, err := p.path()
	if err != nil {
		return err
	}

	values, err := readConfigFile(path)
	if err != nil {
		return err
	}

	values[key] = value

	return writeConfigFile(path, values)
}

func readConfigFile(path string) (map[string]interface{}, error) {
	values := map[string]interface{}{}

	// path is either the --config flag or derived from the user's home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if values == nil {
		values = map[string]interface{}{}
	}

	return values, nil
}

func writeConfigFile(path string, values map[string]interface{}) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func isOutputFormat(value string) bool {
	switch value {
	case constants.OutputFormatTable, constants.OutputFormatJSON, constants.OutputFormatYAML:
		return true
	default:
		return false
	}
}
