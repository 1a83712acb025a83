package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wricardo/boggle/game/engine"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigName is the file (without .json) preferred as the default
const DefaultConfigName = "classic"

// ConfigInfo summarizes one configuration file for listings
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Dice        int    `json:"dice"`
}

// Manager handles dice configuration loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.DiceConfig
	configs       map[string]*engine.DiceConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	// Ensure config directory exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.DiceConfig),
	}
	m.defaultConfig = m.pickDefault()
	return m, nil
}

// Dir returns the directory the manager reads from
func (m *Manager) Dir() string { return m.configDir }

// LoadConfig loads a configuration by name, with or without the .json suffix
func (m *Manager) LoadConfig(name string) (*engine.DiceConfig, error) {
	id := strings.TrimSuffix(name, ".json")

	m.mu.RLock()
	if config, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[id]; exists {
		return config, nil
	}

	data, err := os.ReadFile(m.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, id)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, id, err)
	}

	m.configs[id] = config
	return config, nil
}

// ListConfigs returns information about all loadable configurations.
// Files that fail to load are logged and skipped.
func (m *Manager) ListConfigs() ([]*ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*ConfigInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		config, err := m.LoadConfig(id)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping configuration")
			continue
		}

		configs = append(configs, &ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    id,
			Name:        config.Name,
			Description: config.Description,
			Rows:        config.Rows,
			Cols:        config.Cols,
			Dice:        len(config.Dice),
		})
	}

	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.DiceConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops all cached configurations and picks the default again
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.configs = make(map[string]*engine.DiceConfig)
	m.mu.Unlock()

	def := m.pickDefault()

	m.mu.Lock()
	m.defaultConfig = def
	m.mu.Unlock()
}

// SaveConfig fills defaults, validates config and writes it to <name>.json
func (m *Manager) SaveConfig(name string, config *engine.DiceConfig) error {
	if config != nil {
		engine.ApplyDefaults(config)
	}
	if err := engine.ValidateDiceConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	id := strings.TrimSuffix(name, ".json")
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.path(id), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[id] = config
	m.mu.Unlock()

	return nil
}

// pickDefault prefers classic.json, then the first loadable file, then the
// built-in classic dice
func (m *Manager) pickDefault() *engine.DiceConfig {
	if config, err := m.LoadConfig(DefaultConfigName); err == nil {
		return config
	}

	configs, err := m.ListConfigs()
	if err == nil && len(configs) > 0 {
		if config, err := m.LoadConfig(configs[0].ConfigID); err == nil {
			return config
		}
	}

	log.Debug().Str("dir", m.configDir).Msg("no configuration files, using built-in classic dice")
	return engine.DefaultDiceConfig()
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.configDir, id+".json")
}

// parse decodes a configuration, fills optional fields and validates it
func parse(data []byte) (*engine.DiceConfig, error) {
	var config engine.DiceConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	engine.ApplyDefaults(&config)

	if err := engine.ValidateDiceConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
