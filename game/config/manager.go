package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
	"github.com/wricardo/mcp-training/potatojump/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNoConfigDir    = errors.New("no layout directory configured")
)

// BuiltinName is the layout that is always available, with or without a
// layout directory
const BuiltinName = "classic"

// Manager handles layout loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

var _ service.ConfigManager = (*Manager)(nil)

// NewManager creates a new configuration manager. An empty configDir serves
// the built-in layout only.
func NewManager(configDir string) (*Manager, error) {
	if configDir != "" {
		info, err := os.Stat(configDir)
		if err != nil {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("config path is not a directory: %s", configDir)
		}
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// ConfigDir returns the directory layouts are read from
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// LoadConfig loads a layout by name. The name may carry a layout file
// extension; .json is tried before .yaml and .yml.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	name = configID(name)
	if name == "" {
		return nil, ErrConfigNotFound
	}

	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	config, err := m.readConfig(name)
	if err != nil {
		return nil, err
	}

	m.configs[name] = config
	return config, nil
}

// readConfig loads name from disk, falling back to the built-in layout
func (m *Manager) readConfig(name string) (*engine.GameConfig, error) {
	if m.configDir == "" {
		if name == BuiltinName {
			return engine.DefaultConfig(), nil
		}
		return nil, ErrConfigNotFound
	}

	for _, ext := range engine.LayoutExtensions {
		filename := name + ext
		data, err := os.ReadFile(filepath.Join(m.configDir, filename))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		config, err := engine.UnmarshalGameConfig(filename, data, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		if err := engine.ValidateGameConfig(config); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		return config, nil
	}

	if name == BuiltinName {
		return engine.DefaultConfig(), nil
	}
	return nil, ErrConfigNotFound
}

// ListConfigs returns information about every loadable layout, sorted by id.
// Files that fail validation are skipped.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	ids := map[string]string{BuiltinName: ""}

	if m.configDir != "" {
		entries, err := os.ReadDir(m.configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read config directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !engine.IsLayoutFile(entry.Name()) {
				continue
			}
			id := configID(entry.Name())
			if _, seen := ids[id]; seen && ids[id] != "" {
				continue
			}
			ids[id] = entry.Name()
		}
	}

	names := make([]string, 0, len(ids))
	for name := range ids {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]*service.ConfigInfo, 0, len(names))
	for _, name := range names {
		config, err := m.LoadConfig(name)
		if err != nil {
			continue
		}
		configs = append(configs, NewConfigInfo(name, ids[name], config))
	}

	return configs, nil
}

// NewConfigInfo summarises a layout for listings
func NewConfigInfo(id, filename string, config *engine.GameConfig) *service.ConfigInfo {
	info := &service.ConfigInfo{
		Filename:    filename,
		ConfigID:    id,
		Name:        config.Name,
		Description: config.Description,
		Builtin:     filename == "",
	}

	grid, err := engine.ParseLayout(config.Layout)
	if err == nil {
		info.Rows = len(grid)
		if info.Rows > 0 {
			info.Cols = len(grid[0])
		}
		info.PlayableCells = engine.CountPlayableCells(grid)
		info.Pieces = engine.CountCellState(grid, engine.Occupied)
	}
	return info
}

// GetDefault returns the default layout
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default layout by name
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

// RefreshCache drops cached layouts so the next load reads from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

func (m *Manager) loadDefaultConfig() error {
	config, err := m.LoadConfig(BuiltinName)
	if err != nil {
		// A broken classic.json on disk must not take the built-in down with it
		if !errors.Is(err, ErrInvalidConfig) {
			return err
		}
		config = engine.DefaultConfig()
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
	return nil
}

// SaveConfig validates a layout and writes it to the layout directory
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if m.configDir == "" {
		return ErrNoConfigDir
	}

	name = configID(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid layout name %q", ErrInvalidConfig, name)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.configDir, name+".json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[name] = config
	m.mu.Unlock()

	return nil
}

func configID(name string) string {
	return engine.TrimLayoutExt(strings.TrimSpace(name))
}
