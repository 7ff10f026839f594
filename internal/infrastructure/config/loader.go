package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/dockyard/internal/logging"
)

const envPrefix = "DOCKYARD"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	logger         zerolog.Logger
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	return newManager(configDir)
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DOCKYARD_STORAGE_BACKEND, DOCKYARD_LAYOUT_TAB_WIDTH, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range map[string]string{
		"logging.level":  envPrefix + "_LOG_LEVEL",
		"logging.format": envPrefix + "_LOG_FORMAT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{viper: v, configDir: configDir, logger: logging.NewFromEnv()}, nil
}

// SetLogger replaces the logger used by the file watcher. Call it before Watch.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Load reads the config file, creating it with defaults on first run, then
// applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	setDefaults(m.viper)

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	if err := WriteConfigOrdered(DefaultConfig(), m.configFile()); err != nil {
		return fmt.Errorf("failed to create default config: %w", err)
	}
	if _, err := WriteSchemaFile(m.configDir); err != nil {
		log := m.logger
		log.Warn().Err(err).Msg("failed to write config schema")
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading created config file: %w", err)
	}
	return nil
}

// decode unmarshals viper's merged view into a fresh Config.
func (m *Manager) decode() error {
	cfg := new(Config)
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}
	normalize(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	return &cfg
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	normalize(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := WriteConfigOrdered(cfg, m.configFile()); err != nil {
		return err
	}
	saved := *cfg
	m.config = &saved
	if m.watching {
		m.skipNextReload = true
	}
	return nil
}

// GetConfigFile returns the path of the config file in use.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, "config.toml")
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	v.SetDefault("logging.log_dir", d.Logging.LogDir)

	v.SetDefault("storage.backend", string(d.Storage.Backend))
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.cache_size_max", d.Storage.CacheSizeMax)

	v.SetDefault("layout.spacing", d.Layout.Spacing)
	v.SetDefault("layout.tab_width", d.Layout.TabWidth)
	v.SetDefault("layout.tab_height", d.Layout.TabHeight)
	v.SetDefault("layout.document_version", d.Layout.DocumentVersion)
	v.SetDefault("layout.detach_width", d.Layout.DetachWidth)
	v.SetDefault("layout.detach_height", d.Layout.DetachHeight)
	v.SetDefault("layout.autoload", d.Layout.Autoload)

	v.SetDefault("labels.close", d.Labels.Close)
	v.SetDefault("labels.close_others", d.Labels.CloseOthers)
	v.SetDefault("labels.close_all", d.Labels.CloseAll)
	v.SetDefault("labels.detach", d.Labels.Detach)

	v.SetDefault("appearance.accent", d.Appearance.Accent)
	v.SetDefault("appearance.border", d.Appearance.Border)
	v.SetDefault("appearance.marker", d.Appearance.Marker)
	v.SetDefault("appearance.muted", d.Appearance.Muted)
	v.SetDefault("appearance.text", d.Appearance.Text)
}

// normalize lowercases enum values and fills in derived paths.
func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Storage.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(cfg.Storage.Backend))))
	cfg.Storage.Path = strings.TrimSpace(cfg.Storage.Path)
	cfg.Layout.Autoload = strings.TrimSpace(cfg.Layout.Autoload)
}
