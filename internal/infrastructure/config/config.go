// Package config loads dockyard's TOML configuration through Viper.
package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for dockyard.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Storage    StorageConfig    `mapstructure:"storage" toml:"storage" json:"storage"`
	Layout     LayoutConfig     `mapstructure:"layout" toml:"layout" json:"layout"`
	Labels     LabelsConfig     `mapstructure:"labels" toml:"labels" json:"labels"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`
	// EnableFileLog writes a per-run log file under LogDir.
	EnableFileLog bool `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/dockyard/logs.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
}

// StorageBackend selects where saved layouts live.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageFiles  StorageBackend = "files"
)

// StorageConfig selects and locates the layout store.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=files"`
	// Path is the database file (sqlite) or directory (files). Empty means
	// a location under $XDG_DATA_HOME/dockyard.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// CacheSizeMax bounds the in-memory cache of the files backend, in bytes.
	CacheSizeMax uint64 `mapstructure:"cache_size_max" toml:"cache_size_max" json:"cache_size_max"`
}

// LayoutConfig sizes the terminal rendering of arrangements.
type LayoutConfig struct {
	Spacing   int `mapstructure:"spacing" toml:"spacing" json:"spacing" jsonschema:"minimum=0"`
	TabWidth  int `mapstructure:"tab_width" toml:"tab_width" json:"tab_width" jsonschema:"minimum=4"`
	TabHeight int `mapstructure:"tab_height" toml:"tab_height" json:"tab_height" jsonschema:"minimum=1"`
	// DocumentVersion is written to and required from layout documents.
	DocumentVersion string `mapstructure:"document_version" toml:"document_version" json:"document_version"`
	// DetachWidth and DetachHeight size a floating window created by dragging
	// tabs outside every arrangement.
	DetachWidth  int `mapstructure:"detach_width" toml:"detach_width" json:"detach_width" jsonschema:"minimum=10"`
	DetachHeight int `mapstructure:"detach_height" toml:"detach_height" json:"detach_height" jsonschema:"minimum=4"`
	// Autoload is the saved layout restored when the demo starts.
	Autoload string `mapstructure:"autoload" toml:"autoload" json:"autoload"`
}

// LabelsConfig is the string table of the tab context menu.
type LabelsConfig struct {
	Close       string `mapstructure:"close" toml:"close" json:"close"`
	CloseOthers string `mapstructure:"close_others" toml:"close_others" json:"close_others"`
	CloseAll    string `mapstructure:"close_all" toml:"close_all" json:"close_all"`
	Detach      string `mapstructure:"detach" toml:"detach" json:"detach"`
}

// AppearanceConfig holds the demo palette as #rrggbb colors.
type AppearanceConfig struct {
	Accent string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Marker string `mapstructure:"marker" toml:"marker" json:"marker" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted  string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text   string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
