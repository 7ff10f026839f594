package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultCacheSizeMax = 1 << 20

	defaultSpacing         = 1
	defaultTabWidth        = 18
	defaultTabHeight       = 1
	defaultDocumentVersion = "1"
	defaultDetachWidth     = 48
	defaultDetachHeight    = 14

	defaultAccent = "#7AA2F7"
	defaultBorder = "#3B4261"
	defaultMarker = "#E0AF68"
	defaultMuted  = "#565F89"
	defaultText   = "#C0CAF5"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Storage: StorageConfig{
			Backend:      StorageSQLite,
			CacheSizeMax: defaultCacheSizeMax,
		},
		Layout: LayoutConfig{
			Spacing:         defaultSpacing,
			TabWidth:        defaultTabWidth,
			TabHeight:       defaultTabHeight,
			DocumentVersion: defaultDocumentVersion,
			DetachWidth:     defaultDetachWidth,
			DetachHeight:    defaultDetachHeight,
		},
		Labels: LabelsConfig{
			Close:       "Close",
			CloseOthers: "Close Others",
			CloseAll:    "Close All",
			Detach:      "Detach",
		},
		Appearance: AppearanceConfig{
			Accent: defaultAccent,
			Border: defaultBorder,
			Marker: defaultMarker,
			Muted:  defaultMuted,
			Text:   defaultText,
		},
	}
}
