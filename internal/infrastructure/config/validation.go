package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig collects every problem in config into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLabels(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json", "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of console, json, text (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	switch config.Storage.Backend {
	case StorageSQLite, StorageFiles:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("storage.backend must be sqlite or files (got %q)", config.Storage.Backend))
	}
	if config.Storage.Backend == StorageFiles && config.Storage.CacheSizeMax == 0 {
		validationErrors = append(validationErrors, "storage.cache_size_max must be positive for the files backend")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.Spacing < 0 {
		validationErrors = append(validationErrors, "layout.spacing must be non-negative")
	}
	if l.TabWidth < 4 {
		validationErrors = append(validationErrors, "layout.tab_width must be at least 4")
	}
	if l.TabHeight < 1 {
		validationErrors = append(validationErrors, "layout.tab_height must be at least 1")
	}
	if l.DetachWidth < 10 || l.DetachHeight < 4 {
		validationErrors = append(validationErrors, "layout.detach_width and layout.detach_height must be at least 10x4")
	}
	if strings.ContainsAny(l.DocumentVersion, "<>&\"") {
		validationErrors = append(validationErrors, "layout.document_version contains markup characters")
	}
	return validationErrors
}

func validateLabels(config *Config) []string {
	var validationErrors []string
	for key, value := range map[string]string{
		"labels.close":        config.Labels.Close,
		"labels.close_others": config.Labels.CloseOthers,
		"labels.close_all":    config.Labels.CloseAll,
		"labels.detach":       config.Labels.Detach,
	} {
		if strings.TrimSpace(value) == "" {
			validationErrors = append(validationErrors, key+" cannot be empty")
		}
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	a := config.Appearance
	for _, c := range []struct{ key, value string }{
		{"appearance.accent", a.Accent},
		{"appearance.border", a.Border},
		{"appearance.marker", a.Marker},
		{"appearance.muted", a.Muted},
		{"appearance.text", a.Text},
	} {
		if !hexColor.MatchString(c.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s must be a #rrggbb color (got %q)", c.key, c.value))
		}
	}
	return validationErrors
}
