package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "bad backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "storage.backend"},
		{
			name: "files without cache",
			mutate: func(c *Config) {
				c.Storage.Backend = StorageFiles
				c.Storage.CacheSizeMax = 0
			},
			wantErr: "storage.cache_size_max",
		},
		{name: "negative spacing", mutate: func(c *Config) { c.Layout.Spacing = -1 }, wantErr: "layout.spacing"},
		{name: "flat tabs", mutate: func(c *Config) { c.Layout.TabHeight = 0 }, wantErr: "layout.tab_height"},
		{name: "tiny detach", mutate: func(c *Config) { c.Layout.DetachWidth = 3 }, wantErr: "layout.detach_width"},
		{name: "markup version", mutate: func(c *Config) { c.Layout.DocumentVersion = `1"` }, wantErr: "layout.document_version"},
		{name: "empty label", mutate: func(c *Config) { c.Labels.CloseAll = "" }, wantErr: "labels.close_all"},
		{name: "short color", mutate: func(c *Config) { c.Appearance.Marker = "#fff" }, wantErr: "appearance.marker"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaDescribesSections(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	for _, key := range []string{`"storage"`, `"tab_width"`, `"close_others"`, `"sqlite"`, `"Dockyard Configuration"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestWriteSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSchemaFile(dir)

	require.NoError(t, err)
	assert.FileExists(t, path)
}
