package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := newManager(dir)
	require.NoError(t, err)
	return m, dir
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	m, dir := newTestManager(t)

	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, SchemaFileName))
	assert.Equal(t, DefaultConfig(), m.Get())
	assert.Equal(t, filepath.Join(dir, "config.toml"), m.GetConfigFile())
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	m, dir := newTestManager(t)
	content := `
[layout]
  tab_width = 24
  autoload = ' work '

[labels]
  close = 'Fermer'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
	t.Setenv("DOCKYARD_LOG_LEVEL", "DEBUG")
	t.Setenv("DOCKYARD_STORAGE_BACKEND", "files")

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 24, cfg.Layout.TabWidth)
	assert.Equal(t, "work", cfg.Layout.Autoload)
	assert.Equal(t, "Fermer", cfg.Labels.Close)
	assert.Equal(t, "Close Others", cfg.Labels.CloseOthers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, StorageFiles, cfg.Storage.Backend)
	assert.Equal(t, defaultSpacing, cfg.Layout.Spacing)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	m, dir := newTestManager(t)
	content := "[layout]\n  tab_width = 2\n\n[appearance]\n  accent = 'blue'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))

	err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.tab_width")
	assert.Contains(t, err.Error(), "appearance.accent")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Layout.TabWidth = 99

	assert.Equal(t, defaultTabWidth, m.Get().Layout.TabWidth)
}

func TestManager_SaveAndReload(t *testing.T) {
	m, dir := newTestManager(t)
	require.NoError(t, m.Load())

	var notified []*Config
	m.OnConfigChange(func(cfg *Config) { notified = append(notified, cfg) })

	cfg := m.Get()
	cfg.Storage.Backend = "Files"
	cfg.Layout.Spacing = 2
	require.NoError(t, m.Save(cfg))
	assert.Equal(t, StorageFiles, m.Get().Storage.Backend)

	other, err := newManager(dir)
	require.NoError(t, err)
	require.NoError(t, other.Load())
	assert.Equal(t, 2, other.Get().Layout.Spacing)

	require.NoError(t, m.Reload())
	require.Len(t, notified, 1)
	assert.Equal(t, 2, notified[0].Layout.Spacing)
}

func TestManager_SaveRejectsInvalidConfig(t *testing.T) {
	m, dir := newTestManager(t)
	require.NoError(t, m.Load())
	before, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	cfg := m.Get()
	cfg.Labels.Detach = " "
	require.Error(t, m.Save(cfg))
	require.Error(t, m.Save(nil))

	after, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDefaultStoragePath(t *testing.T) {
	data := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", data)

	sqlitePath, err := DefaultStoragePath(StorageSQLite)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(data, "dockyard", "dockyard.sqlite"), sqlitePath)

	filesPath, err := DefaultStoragePath(StorageFiles)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(data, "dockyard", "layouts"), filesPath)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	want := filepath.Join(cwd, ".dev", "dockyard")
	assert.Equal(t, &XDGDirs{ConfigHome: want, DataHome: want, StateHome: want}, dirs)
}
