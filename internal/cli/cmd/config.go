package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var (
	configJSON  bool
	configForce bool
	configOut   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show the effective configuration, write a default config file or
generate its JSON schema.

Settings are read from $XDG_CONFIG_HOME/dockyard/config.toml and may be
overridden by DOCKYARD_* environment variables (DOCKYARD_LOG_LEVEL,
DOCKYARD_STORAGE_BACKEND, ...).`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and its schema",
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd, configSchemaCmd)

	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configOut, "output", "o", "", "write the schema into this directory")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	path, err := configFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if app.ConfigErr != nil {
		fmt.Fprintln(os.Stderr, app.Theme.ErrorStyle.Render(styles.IconWarning+" "+app.ConfigErr.Error()))
		fmt.Fprintln(os.Stderr, app.Theme.Subtle.Render("Showing defaults."))
	}
	if configJSON {
		return writeJSON(os.Stdout, app.Config)
	}
	return writeTOML(os.Stdout, app.Config)
}

func writeTOML(w io.Writer, cfg *config.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := configFilePath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, statErr)
	}

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	schemaPath, err := config.WriteSchemaFile(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	fmt.Printf("%s Wrote %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), app.Theme.Highlight.Render(path))
	fmt.Printf("%s Wrote %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), app.Theme.Highlight.Render(schemaPath))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configOut != "" {
		path, err := config.WriteSchemaFile(configOut)
		if err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	schema, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	_, err = fmt.Println(string(schema))
	return err
}

func configFilePath() (string, error) {
	if app != nil && app.Manager != nil {
		return app.Manager.GetConfigFile(), nil
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}
