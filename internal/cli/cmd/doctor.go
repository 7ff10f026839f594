package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, storage and saved layouts",
	Long: `Doctor checks that dockyard can run:

- the config file loads and validates
- the layout store opens (and the SQLite schema is migrated)
- every saved layout decodes
- the log directory is writable when file logging is on`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	report := styles.DoctorReport{Checks: []styles.DoctorCheck{
		checkConfig(app),
		checkStorage(app),
		checkLayouts(app),
		checkLogDir(app.Config),
	}}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OK() {
		return fmt.Errorf("some checks failed")
	}
	return nil
}

func checkConfig(app *cli.App) styles.DoctorCheck {
	c := styles.DoctorCheck{Name: "Configuration"}
	path, _ := configFilePath()
	switch {
	case app.ConfigErr != nil:
		c.Status = styles.CheckFailed
		c.Detail = app.ConfigErr.Error()
	case path == "":
		c.Status = styles.CheckWarn
		c.Detail = "cannot resolve config path, using defaults"
	default:
		if _, err := os.Stat(path); err != nil {
			c.Status = styles.CheckWarn
			c.Detail = path + " not found, using defaults (see 'dockyard config init')"
			return c
		}
		c.Detail = path
	}
	return c
}

func checkStorage(app *cli.App) styles.DoctorCheck {
	c := styles.DoctorCheck{Name: fmt.Sprintf("Layout store (%s)", app.Config.Storage.Backend)}
	detail, err := app.CheckStorage(app.Ctx())
	if err != nil {
		c.Status = styles.CheckFailed
		c.Detail = err.Error()
		return c
	}
	c.Detail = fmt.Sprintf("%s, %s", app.StoragePath, detail)
	return c
}

func checkLayouts(app *cli.App) styles.DoctorCheck {
	c := styles.DoctorCheck{Name: "Saved layouts"}
	checks, err := app.VerifyLayoutsUC.Execute(app.Ctx())
	if err != nil {
		c.Status = styles.CheckFailed
		c.Detail = err.Error()
		return c
	}
	broken := 0
	for _, lc := range checks {
		if lc.Err != nil {
			broken++
		}
	}
	c.Detail = fmt.Sprintf("%d decode, %d broken", len(checks)-broken, broken)
	if broken > 0 {
		c.Status = styles.CheckWarn
		c.Detail += " (see 'dockyard layout verify')"
	}
	return c
}

func checkLogDir(cfg *config.Config) styles.DoctorCheck {
	c := styles.DoctorCheck{Name: "Log directory"}
	if !cfg.Logging.EnableFileLog {
		c.Status = styles.CheckWarn
		c.Detail = "file logging disabled"
		return c
	}
	dir := logDir(cfg)
	if dir == "" {
		c.Status = styles.CheckFailed
		c.Detail = "cannot resolve log directory"
		return c
	}
	if err := os.MkdirAll(dir, docsDirPerm); err != nil {
		c.Status = styles.CheckFailed
		c.Detail = err.Error()
		return c
	}
	c.Detail = dir
	return c
}
