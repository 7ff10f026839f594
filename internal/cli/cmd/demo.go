package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	demoLayout string
	demoName   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive docking surface",
	Long: `Open a docking surface with five views and a documents area.

Drag tabs with the mouse onto the edges of a container to split it, onto
its center to join it, or grab a divider to resize. Right click a tab for
the context menu. Floating windows are moved by their border and closed
with [×].

Keys:
  1-5   toggle a view        x   close the focused tab
  D     detach into window   o/O open/close a document
  s/l   save/load layout     r   reset to the default layout
  ?     help                 q   quit`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoLayout, "layout", "", "saved layout to open (defaults to layout.autoload)")
	demoCmd.Flags().StringVar(&demoName, "name", "", "layout name used by save and load (defaults to --layout or \"demo\")")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config
	log := logging.FromContext(app.Ctx())

	autoload := demoLayout
	if autoload == "" {
		autoload = cfg.Layout.Autoload
	}
	name := demoName
	if name == "" {
		name = demoLayout
	}

	m, err := model.NewDemoModel(app.Ctx(), app.Theme, model.DemoConfig{
		Options:      cli.DockingOptions(cfg),
		Codec:        app.Codec,
		Layouts:      app.Layouts,
		LayoutName:   name,
		Autoload:     autoload,
		DetachWidth:  cfg.Layout.DetachWidth,
		DetachHeight: cfg.Layout.DetachHeight,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(c *config.Config) {
			p.Send(model.ConfigChangedMsg{
				Options: cli.DockingOptions(c),
				Theme:   styles.NewTheme(c),
			})
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	_, err = p.Run()
	return err
}
