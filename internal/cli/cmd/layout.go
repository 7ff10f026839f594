package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	layoutJSON  bool
	layoutTable bool
	layoutOut   string
	layoutName  string
)

var layoutCmd = &cobra.Command{
	Use:     "layout",
	Aliases: []string{"layouts"},
	Short:   "Manage saved layouts",
	Long: `Inspect, export, import and delete saved layouts.

Layouts are XML documents describing every arrangement of the docking
surface. They are written by the demo ('s') and stored in the configured
backend (SQLite by default, or a directory of JSON files).

Run without arguments to list saved layouts.`,
	RunE: runLayoutList,
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	RunE:  runLayoutList,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved layout document",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutShow,
}

var layoutExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a saved layout document to a file",
	Long: `Write a saved layout document to a file, or to stdout when --output is
not given.

Example:
  dockyard layout export work -o work.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutExport,
}

var layoutImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and store a layout document",
	Long: `Validate a layout document and store it. The layout name defaults to
the file name without its extension. Use '-' to read from stdin.

Example:
  dockyard layout import work.xml --name work`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutImport,
}

var layoutDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutDelete,
}

var layoutVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Decode every saved layout and report broken ones",
	RunE:  runLayoutVerify,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd, layoutShowCmd, layoutExportCmd, layoutImportCmd, layoutDeleteCmd, layoutVerifyCmd)

	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON")
	layoutListCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON")
	layoutListCmd.Flags().BoolVar(&layoutTable, "table", false, "output as a plain table")
	layoutExportCmd.Flags().StringVarP(&layoutOut, "output", "o", "", "destination file")
	layoutImportCmd.Flags().StringVar(&layoutName, "name", "", "layout name (defaults to the file name)")
	layoutVerifyCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON")
}

// layoutSummary is the JSON form of a saved layout, without the document.
type layoutSummary struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Arrangements int       `json:"arrangements"`
	Keys         int       `json:"keys"`
	SavedAt      time.Time `json:"saved_at"`
}

type layoutCheckJSON struct {
	Name         string `json:"name"`
	Arrangements int    `json:"arrangements"`
	Keys         int    `json:"keys"`
	Error        string `json:"error,omitempty"`
}

func runLayoutList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layouts, err := app.ListLayoutsUC.Execute(app.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	switch {
	case layoutJSON:
		summaries := make([]layoutSummary, 0, len(layouts))
		for _, l := range layouts {
			summaries = append(summaries, layoutSummary{
				Name:         l.Name,
				Version:      l.Version,
				Arrangements: l.Arrangements,
				Keys:         l.Keys,
				SavedAt:      l.SavedAt,
			})
		}
		return writeJSON(os.Stdout, summaries)
	case layoutTable:
		return outputLayoutsTable(os.Stdout, layouts)
	default:
		fmt.Println(styles.NewLayoutsCLIRenderer(app.Theme).RenderList(layouts))
		return nil
	}
}

func outputLayoutsTable(out io.Writer, layouts []*entity.SavedLayout) error {
	if len(layouts) == 0 {
		_, err := fmt.Fprintln(out, "No saved layouts found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVERSION\tWINDOWS\tKEYS\tSAVED")
	for _, l := range layouts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			l.Name,
			l.Version,
			l.Arrangements,
			l.Keys,
			l.SavedAt.Local().Format(time.DateTime),
		)
	}
	return w.Flush()
}

func runLayoutShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layout, err := getLayout(args[0])
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(layout.Document)
	return err
}

func runLayoutExport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layout, err := getLayout(args[0])
	if err != nil {
		return err
	}
	if layoutOut == "" || layoutOut == "-" {
		_, err = os.Stdout.Write(layout.Document)
		return err
	}
	if err := os.WriteFile(layoutOut, layout.Document, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", layoutOut, err)
	}
	fmt.Println(styles.NewLayoutsCLIRenderer(app.Theme).RenderSaved(layout))
	return nil
}

func runLayoutImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	path := args[0]
	name := layoutName
	if name == "" {
		name = layoutNameFromPath(path)
	}

	var (
		doc []byte
		err error
	)
	if path == "-" {
		doc, err = io.ReadAll(os.Stdin)
	} else {
		doc, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	layout, err := app.ImportLayoutUC.SaveDocument(app.Ctx(), name, doc)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return fmt.Errorf("import layout: %w", err)
	}
	fmt.Println(renderer.RenderSaved(layout))
	return nil
}

func runLayoutDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.DeleteLayoutUC.Execute(app.Ctx(), args[0]); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	fmt.Println(styles.NewLayoutsCLIRenderer(app.Theme).RenderDeleted(args[0]))
	return nil
}

func runLayoutVerify(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	checks, err := app.VerifyLayoutsUC.Execute(app.Ctx())
	if err != nil {
		return fmt.Errorf("verify layouts: %w", err)
	}

	if layoutJSON {
		out := make([]layoutCheckJSON, 0, len(checks))
		for _, c := range checks {
			j := layoutCheckJSON{Name: c.Name, Arrangements: c.Arrangements, Keys: c.Keys}
			if c.Err != nil {
				j.Error = c.Err.Error()
			}
			out = append(out, j)
		}
		if err := writeJSON(os.Stdout, out); err != nil {
			return err
		}
	} else {
		fmt.Println(styles.NewLayoutsCLIRenderer(app.Theme).RenderVerify(checks))
	}

	broken := 0
	for _, c := range checks {
		if c.Err != nil {
			broken++
		}
	}
	if broken > 0 {
		return fmt.Errorf("%d of %d layout(s) failed to decode", broken, len(checks))
	}
	return nil
}

func getLayout(name string) (*entity.SavedLayout, error) {
	layout, err := app.ListLayoutsUC.Get(app.Ctx(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrLayoutNotFound) {
			return nil, fmt.Errorf("no layout named %q (see 'dockyard layout list')", name)
		}
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return layout, nil
}

// layoutNameFromPath derives a layout name from a document file name.
func layoutNameFromPath(path string) string {
	if path == "-" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
