package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	logsFollow    bool
	logsLines     int
	logsClearAll  bool
	logsOlderThan int
)

const (
	defaultLogsLines   = 50
	defaultLogsMaxDays = 7
	followInterval     = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs [run]",
	Short: "View log files",
	Long: `View dockyard log files. Each run writes its own file when
logging.enable_file_log is set.

Without arguments, lists the available runs.
With a run ID (or a unique part of it, or "latest"), shows that run's log.

Examples:
  dockyard logs                  # List runs
  dockyard logs latest           # Last lines of the newest run
  dockyard logs 205106           # Run whose ID contains 205106
  dockyard logs -f latest        # Follow the newest run
  dockyard logs -n 200 latest    # Show the last 200 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove old log files",
	Long: `Remove log files older than --older-than days (default 7).
Use --all to remove every log file.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all log files")
	logsClearCmd.Flags().IntVar(&logsOlderThan, "older-than", defaultLogsMaxDays, "remove logs older than this many days")
}

// RunLog is one log file in the log directory.
type RunLog struct {
	ID        string
	Path      string
	Size      int64
	StartedAt time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	runs, err := getRuns(logDir(app.Config))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		listRuns(out, runs, app.Theme, app.Config.Logging.EnableFileLog)
		return nil
	}

	run, err := findRun(runs, args[0])
	if err != nil {
		return err
	}
	if logsFollow {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return tailRun(ctx, out, run.Path, app.Theme)
	}
	return showRun(out, run.Path, logsLines, app.Theme)
}

// logDir returns the configured log directory or the XDG default.
func logDir(cfg *config.Config) string {
	if cfg != nil && cfg.Logging.LogDir != "" {
		return cfg.Logging.LogDir
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}

// getRuns returns the run logs in dir, newest first.
func getRuns(dir string) ([]RunLog, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var runs []RunLog
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		started, ok := logging.ParseRunFilename(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		runs = append(runs, RunLog{
			ID:        started.Format("20060102_150405"),
			Path:      filepath.Join(dir, entry.Name()),
			Size:      info.Size(),
			StartedAt: started,
		})
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

func listRuns(w io.Writer, runs []RunLog, theme *styles.Theme, fileLogging bool) {
	if len(runs) == 0 {
		msg := "No log files found."
		if !fileLogging {
			msg += " Set logging.enable_file_log = true to record runs."
		}
		fmt.Fprintln(w, theme.Subtle.Render(msg))
		return
	}

	fmt.Fprintln(w, theme.Title.Render("Runs (newest first):"))
	fmt.Fprintln(w)
	for _, r := range runs {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			theme.Highlight.Render(r.ID),
			theme.Subtle.Render(r.StartedAt.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render("("+formatSize(r.Size)+")"),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Subtle.Render("Use 'dockyard logs <id>' to view a run"))
}

// findRun resolves query to exactly one run. "latest" is the newest run.
func findRun(runs []RunLog, query string) (*RunLog, error) {
	if len(runs) == 0 {
		return nil, errors.New("no log files found")
	}
	if query == "latest" {
		return &runs[0], nil
	}

	var matches []*RunLog
	for i := range runs {
		if runs[i].ID == query {
			return &runs[i], nil
		}
		if strings.Contains(runs[i].ID, query) {
			matches = append(matches, &runs[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no run matching '%s'", query)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return nil, fmt.Errorf("multiple runs match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showRun prints the last n lines of a log file.
func showRun(w io.Writer, path string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range lines {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// tailRun follows a log file until ctx is done.
func tailRun(ctx context.Context, w io.Writer, path string, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}
	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(w)

	reader := bufio.NewReader(file)
	pending := ""
	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		switch {
		case err == nil:
			fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
			continue
		case !errors.Is(err, io.EOF):
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// logEntry is the subset of a JSON log line that gets displayed.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine styles a line by level. JSON lines are reformatted.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case containsAny(line, "ERR", "error"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "warn"):
		return theme.Highlight.Render(line)
	case containsAny(line, "DBG", "debug", "TRC"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var level string
	switch entry.Level {
	case "error", "fatal", "panic":
		level = theme.ErrorStyle.Render("ERR")
	case "warn":
		level = theme.Highlight.Render("WRN")
	case "info":
		level = theme.SuccessStyle.Render("INF")
	case "debug":
		level = theme.Subtle.Render("DBG")
	case "trace":
		level = theme.Subtle.Render("TRC")
	default:
		level = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), level, msg)
}

func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	runs, err := getRuns(logDir(app.Config))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}

	removed := clearRuns(out, runs, logsClearAll, time.Now().AddDate(0, 0, -logsOlderThan), app.Theme)
	if removed == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("No logs older than %d days", logsOlderThan)))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d log file(s)", removed)))
	return nil
}

// clearRuns removes runs started before cutoff, or all of them.
func clearRuns(w io.Writer, runs []RunLog, all bool, cutoff time.Time, theme *styles.Theme) int {
	removed := 0
	for _, r := range runs {
		if !all && !r.StartedAt.Before(cutoff) {
			continue
		}
		if err := os.Remove(r.Path); err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), r.ID, err)
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), r.ID, formatSize(r.Size))
		removed++
	}
	return removed
}
