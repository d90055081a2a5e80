package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive review dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	defer redirectLog(sess)()

	save := config.Save
	if flagConfig != "" {
		path := flagConfig
		save = func(cfg config.Config) error { return config.SaveFile(path, cfg) }
	}

	app := tui.NewApp(sess.store, sess.cfg, save)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLog sends log output to the log file while the TUI owns the
// terminal, since log lines would corrupt the alternate screen. The returned
// func closes the session first so warnings from pushes still draining at
// exit land in the file, then restores stderr.
func redirectLog(sess *session) func() {
	logFile, err := openLog(sess.cfg)
	if err != nil {
		return func() { sess.Close() }
	}
	log.SetOutput(logFile)
	return func() {
		sess.Close()
		log.SetOutput(os.Stderr)
		logFile.Close()
	}
}

func openLog(cfg config.Config) (*os.File, error) {
	dir := config.ConfigDir()
	if cfg.Storage.DBPath != "" && cfg.Storage.DBPath != ":memory:" {
		dir = filepath.Dir(cfg.Storage.DBPath)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "reviewr.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path derived from config
}
