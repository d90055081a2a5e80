package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/mirror"
	"github.com/sadopc/reviewr/internal/store"
)

var (
	flagConfig string
	flagDB     string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "reviewr",
	Short: "Weekly review and monthly savings tracker",
	Long:  "Record weekly strategy reviews and monthly finances, and track progress toward savings goals.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig is the shared config path used by all commands.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.Storage.DBPath = flagDB
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// session bundles the open store with its mirror hook so commands can wait
// for in-flight pushes before exiting.
type session struct {
	cfg   config.Config
	store *store.Store
	async *mirror.Async
}

// openSession loads config and opens the store. When the mirror is enabled
// every write is pushed in the background.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s, err := store.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sess := &session{cfg: cfg, store: s}
	if cfg.Mirror.Enabled {
		client, err := mirror.NewClient(cfg.Mirror)
		if err != nil {
			s.Close()
			return nil, err
		}
		sess.async = mirror.NewAsync(client)
		sess.async.OnPushed = func(at time.Time) {
			if err := s.MarkSynced(store.SettingLastPush, at); err != nil {
				log.Printf("[WARN] record push time: %v", err)
			}
		}
		s.SetHook(sess.async)
	}
	return sess, nil
}

// Close waits for pending pushes, then closes the store.
func (s *session) Close() error {
	if s.async != nil {
		s.async.Wait()
	}
	return s.store.Close()
}

func progress(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
