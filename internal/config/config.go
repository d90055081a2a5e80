package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sadopc/reviewr/internal/engine"
)

// Config holds all reviewr configuration.
type Config struct {
	Goals    GoalsConfig    `toml:"goals"`
	Rules    RulesConfig    `toml:"rules"`
	Currency CurrencyConfig `toml:"currency"`
	Storage  StorageConfig  `toml:"storage"`
	Mirror   MirrorConfig   `toml:"mirror"`
}

// GoalsConfig holds the cumulative savings targets.
type GoalsConfig struct {
	Emergency     float64 `toml:"emergency"`
	Car           float64 `toml:"car"`
	Travel        float64 `toml:"travel"`
	LifestyleLock float64 `toml:"lifestyle_lock"`
}

// RulesConfig holds per-month minimums and the weekly action target.
type RulesConfig struct {
	EmergencyMin  float64 `toml:"emergency_min"`
	TravelMin     float64 `toml:"travel_min"`
	TargetActions int     `toml:"target_actions"`
}

// CurrencyConfig names the two currencies and the rate between them.
type CurrencyConfig struct {
	Local       string  `toml:"local"`
	Foreign     string  `toml:"foreign"`
	ForeignRate float64 `toml:"foreign_rate"`
}

// StorageConfig locates the local database.
type StorageConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// MirrorConfig holds the remote table mirror settings.
type MirrorConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url,omitempty"`
	APIKey   string `toml:"api_key,omitempty"`
	Table    string `toml:"table"`
	RowID    string `toml:"row_id"`
	PushCron string `toml:"push_cron"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Goals: GoalsConfig{
			Emergency:     1350000,
			Car:           1500000,
			Travel:        1500,
			LifestyleLock: 400000,
		},
		Rules: RulesConfig{
			EmergencyMin:  50000,
			TravelMin:     250,
			TargetActions: 4,
		},
		Currency: CurrencyConfig{
			Local:       "KES",
			Foreign:     "USD",
			ForeignRate: 130,
		},
		Mirror: MirrorConfig{
			Table:    "user_data",
			RowID:    "user_1",
			PushCron: "0 */15 * * * *",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reviewr")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "reviewr")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment variables override the file.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join(ConfigDir(), "reviewr.db")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REVIEWR_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("REVIEWR_MIRROR_URL"); v != "" {
		cfg.Mirror.URL = v
		cfg.Mirror.Enabled = true
	}
	if v := os.Getenv("REVIEWR_MIRROR_KEY"); v != "" {
		cfg.Mirror.APIKey = v
	}
	if v := os.Getenv("REVIEWR_MIRROR_CRON"); v != "" {
		cfg.Mirror.PushCron = v
	}
}

// Validate checks the values the engine takes on trust.
func (c Config) Validate() error {
	var errs []error
	if c.Goals.Emergency <= 0 {
		errs = append(errs, errors.New("goals.emergency must be positive"))
	}
	if c.Goals.Car <= 0 {
		errs = append(errs, errors.New("goals.car must be positive"))
	}
	if c.Goals.Travel <= 0 {
		errs = append(errs, errors.New("goals.travel must be positive"))
	}
	if c.Goals.LifestyleLock < 0 {
		errs = append(errs, errors.New("goals.lifestyle_lock must not be negative"))
	}
	if c.Currency.ForeignRate <= 0 {
		errs = append(errs, errors.New("currency.foreign_rate must be positive"))
	}
	if c.Rules.TargetActions <= 0 {
		errs = append(errs, errors.New("rules.target_actions must be positive"))
	}
	if c.Mirror.Enabled && c.Mirror.URL == "" {
		errs = append(errs, errors.New("mirror.url is required when the mirror is enabled"))
	}
	return errors.Join(errs...)
}

// Params converts the config into engine parameters.
func (c Config) Params() engine.Params {
	return engine.Params{
		Goals: engine.Goals{
			Emergency:     c.Goals.Emergency,
			Car:           c.Goals.Car,
			Travel:        c.Goals.Travel,
			LifestyleLock: c.Goals.LifestyleLock,
		},
		Rules: engine.Thresholds{
			EmergencyMin: c.Rules.EmergencyMin,
			TravelMin:    c.Rules.TravelMin,
		},
		TargetActions: c.Rules.TargetActions,
		ForeignRate:   c.Currency.ForeignRate,
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile is Save for an explicit path.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
