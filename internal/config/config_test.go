package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/reviewr/internal/engine"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1350000.0, cfg.Goals.Emergency)
	assert.Equal(t, "user_data", cfg.Mirror.Table)
	assert.Equal(t, filepath.Join(dir, "reviewr", "reviewr.db"), cfg.Storage.DBPath)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsMatchEngine(t *testing.T) {
	assert.Equal(t, engine.DefaultParams, DefaultConfig().Params())
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[goals]
travel = 3000

[rules]
emergency_min = 60000

[mirror]
enabled = true
url = "https://example.supabase.co"
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, cfg.Goals.Travel)
	assert.Equal(t, 1500000.0, cfg.Goals.Car, "untouched keys keep defaults")
	assert.Equal(t, 60000.0, cfg.Rules.EmergencyMin)
	assert.Equal(t, 250.0, cfg.Rules.TravelMin)
	assert.True(t, cfg.Mirror.Enabled)
	assert.Equal(t, "user_1", cfg.Mirror.RowID)
}

func TestLoadFileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[goals\nbroken"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REVIEWR_DB_PATH", "/tmp/x.db")
	t.Setenv("REVIEWR_MIRROR_URL", "https://mirror.test")
	t.Setenv("REVIEWR_MIRROR_KEY", "secret")
	t.Setenv("REVIEWR_MIRROR_CRON", "*/30 * * * * *")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", cfg.Storage.DBPath)
	assert.Equal(t, "https://mirror.test", cfg.Mirror.URL)
	assert.True(t, cfg.Mirror.Enabled)
	assert.Equal(t, "secret", cfg.Mirror.APIKey)
	assert.Equal(t, "*/30 * * * * *", cfg.Mirror.PushCron)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Goals.Car = 0
	cfg.Currency.ForeignRate = -1
	cfg.Mirror.Enabled = true

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goals.car")
	assert.Contains(t, err.Error(), "foreign_rate")
	assert.Contains(t, err.Error(), "mirror.url")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Goals.Emergency = 2000000
	cfg.Mirror.URL = "https://example.test"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	info, err := os.Stat(ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2000000.0, loaded.Goals.Emergency)
	assert.Equal(t, "https://example.test", loaded.Mirror.URL)
}
