package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/mirror"
	"github.com/sadopc/reviewr/internal/model"
)

func withFlags(t *testing.T, cfgPath, db string) {
	t.Helper()
	oldCfg, oldDB := flagConfig, flagDB
	flagConfig, flagDB = cfgPath, db
	t.Cleanup(func() { flagConfig, flagDB = oldCfg, oldDB })
	t.Setenv("REVIEWR_DB_PATH", "")
	t.Setenv("REVIEWR_MIRROR_URL", "")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey(""))
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "abcd****wxyz", maskAPIKey("abcdefghijklmnopqrstuvwxyz"))
}

func TestTagList(t *testing.T) {
	assert.Equal(t, "—", tagList([]model.LeverageTag{}))
	assert.Equal(t, "Recruiter outreach, Interview prep",
		tagList([]model.LeverageTag{model.LeverageRecruiter, model.LeverageInterviewPrep}))
}

func TestGoalRow(t *testing.T) {
	g := engine.NewGoalCard("Emergency Fund", 1350000, 1350000, 50000)
	row := goalRow(g, "KES")
	require.Len(t, row, 6)
	assert.Equal(t, "Emergency Fund ✓", row[0])
	assert.Equal(t, "KES 1,350,000", row[1])
	assert.Equal(t, "100%", row[3])
}

func TestLoadConfigDefaultsWithDBOverride(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")
	withFlags(t, filepath.Join(dir, "missing.toml"), db)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, db, cfg.Storage.DBPath)
	assert.Equal(t, 4, cfg.Rules.TargetActions)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[goals]\nemergency = 0\n"), 0o600))
	withFlags(t, path, "")

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "goals.emergency")
}

func TestOpenSessionWithoutMirror(t *testing.T) {
	dir := t.TempDir()
	withFlags(t, filepath.Join(dir, "missing.toml"), filepath.Join(dir, "reviewr.db"))

	sess, err := openSession()
	require.NoError(t, err)
	assert.Nil(t, sess.async)

	_, err = sess.store.CurrentWeek(time.Now())
	require.NoError(t, err)
	require.NoError(t, sess.Close())
}

type slowFailingPusher struct{ delay time.Duration }

func (p slowFailingPusher) Push(ctx context.Context, _ model.AppData) error {
	time.Sleep(p.delay)
	return errors.New("offline")
}

func TestRedirectLogKeepsWarningsFromDrainingPushes(t *testing.T) {
	dir := t.TempDir()
	withFlags(t, filepath.Join(dir, "missing.toml"), filepath.Join(dir, "reviewr.db"))

	sess, err := openSession()
	require.NoError(t, err)
	sess.async = mirror.NewAsync(slowFailingPusher{delay: 50 * time.Millisecond})

	restore := redirectLog(sess)
	sess.async.Saved(model.EmptyAppData())
	restore()

	data, err := os.ReadFile(filepath.Join(dir, "reviewr.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[WARN] mirror push failed")
}
