package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/mirror"
	"github.com/sadopc/reviewr/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror local data to the remote table",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local snapshot, overwriting the remote row",
	RunE:  runSyncPush,
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local data with the remote row",
	RunE:  runSyncPull,
}

var syncWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Push on the configured cron schedule until interrupted",
	RunE:  runSyncWatch,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show when the mirror was last pushed and pulled",
	RunE:  runSyncStatus,
}

func init() {
	syncCmd.AddCommand(syncPushCmd, syncPullCmd, syncWatchCmd, syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}

// openMirror opens a session with a configured mirror client. The session's
// own write hook stays off so a pull does not echo straight back.
func openMirror() (*session, *mirror.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := mirror.NewClient(cfg.Mirror)
	if err != nil {
		if errors.Is(err, mirror.ErrNotConfigured) {
			return nil, nil, errors.New("mirror not configured (set [mirror] url in config or REVIEWR_MIRROR_URL)")
		}
		return nil, nil, err
	}
	s, err := store.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return &session{cfg: cfg, store: s}, client, nil
}

func runSyncPush(_ *cobra.Command, _ []string) error {
	sess, client, err := openMirror()
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	progress("  Pushing to %s...\n", client.BaseURL)
	if err := client.Push(ctx, sess.store.Snapshot()); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	if err := sess.store.MarkSynced(store.SettingLastPush, time.Now()); err != nil {
		return err
	}
	fmt.Println("  Pushed.")
	return nil
}

func runSyncPull(_ *cobra.Command, _ []string) error {
	sess, client, err := openMirror()
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	progress("  Pulling from %s...\n", client.BaseURL)
	d, err := client.Pull(ctx)
	if err != nil {
		if errors.Is(err, mirror.ErrNoRemote) {
			return errors.New("remote row is empty, push first")
		}
		return fmt.Errorf("pull failed: %w", err)
	}
	if err := sess.store.Save(d); err != nil {
		return err
	}
	if err := sess.store.MarkSynced(store.SettingLastPull, time.Now()); err != nil {
		return err
	}
	fmt.Printf("  Pulled %d weeks and %d months\n", len(d.Weeks), len(d.Months))
	return nil
}

func runSyncWatch(_ *cobra.Command, _ []string) error {
	sess, client, err := openMirror()
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := mirror.NewScheduler(ctx, client, sess.store)
	sched.OnPushed = func(at time.Time) {
		if err := sess.store.MarkSynced(store.SettingLastPush, at); err != nil {
			log.Printf("[WARN] record push time: %v", err)
		}
	}
	if err := sched.Register(sess.cfg.Mirror.PushCron); err != nil {
		return err
	}

	log.Printf("[INFO] pushing on %q, Ctrl+C to stop", sess.cfg.Mirror.PushCron)
	sched.Start()
	<-ctx.Done()
	sched.Stop()
	return nil
}

func runSyncStatus(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	for _, k := range []struct{ label, key string }{
		{"Last push", store.SettingLastPush},
		{"Last pull", store.SettingLastPull},
	} {
		at, err := sess.store.LastSynced(k.key)
		if err != nil {
			return err
		}
		when := "never"
		if !at.IsZero() {
			when = at.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %s: %s\n", k.label, when)
	}
	return nil
}
