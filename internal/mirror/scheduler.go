package mirror

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sadopc/reviewr/internal/model"
)

// Source supplies the snapshot to push.
type Source interface {
	Snapshot() model.AppData
}

// Scheduler pushes the snapshot on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Pusher   Pusher
	Source   Source
	Ctx      context.Context
	OnPushed func(time.Time)
}

// NewScheduler creates a scheduler using six-field (seconds) cron specs.
func NewScheduler(ctx context.Context, p Pusher, src Source) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Pusher: p,
		Source: src,
		Ctx:    ctx,
	}
}

// Register adds the periodic push.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.pushTask); err != nil {
		return fmt.Errorf("register push task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] mirror scheduler started")
}

// Stop stops the scheduler and waits for a running push.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] mirror scheduler stopped")
}

// PushNow pushes immediately.
func (s *Scheduler) PushNow() error {
	if err := s.Pusher.Push(s.Ctx, s.Source.Snapshot()); err != nil {
		return err
	}
	if s.OnPushed != nil {
		s.OnPushed(time.Now())
	}
	return nil
}

func (s *Scheduler) pushTask() {
	if err := s.PushNow(); err != nil {
		log.Printf("[ERROR] scheduled push: %v", err)
		return
	}
	log.Println("[INFO] scheduled push complete")
}
