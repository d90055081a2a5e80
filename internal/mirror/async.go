package mirror

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sadopc/reviewr/internal/model"
)

// Async pushes saved snapshots in the background, one at a time. A save
// that arrives while a push is in flight replaces any snapshot still queued,
// so the remote always ends on the newest one. Failures are logged and
// dropped. It satisfies store.Hook.
type Async struct {
	Pusher  Pusher
	Timeout time.Duration
	// OnPushed runs after each successful push.
	OnPushed func(time.Time)

	mu      sync.Mutex
	pending *model.AppData
	running bool
	wg      sync.WaitGroup
}

// NewAsync wraps p with a 15 second per-push timeout.
func NewAsync(p Pusher) *Async {
	return &Async{Pusher: p, Timeout: 15 * time.Second}
}

// Saved queues d and returns immediately.
func (a *Async) Saved(d model.AppData) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = &d
	if a.running {
		return
	}
	a.running = true
	a.wg.Add(1)
	go a.drain()
}

// drain pushes queued snapshots until none is left.
func (a *Async) drain() {
	defer a.wg.Done()
	for {
		a.mu.Lock()
		d := a.pending
		a.pending = nil
		if d == nil {
			a.running = false
			a.mu.Unlock()
			return
		}
		a.mu.Unlock()
		a.push(*d)
	}
}

func (a *Async) push(d model.AppData) {
	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	if err := a.Pusher.Push(ctx, d); err != nil {
		log.Printf("[WARN] mirror push failed: %v", err)
		return
	}
	if a.OnPushed != nil {
		a.OnPushed(time.Now())
	}
}

// Wait blocks until every queued push has finished.
func (a *Async) Wait() {
	a.wg.Wait()
}
