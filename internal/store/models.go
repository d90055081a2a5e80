package store

import (
	"errors"

	"github.com/sadopc/reviewr/internal/model"
)

var (
	// ErrSubmitted is returned when a locked record would be changed.
	ErrSubmitted = errors.New("record already submitted")
	// ErrNotFound is returned for a record that was never stored.
	ErrNotFound = errors.New("record not found")
)

// Hook is told about every snapshot the store persists.
type Hook interface {
	Saved(model.AppData)
}

// HookFunc adapts a function to Hook.
type HookFunc func(model.AppData)

func (f HookFunc) Saved(d model.AppData) { f(d) }

type Setting struct {
	Key   string
	Value string
}

// Settings keys for sync bookkeeping.
const (
	SettingLastPush = "last_push_at"
	SettingLastPull = "last_pull_at"
)
