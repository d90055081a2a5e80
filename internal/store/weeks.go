package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/reviewr/internal/model"
)

// maxWeekSkips bounds how far CurrentWeek walks past submitted weeks.
const maxWeekSkips = 52

func (s *Store) Week(id string) (model.WeeklyRecord, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM weeks WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WeeklyRecord{}, fmt.Errorf("week %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.WeeklyRecord{}, fmt.Errorf("get week %s: %w", id, err)
	}

	var w model.WeeklyRecord
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return model.WeeklyRecord{}, fmt.Errorf("decode week %s: %w", id, err)
	}
	if w.ID == "" {
		w.ID = id
	}
	return w, nil
}

// CurrentWeek returns the week being reviewed at now: the week ending on the
// Sunday on or after now, skipping weeks already submitted. A week that was
// never stored comes back empty and unsaved.
func (s *Store) CurrentWeek(now time.Time) (model.WeeklyRecord, error) {
	sunday := model.WeekEnding(now)
	for i := 0; i < maxWeekSkips; i++ {
		w, err := s.Week(sunday.Format(model.WeekKeyLayout))
		if errors.Is(err, ErrNotFound) {
			return model.NewWeek(sunday), nil
		}
		if err != nil {
			return model.WeeklyRecord{}, err
		}
		if !w.Submitted {
			return w, nil
		}
		sunday = sunday.AddDate(0, 0, 7)
	}
	return model.NewWeek(sunday), nil
}

// PutWeek stores w, refusing to overwrite a submitted week.
func (s *Store) PutWeek(w model.WeeklyRecord) error {
	if err := s.writeWeek(w); err != nil {
		return err
	}
	s.notify()
	return nil
}

// SubmitWeek locks w and stores it.
func (s *Store) SubmitWeek(w model.WeeklyRecord) (model.WeeklyRecord, error) {
	w.Submitted = true
	if err := s.writeWeek(w); err != nil {
		return model.WeeklyRecord{}, err
	}
	s.notify()
	return w, nil
}

func (s *Store) writeWeek(w model.WeeklyRecord) error {
	if w.ID == "" {
		return errors.New("put week: empty id")
	}
	if locked, err := s.weekSubmitted(w.ID); err != nil {
		return err
	} else if locked {
		return fmt.Errorf("put week %s: %w", w.ID, ErrSubmitted)
	}
	return upsertWeek(s.db, w)
}

func (s *Store) weekSubmitted(id string) (bool, error) {
	var submitted int
	err := s.db.QueryRow(`SELECT submitted FROM weeks WHERE id = ?`, id).Scan(&submitted)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check week %s: %w", id, err)
	}
	return submitted == 1, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func upsertWeek(db execer, w model.WeeklyRecord) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode week %s: %w", w.ID, err)
	}
	_, err = db.Exec(
		`INSERT INTO weeks (id, data, submitted, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, submitted = excluded.submitted, updated_at = excluded.updated_at`,
		w.ID, string(data), boolInt(w.Submitted), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put week %s: %w", w.ID, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
