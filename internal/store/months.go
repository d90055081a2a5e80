package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/reviewr/internal/model"
)

// Month returns the stored month, or the all-zero record when absent.
func (s *Store) Month(id string) (model.MonthlyRecord, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM months WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewMonth(id), nil
	}
	if err != nil {
		return model.MonthlyRecord{}, fmt.Errorf("get month %s: %w", id, err)
	}

	var m model.MonthlyRecord
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return model.MonthlyRecord{}, fmt.Errorf("decode month %s: %w", id, err)
	}
	if m.Month == "" {
		m.Month = id
	}
	return m, nil
}

// CurrentMonth returns the month containing now, keyed in UTC.
func (s *Store) CurrentMonth(now time.Time) (model.MonthlyRecord, error) {
	return s.Month(model.MonthKey(now))
}

// PutMonth stores m, refusing to overwrite a submitted month.
func (s *Store) PutMonth(m model.MonthlyRecord) error {
	if err := s.writeMonth(m); err != nil {
		return err
	}
	s.notify()
	return nil
}

// SubmitMonth locks the month with a submission stamp.
func (s *Store) SubmitMonth(m model.MonthlyRecord, now time.Time) (model.MonthlyRecord, error) {
	stamp := now.UTC()
	m.Submitted = true
	m.SubmittedDate = &stamp
	if err := s.writeMonth(m); err != nil {
		return model.MonthlyRecord{}, err
	}
	s.notify()
	return m, nil
}

func (s *Store) writeMonth(m model.MonthlyRecord) error {
	if m.Month == "" {
		return errors.New("put month: empty id")
	}
	var submitted int
	err := s.db.QueryRow(`SELECT submitted FROM months WHERE id = ?`, m.Month).Scan(&submitted)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check month %s: %w", m.Month, err)
	}
	if submitted == 1 {
		return fmt.Errorf("put month %s: %w", m.Month, ErrSubmitted)
	}
	return upsertMonth(s.db, m)
}

func upsertMonth(db execer, m model.MonthlyRecord) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode month %s: %w", m.Month, err)
	}
	var submittedAt sql.NullString
	if m.SubmittedDate != nil {
		submittedAt = sql.NullString{String: m.SubmittedDate.UTC().Format(time.RFC3339), Valid: true}
	}
	_, err = db.Exec(
		`INSERT INTO months (id, data, submitted, submitted_at, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, submitted = excluded.submitted,
		 submitted_at = excluded.submitted_at, updated_at = excluded.updated_at`,
		m.Month, string(data), boolInt(m.Submitted), submittedAt, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put month %s: %w", m.Month, err)
	}
	return nil
}
