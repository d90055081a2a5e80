package store

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/sadopc/reviewr/internal/model"
)

// Snapshot loads every record. It never fails: rows that cannot be decoded
// are skipped, and a failed query yields whatever was read so far.
func (s *Store) Snapshot() model.AppData {
	d := model.EmptyAppData()

	rows, err := s.db.Query(`SELECT id, data FROM weeks`)
	if err != nil {
		log.Printf("[WARN] load weeks: %v", err)
		return d
	}
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			log.Printf("[WARN] scan week: %v", err)
			continue
		}
		var w model.WeeklyRecord
		if err := json.Unmarshal([]byte(data), &w); err != nil {
			log.Printf("[WARN] skipping corrupt week %s: %v", id, err)
			continue
		}
		if w.ID == "" {
			w.ID = id
		}
		d.Weeks[id] = w
	}
	if err := rows.Err(); err != nil {
		log.Printf("[WARN] iterate weeks: %v", err)
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT id, data FROM months`)
	if err != nil {
		log.Printf("[WARN] load months: %v", err)
		return d
	}
	defer rows.Close()
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			log.Printf("[WARN] scan month: %v", err)
			continue
		}
		var m model.MonthlyRecord
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			log.Printf("[WARN] skipping corrupt month %s: %v", id, err)
			continue
		}
		if m.Month == "" {
			m.Month = id
		}
		d.Months[id] = m
	}
	if err := rows.Err(); err != nil {
		log.Printf("[WARN] iterate months: %v", err)
	}
	return d
}

// Save replaces every stored record with d. Submission locks do not apply;
// this is the bulk path used by import and pull.
func (s *Store) Save(d model.AppData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM weeks`); err != nil {
		return fmt.Errorf("clear weeks: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM months`); err != nil {
		return fmt.Errorf("clear months: %w", err)
	}
	for id, w := range d.Weeks {
		if w.ID == "" {
			w.ID = id
		}
		if err := upsertWeek(tx, w); err != nil {
			return err
		}
	}
	for id, m := range d.Months {
		if m.Month == "" {
			m.Month = id
		}
		if err := upsertMonth(tx, m); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	s.notify()
	return nil
}

// ImportJSON replaces the stored data with web-app JSON read from r.
// Unparseable input is rejected rather than wiping the store.
func (s *Store) ImportJSON(r io.Reader) (model.AppData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return model.AppData{}, fmt.Errorf("read import: %w", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return model.AppData{}, fmt.Errorf("import: %w", err)
	}
	d := model.ParseAppData(raw)
	if err := s.Save(d); err != nil {
		return model.AppData{}, err
	}
	return d, nil
}

// ExportJSON writes the snapshot in the web-app format.
func (s *Store) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Snapshot()); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
