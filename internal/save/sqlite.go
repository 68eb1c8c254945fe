package save

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists save slots in a single-table SQLite database. Each slot is
// one row holding the JSON-encoded SaveData; the schema never needs to change
// when the save structure grows, because Migrate handles missing fields.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the save database at path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open save database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping save database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS saves (
			slot     INTEGER PRIMARY KEY,
			data     TEXT NOT NULL,
			saved_at TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create saves table: %w", err)
	}

	return &Store{db: db}, nil
}

// Load reads a slot. The second return is false if the slot has never been
// saved. Loaded data is always migrated before it is returned.
func (s *Store) Load(slot int) (*SaveData, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT data FROM saves WHERE slot = ?`, slot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load slot %d: %w", slot, err)
	}

	var data SaveData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false, fmt.Errorf("failed to decode slot %d: %w", slot, err)
	}
	data.Slot = slot
	Migrate(&data)
	return &data, true, nil
}

// Save writes a slot, stamping SavedAt and replacing any prior contents.
func (s *Store) Save(data *SaveData) error {
	data.SavedAt = time.Now().UTC().Format(time.RFC3339)

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode slot %d: %w", data.Slot, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
	`, data.Slot, string(raw), data.SavedAt)
	if err != nil {
		return fmt.Errorf("failed to save slot %d: %w", data.Slot, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
