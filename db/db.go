package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"cyclehud/cycle"
	"cyclehud/model"

	_ "github.com/mattn/go-sqlite3"
)

// Store is what the controller needs from the persistence layer. A load
// failure must never be fatal for the caller: the controller starts with
// empty cycles and carries on.
type Store interface {
	Load() (*cycle.CycleData, error)
	Save(data *cycle.CycleData) error
	Close()
}

type SQLiteStore struct {
	db *sql.DB
}

func initStore(db *sql.DB) error {
	sqlStmt := `
	create table if not exists cycle_entries(
		slot text not null,
		position int not null,
		form_spec text not null,
		name text not null,
		kind int not null,
		color_r int not null, color_g int not null, color_b int not null, color_a int not null,
		two_handed bool not null,
		has_count bool not null,
		count int not null,
		primary key (slot, position)
	);`

	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not init cycle store: %w", err)
	}
	return nil
}

// ConnectDB opens (and if needed initializes) a cycle store at path.
// ":memory:" works for tests.
func ConnectDB(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	if err := initStore(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db}, nil
}

// ConnectOrFallback opens the store at path like ConnectDB, but a file that
// cannot be opened as a cycle store (corrupt, unreadable) degrades to an
// in-memory store instead of an error. Toggles made in that session are not
// durable, which beats refusing to start.
func ConnectOrFallback(path string) (*SQLiteStore, error) {
	store, err := ConnectDB(path)
	if err == nil {
		return store, nil
	}

	slog.Warn("could not open cycle store, continuing without persistence",
		"path", path, "error", err)
	return ConnectDB(":memory:")
}

// Load reads all four rotations in their stored order. A fresh store yields
// empty cycles, not an error.
func (s *SQLiteStore) Load() (*cycle.CycleData, error) {
	rows, err := s.db.Query(
		`select slot, form_spec, name, kind,
		    color_r, color_g, color_b, color_a,
		    two_handed, has_count, count
		from cycle_entries
		order by slot, position`)
	if err != nil {
		return nil, fmt.Errorf("could not read cycle entries: %w", err)
	}
	defer rows.Close()

	bySlot := make(map[string][]model.CycleEntry)

	for rows.Next() {
		var slot string
		var entry model.CycleEntry
		var kind int

		err = rows.Scan(&slot, &entry.FormSpec, &entry.Name, &kind,
			&entry.Color.R, &entry.Color.G, &entry.Color.B, &entry.Color.A,
			&entry.TwoHanded, &entry.HasCount, &entry.Count)
		if err != nil {
			return nil, fmt.Errorf("could not scan cycle entry: %w", err)
		}

		entry.Kind = model.EntryKind(kind)
		bySlot[slot] = append(bySlot[slot], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate cycle entries: %w", err)
	}

	data := cycle.New()
	for _, slot := range model.SlotActions {
		if entries, ok := bySlot[slot.String()]; ok {
			data.Replace(slot, entries)
		}
	}

	return data, nil
}

// Save replaces the stored rotations with the current ones in a single
// transaction, so a failed write leaves the previous snapshot intact.
func (s *SQLiteStore) Save(data *cycle.CycleData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin cycle save: %w", err)
	}

	if _, err := tx.Exec(`delete from cycle_entries`); err != nil {
		tx.Rollback()
		return fmt.Errorf("could not clear cycle entries: %w", err)
	}

	for _, slot := range model.SlotActions {
		for position, entry := range data.Entries(slot) {
			_, err := tx.Exec(
				`insert into cycle_entries(
					slot, position, form_spec, name, kind,
					color_r, color_g, color_b, color_a,
					two_handed, has_count, count)
				values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				slot.String(), position, entry.FormSpec, entry.Name, int(entry.Kind),
				entry.Color.R, entry.Color.G, entry.Color.B, entry.Color.A,
				entry.TwoHanded, entry.HasCount, entry.Count)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("could not store entry %s in %s: %w", entry.FormSpec, slot, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit cycle save: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("error closing cycle store", "error", err)
	}
}
