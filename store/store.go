// Package store persists events and registrations in a SQLite file.
// File: store/store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"club-events/logger"
	"club-events/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// schema keeps AUTOINCREMENT so ids are never reused after a delete.
const schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	club TEXT,
	date TEXT,
	description TEXT
);

CREATE TABLE IF NOT EXISTS registrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	email TEXT,
	event_id INTEGER,
	attended INTEGER DEFAULT 0
);
`

// Store wraps the bun handle. Every method runs a single auto-committed statement.
type Store struct {
	db *bun.DB
}

// Open connects to the SQLite database at path, creating the file if needed.
func Open(path string) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, errors.Join(models.ErrStorage, err))
	}
	// a single writer avoids "database is locked" under concurrent requests
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	logger.Info.Printf("Open: using sqlite database at %s", path)
	return &Store{db: db}, nil
}

// Init creates both tables when they are missing. Safe to call on every start.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return storageErr("init schema", err)
	}
	return nil
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// ---------------- events ----------------

// CreateEvent inserts e and sets its assigned ID.
func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	e.ID = 0
	if _, err := s.db.NewInsert().Model(e).Returning("id").Exec(ctx); err != nil {
		return storageErr("create event", err)
	}
	return nil
}

// ListEvents returns events in id order. A non-empty club keeps only events
// whose club equals it exactly.
func (s *Store) ListEvents(ctx context.Context, club string) ([]models.Event, error) {
	events := make([]models.Event, 0)
	q := s.db.NewSelect().Model(&events).OrderExpr("id ASC")
	if club != "" {
		q = q.Where("club = ?", club)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, storageErr("list events", err)
	}
	return events, nil
}

// ListClubs returns the distinct club names in alphabetical order.
func (s *Store) ListClubs(ctx context.Context) ([]string, error) {
	clubs := make([]string, 0)
	err := s.db.NewSelect().
		Model((*models.Event)(nil)).
		Distinct().
		Column("club").
		OrderExpr("club ASC").
		Scan(ctx, &clubs)
	if err != nil {
		return nil, storageErr("list clubs", err)
	}
	return clubs, nil
}

// GetEvent returns the event with id or an error wrapping models.ErrNotFound.
func (s *Store) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	e := new(models.Event)
	err := s.db.NewSelect().Model(e).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("get event", err)
	}
	return e, nil
}

// ---------------- registrations ----------------

// CreateRegistration inserts r with attended=false. The event id is stored as given.
func (s *Store) CreateRegistration(ctx context.Context, r *models.Registration) error {
	r.ID = 0
	r.Attended = false
	if _, err := s.db.NewInsert().Model(r).Returning("id").Exec(ctx); err != nil {
		return storageErr("create registration", err)
	}
	return nil
}

// ListRegistrations returns the registrations for eventID in id order.
func (s *Store) ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error) {
	regs := make([]models.Registration, 0)
	err := s.db.NewSelect().
		Model(&regs).
		Where("event_id = ?", eventID).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storageErr("list registrations", err)
	}
	return regs, nil
}

// GetRegistration returns the registration with id or an error wrapping models.ErrNotFound.
func (s *Store) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	r := new(models.Registration)
	err := s.db.NewSelect().Model(r).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("registration %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("get registration", err)
	}
	return r, nil
}

// MarkAttended sets the attended flag on registration id, but only when it
// belongs to eventID. It reports whether a row matched; repeating the call on
// an already attended registration still matches.
func (s *Store) MarkAttended(ctx context.Context, id, eventID int64) (bool, error) {
	res, err := s.db.NewUpdate().
		Model((*models.Registration)(nil)).
		Set("attended = ?", true).
		Where("id = ?", id).
		Where("event_id = ?", eventID).
		Exec(ctx)
	if err != nil {
		return false, storageErr("mark attended", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("mark attended", err)
	}
	return n > 0, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(models.ErrStorage, err))
}
