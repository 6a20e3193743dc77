package statecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/signalsfoundry/solarsim/core"
)

// ErrMiss is returned by Get when no entry exists for the requested key.
var ErrMiss = errors.New("state cache miss")

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS states (
    body_id    INTEGER NOT NULL,
    epoch_s    REAL    NOT NULL,
    px REAL NOT NULL, py REAL NOT NULL, pz REAL NOT NULL,
    vx REAL NOT NULL, vy REAL NOT NULL, vz REAL NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (body_id, epoch_s)
);
`

// Store memoizes derived body states in a local SQLite database in WAL mode.
// Keys are (body id, seconds past the reference epoch); values are absolute
// state vectors. A catalog reload invalidates the whole store via Reset.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at dbPath, enables WAL mode and
// busy timeout, and creates the schema tables if they do not exist. Passing
// ":memory:" gives a process-local cache.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("statecache: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer; using
	// one connection avoids SQLITE_BUSY contention between pooled connections
	// that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("statecache: enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("statecache: set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("statecache: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Put upserts the state for a (body, epoch offset) pair.
func (s *Store) Put(ctx context.Context, bodyID int, epochSeconds float64, state core.StateVector) error {
	const q = `
		INSERT INTO states (body_id, epoch_s, px, py, pz, vx, vy, vz)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(body_id, epoch_s) DO UPDATE SET
			px = excluded.px, py = excluded.py, pz = excluded.pz,
			vx = excluded.vx, vy = excluded.vy, vz = excluded.vz`
	_, err := s.db.ExecContext(ctx, q,
		bodyID, epochSeconds,
		state.Position.X, state.Position.Y, state.Position.Z,
		state.Velocity.X, state.Velocity.Y, state.Velocity.Z,
	)
	if err != nil {
		return fmt.Errorf("statecache: put body %d at %g: %w", bodyID, epochSeconds, err)
	}
	return nil
}

// PutBatch upserts multiple states in a single transaction. Used after a full
// AllStates pass so one tick costs one fsync.
func (s *Store) PutBatch(ctx context.Context, epochSeconds float64, states map[int]core.StateVector) error {
	if len(states) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("statecache: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	const q = `
		INSERT INTO states (body_id, epoch_s, px, py, pz, vx, vy, vz)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(body_id, epoch_s) DO UPDATE SET
			px = excluded.px, py = excluded.py, pz = excluded.pz,
			vx = excluded.vx, vy = excluded.vy, vz = excluded.vz`

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("statecache: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for id, st := range states {
		if _, err := stmt.ExecContext(ctx, id, epochSeconds,
			st.Position.X, st.Position.Y, st.Position.Z,
			st.Velocity.X, st.Velocity.Y, st.Velocity.Z,
		); err != nil {
			return fmt.Errorf("statecache: put body %d at %g: %w", id, epochSeconds, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("statecache: commit batch: %w", err)
	}
	return nil
}

// Get returns the cached state for a (body, epoch offset) pair, or ErrMiss.
func (s *Store) Get(ctx context.Context, bodyID int, epochSeconds float64) (core.StateVector, error) {
	const q = `SELECT px, py, pz, vx, vy, vz FROM states WHERE body_id = ? AND epoch_s = ?`
	var st core.StateVector
	err := s.db.QueryRowContext(ctx, q, bodyID, epochSeconds).Scan(
		&st.Position.X, &st.Position.Y, &st.Position.Z,
		&st.Velocity.X, &st.Velocity.Y, &st.Velocity.Z,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return core.StateVector{}, ErrMiss
	}
	if err != nil {
		return core.StateVector{}, fmt.Errorf("statecache: get body %d at %g: %w", bodyID, epochSeconds, err)
	}
	return st, nil
}

// Len returns the number of cached entries.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM states").Scan(&n); err != nil {
		return 0, fmt.Errorf("statecache: count states: %w", err)
	}
	return n, nil
}

// Reset drops every cached entry. Called when the catalog is reloaded since
// any element change invalidates previously derived states.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM states"); err != nil {
		return fmt.Errorf("statecache: reset: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
