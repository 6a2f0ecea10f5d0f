package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
)

// NewDB opens (or creates) the SQLite database at path and migrates the
// schema. Use ":memory:" for an in-memory database in tests. The store is
// opened once at process start and closed at shutdown.
func NewDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps an
	// in-memory database from being dropped between pool checkouts.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func migrate(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		email TEXT UNIQUE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stylists (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		specialty TEXT NOT NULL DEFAULT '',
		hourly_rate TEXT NOT NULL DEFAULT '0',
		active INTEGER NOT NULL DEFAULT 1,
		hire_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
		price TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS appointments (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
		stylist_id TEXT NOT NULL REFERENCES stylists(id) ON DELETE RESTRICT,
		service_id TEXT NOT NULL REFERENCES services(id) ON DELETE RESTRICT,
		start_time TIMESTAMP NOT NULL,
		duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
		total_price TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled'
			CHECK (status IN ('scheduled', 'completed', 'cancelled', 'no-show')),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_appointments_stylist_status
		ON appointments(stylist_id, status);
	CREATE INDEX IF NOT EXISTS idx_appointments_start_time
		ON appointments(start_time);
	CREATE INDEX IF NOT EXISTS idx_appointments_client
		ON appointments(client_id);
	`
	_, err := db.Exec(schema)
	return err
}

// translateErr maps driver errors onto the application error taxonomy so
// callers never see sqlite3 internals. Uniqueness and referential integrity
// are enforced by the store itself; callers handle the translated condition.
func translateErr(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource, err)
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return apperrors.Duplicate(uniqueField(se.Error()), err)
		case sqlite3.ErrConstraintForeignKey:
			return apperrors.ReferentialIntegrity(
				fmt.Sprintf("%s is referenced by existing records", resource), err)
		}
	}
	return err
}

// uniqueField pulls the column name out of a message like
// "UNIQUE constraint failed: clients.phone".
func uniqueField(msg string) string {
	idx := strings.LastIndex(msg, ": ")
	if idx < 0 {
		return "value"
	}
	qualified := msg[idx+2:]
	if dot := strings.LastIndex(qualified, "."); dot >= 0 {
		return qualified[dot+1:]
	}
	return qualified
}
