package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db      *sql.DB
	profile string
}

var _ Repository = &SQLiteRepository{}

func NewSQLiteRepository(ctx context.Context, path string, profile string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite repository requires a path")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	statements, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range statements {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db:      db,
		profile: profile,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) MarkPlayed(ctx context.Context) error {
	q := `
	INSERT OR REPLACE INTO profile_flags (profile, name, value, updated_at)
	VALUES (?, ?, 1, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, r.profile, FlagHasPlayed, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save flag: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) HasPlayed(ctx context.Context) (bool, error) {
	q := `
	SELECT value FROM profile_flags
	WHERE profile = ? AND name = ?;
	`
	var value bool
	err := r.db.QueryRowContext(ctx, q, r.profile, FlagHasPlayed).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load flag: %v", err)
	}
	return value, nil
}
