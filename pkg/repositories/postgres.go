package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn    *pgx.Conn
	profile string
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to the database and applies migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, profile string) (*PostgresRepository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	statements, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range statements {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn:    conn,
		profile: profile,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) MarkPlayed(ctx context.Context) error {
	q := `
	INSERT INTO profile_flags (profile, name, value, updated_at) VALUES ($1, $2, TRUE, NOW())
	ON CONFLICT (profile, name) DO UPDATE SET value = TRUE, updated_at = NOW();
	`
	if _, err := r.conn.Exec(ctx, q, r.profile, FlagHasPlayed); err != nil {
		return fmt.Errorf("failed to save flag: %v", err)
	}
	return nil
}

func (r *PostgresRepository) HasPlayed(ctx context.Context) (bool, error) {
	q := `SELECT value FROM profile_flags WHERE profile = $1 AND name = $2;`
	var value bool
	err := r.conn.QueryRow(ctx, q, r.profile, FlagHasPlayed).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load flag: %v", err)
	}
	return value, nil
}
