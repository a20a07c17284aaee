package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"path"
)

const (
	// DefaultProfile is used when no profile name is configured.
	DefaultProfile = "default"
	// FlagHasPlayed records that a game was started at least once.
	FlagHasPlayed = "has_played"
)

//go:embed migrations
var migrations embed.FS

// Repository persists local profile flags.
type Repository interface {
	Close(ctx context.Context) error
	// MarkPlayed records that the profile has started a game.
	MarkPlayed(ctx context.Context) error
	// HasPlayed reports whether MarkPlayed was ever called for the profile.
	HasPlayed(ctx context.Context) (bool, error)
}

// NewRepository opens the repository described by rawURL.
// Supported schemes are sqlite://<path>, postgresql://... and memory://.
func NewRepository(ctx context.Context, rawURL string, profile string) (Repository, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse repository url: %v", err)
	}

	switch u.Scheme {
	case "memory":
		return NewInMemoryRepository(), nil
	case "sqlite":
		return NewSQLiteRepository(ctx, u.Host+u.Path, profile)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String(), profile)
	default:
		return nil, fmt.Errorf("unknown repository type %q", u.Scheme)
	}
}

// readMigrations returns the embedded migrations for dialect in file name order.
func readMigrations(dialect string) ([]string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	var statements []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrations, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		statements = append(statements, string(migration))
	}
	return statements, nil
}
