package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "memory", url: "memory://"},
		{name: "sqlite relative", url: "sqlite://" + filepath.Join(dir, "a.db")},
		{name: "unknown scheme", url: "redis://localhost", wantErr: true},
		{name: "sqlite without path", url: "sqlite://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewRepository(context.Background(), tt.url, "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, repo.Close(context.Background()))
		})
	}
}

func testMarkPlayed(t *testing.T, repo Repository) {
	ctx := context.Background()

	played, err := repo.HasPlayed(ctx)
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, repo.MarkPlayed(ctx))
	require.NoError(t, repo.MarkPlayed(ctx))

	played, err = repo.HasPlayed(ctx)
	require.NoError(t, err)
	assert.True(t, played)
}

func TestInMemoryRepository_MarkPlayed(t *testing.T) {
	testMarkPlayed(t, NewInMemoryRepository())
}

func TestSQLiteRepository_MarkPlayed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.db")

	repo, err := NewSQLiteRepository(ctx, path, "alice")
	require.NoError(t, err)
	testMarkPlayed(t, repo)
	require.NoError(t, repo.Close(ctx))

	// the flag survives a reopen and is scoped to the profile
	reopened, err := NewSQLiteRepository(ctx, path, "alice")
	require.NoError(t, err)
	defer reopened.Close(ctx)
	played, err := reopened.HasPlayed(ctx)
	require.NoError(t, err)
	assert.True(t, played)

	other, err := NewSQLiteRepository(ctx, path, "bob")
	require.NoError(t, err)
	defer other.Close(ctx)
	played, err = other.HasPlayed(ctx)
	require.NoError(t, err)
	assert.False(t, played)
}
