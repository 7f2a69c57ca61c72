//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/db"
	"github.com/gokatarajesh/trivia-api/internal/db/store"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// migratedPool connects to INTEGRATION_PG_DSN and applies every migration.
func migratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := envOrDefault("INTEGRATION_PG_DSN", "host=localhost port=5432 user=trivia password=trivia dbname=trivia_test sslmode=disable")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("postgres unreachable: %v", err)
	}
	t.Cleanup(pool.Close)

	conn := stdlib.OpenDBFromPool(pool)
	defer conn.Close()
	goose.SetBaseFS(db.Migrations)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(conn, db.MigrationsDir))

	_, err = pool.Exec(ctx, "TRUNCATE questions RESTART IDENTITY")
	require.NoError(t, err)
	return pool
}

func intPtrOf(v int) *int { return &v }

func TestQuestionRepositoryAgainstPostgres(t *testing.T) {
	pool := migratedPool(t)
	ctx := context.Background()
	repo := NewQuestionRepository(store.New(pool))

	created, err := repo.Insert(ctx, trivia.NewQuestion{
		Question:   "What is 100% of 50_50?",
		Answer:     "50_50",
		Category:   intPtrOf(1),
		Difficulty: intPtrOf(2),
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, trivia.NewQuestion{Question: "Name a 100 percent cotton fabric", Answer: "Denim"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Nil(t, all[1].Category)

	// wildcards in the term match literally
	matches, err := repo.Search(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, created.ID, matches[0].ID)

	byCategory, err := repo.ListByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), trivia.ErrNotFound)
	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestCategoryRepositorySeeded(t *testing.T) {
	pool := migratedPool(t)

	categories, err := NewCategoryRepository(store.New(pool)).List(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, trivia.Category{ID: 1, Type: "Science"}, categories[0])
	assert.Equal(t, trivia.Category{ID: 6, Type: "Sports"}, categories[5])
}
