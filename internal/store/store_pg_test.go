package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"catalogapi/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the database named by TEST_DB_DSN. Tests are
// skipped when it is unset or unreachable, so the suite stays green
// without a local Postgres.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping test: TEST_DB_DSN not set")
	}
	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	if err := db.Ping(ctx); err != nil {
		t.Skipf("Skipping test: cannot ping test database: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestAuthorPG_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db, zerolog.Nop())
	ctx := context.Background()

	name := uniqueName("author")
	created, err := repo.Create(ctx, entity.Author{Name: name})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created, *got)

	byName, err := repo.GetByName(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, byName)
	require.Equal(t, created.ID, byName.ID)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	gone, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestAuthorPG_GetByNameIsExactCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db, zerolog.Nop())
	ctx := context.Background()

	name := uniqueName("Case Author")
	created, err := repo.Create(ctx, entity.Author{Name: name})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = repo.Delete(ctx, created.ID) })

	// A substring that ILIKE would match must not count as the name.
	partial, err := repo.GetByName(ctx, name[:len(name)-2])
	require.NoError(t, err)
	require.Nil(t, partial)

	upper, err := repo.GetByName(ctx, "CASE AUTHOR"+name[len("Case Author"):])
	require.NoError(t, err)
	require.NotNil(t, upper)
	require.Equal(t, created.ID, upper.ID)
}

func TestPublisherPG_UpdateAndMissingDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPublisherPG(db, zerolog.Nop())
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.Publisher{Name: uniqueName("publisher")})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = repo.Delete(ctx, created.ID) })

	renamed := uniqueName("renamed")
	ok, err := repo.Update(ctx, entity.Publisher{ID: created.ID, Name: renamed})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, renamed, got.Name)

	ok, err = repo.Delete(ctx, created.ID+1000000)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBookPG_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	books := NewBookPG(db, zerolog.Nop())
	authors := NewAuthorPG(db, zerolog.Nop())
	publishers := NewPublisherPG(db, zerolog.Nop())

	author, err := authors.Create(ctx, entity.Author{Name: uniqueName("book author")})
	require.NoError(t, err)
	publisher, err := publishers.Create(ctx, entity.Publisher{Name: uniqueName("book publisher")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = authors.Delete(ctx, author.ID)
		_, _ = publishers.Delete(ctx, publisher.ID)
	})

	created, err := books.Create(ctx, entity.Book{
		Title:     uniqueName("title"),
		ISBN:      "999-9999999999",
		Year:      2001,
		Authors:   []entity.Author{author},
		Publisher: publisher,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := books.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, publisher, got.Publisher)
	require.Equal(t, []entity.Author{author}, got.Authors)

	byTitle, err := books.GetByTitle(ctx, created.Title)
	require.NoError(t, err)
	require.NotNil(t, byTitle)
	require.Equal(t, created.ID, byTitle.ID)

	deleted, err := books.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}
