package drafts

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE drafts (
  id         TEXT PRIMARY KEY,
  query      TEXT NOT NULL DEFAULT '',
  payload    BLOB NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestSaveGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	d := &models.RecipeDraft{ID: "d1", Name: "Soup", Ingredients: []string{"water"}, Calories: 120}
	require.NoError(t, r.Save(ctx, "a warm soup", d))

	got, err := r.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "a warm soup", got.Query)
	assert.Equal(t, "Soup", got.Draft.Name)
	assert.Equal(t, []string{"water"}, got.Draft.Ingredients)
	assert.InDelta(t, 120, got.Draft.Calories, 0.001)
}

func TestSave_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "q1", &models.RecipeDraft{ID: "d1", Name: "v1"}))
	require.NoError(t, r.Save(ctx, "q2", &models.RecipeDraft{ID: "d1", Name: "v2"}))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "v2", all[0].Draft.Name)
	assert.Equal(t, "q2", all[0].Query)
}

func TestSave_RequiresID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	require.Error(t, r.Save(context.Background(), "q", &models.RecipeDraft{}))
	require.Error(t, r.Save(context.Background(), "q", nil))
}

func TestLatest(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Latest(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Save(ctx, "q1", &models.RecipeDraft{ID: "d1"}))
	require.NoError(t, r.Save(ctx, "q2", &models.RecipeDraft{ID: "d2"}))

	got, err := r.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "d2", got.Draft.ID)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "q", &models.RecipeDraft{ID: "d1"}))
	require.NoError(t, r.Delete(ctx, "d1"))
	require.NoError(t, r.Delete(ctx, "d1"))

	_, err := r.Get(ctx, "d1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGet_BadPayload(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := db.Exec(`INSERT INTO drafts (id, query, payload) VALUES ('x', 'q', 'not json')`)
	require.NoError(t, err)

	_, err = r.Get(context.Background(), "x")
	require.ErrorContains(t, err, "failed to decode draft")
}
