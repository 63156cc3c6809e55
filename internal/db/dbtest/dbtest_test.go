package dbtest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"statstory-backend-go/internal/db"
	"statstory-backend-go/internal/models"
)

func TestSaveRepository_ListFiltersBySport(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveRepository()
	for _, s := range []models.Save{
		{UserID: "u1", Name: "a", Sport: "Soccer"},
		{UserID: "u1", Name: "b", Sport: "Hockey"},
		{UserID: "u2", Name: "c", Sport: "Soccer"},
	} {
		_, err := repo.Create(ctx, &s)
		require.NoError(t, err)
	}

	all, err := repo.ListByUserID(ctx, "u1", models.SaveFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	soccer, err := repo.ListByUserID(ctx, "u1", models.SaveFilter{Sport: "Soccer"})
	require.NoError(t, err)
	require.Len(t, soccer, 1)
	require.Equal(t, "a", soccer[0].Name)
}

func TestEventRepository_NewestFirstAndNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()
	_, err := repo.Create(ctx, "s1", &models.Event{CreatedAt: "2025-01-01T00:00:00.000Z", Title: "old"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, "s1", &models.Event{CreatedAt: "2025-02-01T00:00:00.000Z", Title: "new"})
	require.NoError(t, err)

	events, err := repo.ListBySaveID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "new", events[0].Title)

	_, err = repo.GetByID(ctx, "s2", events[0].ID)
	require.True(t, errors.Is(err, db.ErrNotFound))

	err = repo.Update(ctx, "s1", "missing", map[string]any{"title": "x"})
	require.True(t, errors.Is(err, db.ErrNotFound))
}
