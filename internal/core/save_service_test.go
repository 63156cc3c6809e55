package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"statstory-backend-go/internal/models"
)

func TestSaveService_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createSave(t, "u1", "Career 1", "Soccer")
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u1", created.UserID)

	got, err := f.saveSvc.GetSave(ctx, "u1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestSaveService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		req  models.CreateSaveRequest
	}{
		{name: "missing name", req: models.CreateSaveRequest{Sport: "Soccer"}},
		{name: "missing sport", req: models.CreateSaveRequest{Name: "Career"}},
		{name: "blank name", req: models.CreateSaveRequest{Name: "   ", Sport: "Soccer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.saveSvc.CreateSave(context.Background(), "u1", tt.req)
			require.True(t, errors.Is(err, ErrValidation))
			require.EqualError(t, err, "Name and sport are required")
		})
	}
}

func TestSaveService_CrossUserForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	save := f.createSave(t, "u1", "Career 1", "Soccer")

	_, err := f.saveSvc.GetSave(ctx, "u2", save.ID)
	require.True(t, errors.Is(err, ErrForbiddenAccess))

	_, err = f.saveSvc.UpdateSave(ctx, "u2", save.ID, models.UpdateSaveRequest{Name: strPtr("stolen")})
	require.True(t, errors.Is(err, ErrForbiddenAccess))

	require.True(t, errors.Is(f.saveSvc.DeleteSave(ctx, "u2", save.ID), ErrForbiddenAccess))

	got, err := f.saveSvc.GetSave(ctx, "u1", save.ID)
	require.NoError(t, err)
	require.Equal(t, "Career 1", got.Name)
}

func TestSaveService_ListFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createSave(t, "u1", "A", "Soccer")
	f.createSave(t, "u1", "B", "Hockey")
	f.createSave(t, "u2", "C", "Soccer")

	for _, sport := range []string{"", "All"} {
		saves, err := f.saveSvc.ListSaves(ctx, "u1", models.SaveFilter{Sport: sport})
		require.NoError(t, err)
		require.Len(t, saves, 2)
	}

	saves, err := f.saveSvc.ListSaves(ctx, "u1", models.SaveFilter{Sport: "Hockey"})
	require.NoError(t, err)
	require.Len(t, saves, 1)
	require.Equal(t, "B", saves[0].Name)
}

func TestSaveService_UpdateIgnoresEmptyRequiredFields(t *testing.T) {
	f := newFixture(t)
	save := f.createSave(t, "u1", "Career 1", "Soccer")

	updated, err := f.saveSvc.UpdateSave(context.Background(), "u1", save.ID, models.UpdateSaveRequest{
		Name:  strPtr("Career 2"),
		Sport: strPtr(""),
	})
	require.NoError(t, err)
	require.Equal(t, "Career 2", updated.Name)
	require.Equal(t, "Soccer", updated.Sport)
	require.Equal(t, "u1", updated.UserID)
}

func TestSaveService_DeleteTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	save := f.createSave(t, "u1", "Career 1", "Soccer")

	require.NoError(t, f.saveSvc.DeleteSave(ctx, "u1", save.ID))
	require.True(t, errors.Is(f.saveSvc.DeleteSave(ctx, "u1", save.ID), ErrSaveNotFound))
}
