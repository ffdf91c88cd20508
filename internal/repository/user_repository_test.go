package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/repository"
	"fit-planner/internal/testutil"
)

func TestUserRepository_Upsert(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	created, err := repo.UpsertFromTelegram(ctx, 42, 420, "Ann", "", "ann")
	require.NoError(t, err)

	updated, err := repo.UpsertFromTelegram(ctx, 42, 421, "Anna", "B", "anna")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	found, err := repo.FindByTelegramID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Anna", found.FirstName)
	assert.Equal(t, int64(421), found.ChatID)
}

func TestUserRepository_ListSubscribed(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	a, err := repo.UpsertFromTelegram(ctx, 1, 1, "A", "", "")
	require.NoError(t, err)
	b, err := repo.UpsertFromTelegram(ctx, 2, 2, "B", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.SetMuted(ctx, a.ID, true))

	users, err := repo.ListSubscribed(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, b.ID, users[0].ID)
}
