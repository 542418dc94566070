package storage

import (
	"context"
	"testing"

	"github.com/atlasdev/atlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetUser(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "Sakura", "Estudante da Academia")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Sakura", user.Name)
	assert.Equal(t, "Estudante da Academia", user.Rank)
	assert.Zero(t, user.CurrentXP)
	assert.Zero(t, user.XPPhysical)
	assert.Zero(t, user.XPFinancial)
	assert.False(t, user.CreatedAt.IsZero())

	loaded, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user.ID, loaded.ID)
}

func TestGetUserMissing(t *testing.T) {
	store := createTestStorage(t)

	user, err := store.GetUser(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestListUsers(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = store.CreateUser(ctx, "A", "Genin")
	require.NoError(t, err)
	_, err = store.CreateUser(ctx, "B", "Genin")
	require.NoError(t, err)

	users, err = store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAdjustXP(t *testing.T) {
	rankFor := func(total float64) string {
		if total >= 100 {
			return "Genin"
		}
		return "Estudante da Academia"
	}

	t.Run("applies deltas and rank atomically", func(t *testing.T) {
		store := createTestStorage(t)
		ctx := context.Background()

		user, err := store.CreateUser(ctx, "Kiba", "Estudante da Academia")
		require.NoError(t, err)

		stats, prevRank, err := store.AdjustXP(ctx, user.ID, model.AttributeMental, 120, 120, rankFor)
		require.NoError(t, err)
		require.NotNil(t, stats)

		assert.Equal(t, "Estudante da Academia", prevRank)
		assert.Equal(t, "Genin", stats.Rank)
		assert.InDelta(t, 120, stats.XPMental, 0.001)
		assert.InDelta(t, 120, stats.CurrentXP, 0.001)

		// The persisted row must agree with the returned stats.
		loaded, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Genin", loaded.Rank)
		assert.InDelta(t, 120, loaded.CurrentXP, 0.001)
	})

	t.Run("floors pools independently", func(t *testing.T) {
		store := createTestStorage(t)
		ctx := context.Background()

		user, err := store.CreateUser(ctx, "Shino", "Estudante da Academia")
		require.NoError(t, err)

		_, _, err = store.AdjustXP(ctx, user.ID, model.AttributePhysical, 5, 50, rankFor)
		require.NoError(t, err)

		stats, _, err := store.AdjustXP(ctx, user.ID, model.AttributePhysical, -30, -30, rankFor)
		require.NoError(t, err)
		require.NotNil(t, stats)

		assert.InDelta(t, 0, stats.XPPhysical, 0.001)
		assert.InDelta(t, 20, stats.CurrentXP, 0.001)
	})

	t.Run("missing user is a no-op", func(t *testing.T) {
		store := createTestStorage(t)

		stats, prevRank, err := store.AdjustXP(context.Background(), "missing", model.AttributePhysical, 10, 10, rankFor)
		require.NoError(t, err)
		assert.Nil(t, stats)
		assert.Empty(t, prevRank)
	})

	t.Run("rejects nil rank function", func(t *testing.T) {
		store := createTestStorage(t)

		_, _, err := store.AdjustXP(context.Background(), "u1", model.AttributePhysical, 10, 10, nil)
		assert.Error(t, err)
	})
}

func TestAttributeColumnExhaustive(t *testing.T) {
	for _, attr := range model.AllAttributes() {
		column, err := attributeColumn(attr)
		require.NoError(t, err, "attribute %s", attr)
		assert.NotEmpty(t, column)
	}

	_, err := attributeColumn(model.Attribute("COZINHA"))
	assert.Error(t, err)
}
