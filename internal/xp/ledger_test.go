package xp

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/atlasdev/atlas/internal/model"
	"github.com/atlasdev/atlas/internal/rank"
	"github.com/atlasdev/atlas/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *storage.SQLiteStorage, *model.UserStats) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	user, err := store.CreateUser(ctx, "Naruto", rank.Initial())
	require.NoError(t, err)

	return NewLedger(store), store, user
}

func TestAddRemoveRoundTrip(t *testing.T) {
	ledger, store, user := newTestLedger(t)
	ctx := context.Background()

	added, err := ledger.AddXP(ctx, user.ID, "INTELECTO", 10)
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.InDelta(t, 10, added.NewTotal, 0.001)

	removed, err := ledger.RemoveXP(ctx, user.ID, "INTELECTO", 10)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.InDelta(t, 0, removed.NewTotal, 0.001)

	after, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, after.CurrentXP, 0.001)
	assert.InDelta(t, 0, after.XPIntellect, 0.001)
	assert.Equal(t, user.Rank, after.Rank)
}

func TestRemoveFloorsAtZero(t *testing.T) {
	ledger, store, user := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.AddXP(ctx, user.ID, "FISICO", 5)
	require.NoError(t, err)

	result, err := ledger.RemoveXP(ctx, user.ID, "FISICO", 1000)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 0, result.NewTotal, 0.001)

	after, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, after.CurrentXP, 0.001)
	assert.InDelta(t, 0, after.XPPhysical, 0.001)
}

// The floor applies to the attribute pool and the total independently. When a
// removal exceeds only one of them the two can diverge; that is accepted
// behavior, not something the ledger should reconcile.
func TestIndependentFloors(t *testing.T) {
	ledger, store, user := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.AddXP(ctx, user.ID, "FISICO", 5)
	require.NoError(t, err)
	_, err = ledger.AddXP(ctx, user.ID, "MENTAL", 20)
	require.NoError(t, err)

	// Removes more FISICO than was ever added: the pool floors at 0 losing
	// only 5, while the total loses the full 30 down to its own floor.
	_, err = ledger.RemoveXP(ctx, user.ID, "FISICO", 30)
	require.NoError(t, err)

	after, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0, after.XPPhysical, 0.001)
	assert.InDelta(t, 20, after.XPMental, 0.001)
	assert.InDelta(t, 0, after.CurrentXP, 0.001)
}

func TestUnknownCategoryCoercedToProductivity(t *testing.T) {
	ledger, store, user := newTestLedger(t)
	ctx := context.Background()

	result, err := ledger.AddXP(ctx, user.ID, "CULINARIA", 7)
	require.NoError(t, err)
	require.NotNil(t, result)

	after, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7, after.XPProductivity, 0.001)
	assert.InDelta(t, 7, after.CurrentXP, 0.001)
}

func TestMissingUserIsNoOp(t *testing.T) {
	ledger, _, _ := newTestLedger(t)
	ctx := context.Background()

	result, err := ledger.AddXP(ctx, "no-such-user", "FISICO", 10)
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = ledger.RemoveXP(ctx, "no-such-user", "FISICO", 10)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestNegativeScoreRejected(t *testing.T) {
	ledger, _, user := newTestLedger(t)

	_, err := ledger.AddXP(context.Background(), user.ID, "FISICO", -1)
	assert.Error(t, err)
}

func TestRankChangeEmitsActivity(t *testing.T) {
	ledger, store, user := newTestLedger(t)
	ctx := context.Background()

	// 95 XP stays below the first promotion at 100.
	result, err := ledger.AddXP(ctx, user.ID, "DISCIPLINA", 95)
	require.NoError(t, err)
	assert.Equal(t, "Estudante da Academia", result.Rank)

	entries, err := store.ListActivity(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Crossing 100 promotes to Genin and must hit the feed.
	result, err = ledger.AddXP(ctx, user.ID, "DISCIPLINA", 10)
	require.NoError(t, err)
	assert.Equal(t, "Genin", result.Rank)

	entries, err = store.ListActivity(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActivityRankUp, entries[0].Type)
	assert.Contains(t, entries[0].Description, "Genin")

	// Moving within the Genin bracket stays quiet.
	_, err = ledger.AddXP(ctx, user.ID, "DISCIPLINA", 10)
	require.NoError(t, err)

	entries, err = store.ListActivity(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Dropping back below 100 demotes and reports a rank change.
	_, err = ledger.RemoveXP(ctx, user.ID, "DISCIPLINA", 50)
	require.NoError(t, err)

	entries, err = store.ListActivity(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.ActivityRankChange, entries[0].Type)
}

func TestConcurrentAddXPNoLostUpdate(t *testing.T) {
	ledger, store, user := newTestLedger(t)
	ctx := context.Background()

	const perWorker = 25
	var wg sync.WaitGroup
	categories := []string{"FISICO", "MENTAL"}

	for _, category := range categories {
		wg.Add(1)
		go func(cat string) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := ledger.AddXP(ctx, user.ID, cat, 2)
				assert.NoError(t, err)
			}
		}(category)
	}
	wg.Wait()

	after, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, float64(len(categories)*perWorker*2), after.CurrentXP, 0.001)
	assert.InDelta(t, perWorker*2, after.XPPhysical, 0.001)
	assert.InDelta(t, perWorker*2, after.XPMental, 0.001)
}
