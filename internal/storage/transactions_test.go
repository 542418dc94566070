package storage

import (
	"context"
	"testing"
	"time"

	"github.com/atlasdev/atlas/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransaction(amount float64, category string) *model.Transaction {
	txn := &model.Transaction{
		ID:            uuid.New().String(),
		Date:          time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC),
		Description:   "Mercado Pago",
		Establishment: "Mercado Pago",
		Type:          model.TransactionExpense,
		Category:      category,
		Subcategory:   model.SubcategoryPayment,
		CategoryType:  model.TypeDiscretionary,
		Amount:        amount,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestSaveTransaction(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txn := testTransaction(19.13, model.CategoryOther)

	saved, err := store.SaveTransaction(ctx, txn)
	require.NoError(t, err)
	assert.True(t, saved)

	loaded, err := store.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, txn.Hash, loaded.Hash)
	assert.InDelta(t, 19.13, loaded.Amount, 0.001)
	assert.Equal(t, model.TransactionExpense, loaded.Type)
}

func TestSaveTransactionDeduplicates(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := testTransaction(19.13, model.CategoryOther)
	saved, err := store.SaveTransaction(ctx, first)
	require.NoError(t, err)
	assert.True(t, saved)

	// Same receipt re-uploaded: new ID, same hash, must not book twice.
	duplicate := testTransaction(19.13, model.CategoryOther)
	saved, err = store.SaveTransaction(ctx, duplicate)
	require.NoError(t, err)
	assert.False(t, saved)

	all, err := store.ListTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveTransactionValidation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	t.Run("nil transaction", func(t *testing.T) {
		_, err := store.SaveTransaction(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		txn := testTransaction(19.13, model.CategoryOther)
		txn.Amount = 0
		_, err := store.SaveTransaction(ctx, txn)
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		txn := testTransaction(19.13, model.CategoryOther)
		txn.Type = "transfer"
		_, err := store.SaveTransaction(ctx, txn)
		assert.Error(t, err)
	})
}

func TestDeleteTransaction(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	txn := testTransaction(50, "investimento")
	_, err := store.SaveTransaction(ctx, txn)
	require.NoError(t, err)

	require.NoError(t, store.DeleteTransaction(ctx, txn.ID))

	loaded, err := store.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestListTransactionsLimit(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		txn := testTransaction(float64(i+1), model.CategoryOther)
		txn.Date = txn.Date.AddDate(0, 0, i)
		txn.Hash = txn.GenerateHash()
		_, err := store.SaveTransaction(ctx, txn)
		require.NoError(t, err)
	}

	txns, err := store.ListTransactions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	// Newest first.
	assert.True(t, txns[0].Date.After(txns[1].Date))
}
