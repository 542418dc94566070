package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlasdev/atlas/internal/model"
)

const transactionColumns = `id, hash, date, description, establishment,
	type, category, subcategory, category_type, amount, created_at`

// SaveTransaction stores a transaction, deduplicating on its hash so the same
// receipt uploaded twice books only once. It reports whether a row was written.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateTransaction(txn); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, hash, date, description, establishment,
			type, category, subcategory, category_type, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash) DO NOTHING`,
		txn.ID, txn.Hash, txn.Date, txn.Description, txn.Establishment,
		txn.Type, txn.Category, txn.Subcategory, txn.CategoryType, txn.Amount)
	if err != nil {
		return false, fmt.Errorf("failed to save transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}
	if affected == 0 {
		slog.Debug("skipped duplicate transaction", "hash", txn.Hash)
		return false, nil
	}
	return true, nil
}

// GetTransaction returns a stored transaction, or nil, nil when none exists.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns stored transactions, newest first. A non-positive
// limit returns everything.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txns, nil
}

// DeleteTransaction removes a stored transaction.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func scanTransaction(row scanner) (*model.Transaction, error) {
	var txn model.Transaction
	err := row.Scan(
		&txn.ID, &txn.Hash, &txn.Date, &txn.Description, &txn.Establishment,
		&txn.Type, &txn.Category, &txn.Subcategory, &txn.CategoryType,
		&txn.Amount, &txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
