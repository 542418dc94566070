package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlasdev/atlas/internal/model"
	"github.com/google/uuid"
)

const userColumns = `id, name, rank, current_xp,
	xp_physical, xp_discipline, xp_mental,
	xp_intellect, xp_productivity, xp_financial, created_at`

// attributeColumn maps an attribute to its storage column. The mapping is
// exhaustive and explicit; column names are never synthesized from input.
func attributeColumn(attr model.Attribute) (string, error) {
	switch attr {
	case model.AttributePhysical:
		return "xp_physical", nil
	case model.AttributeDiscipline:
		return "xp_discipline", nil
	case model.AttributeMental:
		return "xp_mental", nil
	case model.AttributeIntellect:
		return "xp_intellect", nil
	case model.AttributeProductivity:
		return "xp_productivity", nil
	case model.AttributeFinancial:
		return "xp_financial", nil
	default:
		return "", fmt.Errorf("no storage column for attribute %q", attr)
	}
}

// CreateUser creates a user with all-zero XP and the given initial rank.
func (s *SQLiteStorage) CreateUser(ctx context.Context, name, initialRank string) (*model.UserStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	if err := validateString(initialRank, "initialRank"); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, rank) VALUES (?, ?, ?)`,
		id, name, initialRank)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Debug("created user", "id", id, "name", name)
	return s.GetUser(ctx, id)
}

// GetUser returns a user's stats, or nil, nil when no such user exists.
func (s *SQLiteStorage) GetUser(ctx context.Context, id string) (*model.UserStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	stats, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return stats, nil
}

// ListUsers returns all users ordered by creation time.
func (s *SQLiteStorage) ListUsers(ctx context.Context) ([]model.UserStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.UserStats
	for rows.Next() {
		stats, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan user: %w", scanErr)
		}
		users = append(users, *stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// AdjustXP atomically applies a signed delta to one attribute pool and the
// cumulative total, floors each at zero independently, and persists the rank
// derived from the new total — all within a single database transaction, so
// concurrent mutations for the same user cannot lose updates. A missing user
// is a deliberate no-op: nil stats, no error.
func (s *SQLiteStorage) AdjustXP(ctx context.Context, userID string, attr model.Attribute, attrDelta, totalDelta float64, rankFor func(total float64) string) (*model.UserStats, string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, "", err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, "", err
	}
	if rankFor == nil {
		return nil, "", fmt.Errorf("%w: rankFor", ErrNilParameter)
	}

	column, err := attributeColumn(attr)
	if err != nil {
		return nil, "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var prevRank string
	err = tx.QueryRowContext(ctx, `SELECT rank FROM users WHERE id = ?`, userID).Scan(&prevRank)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user rank: %w", err)
	}

	// Both floors are applied independently, matching the ledger contract:
	// max(0, pool+delta) and max(0, total+delta), not a combined floor.
	// The column name comes from the fixed mapping above, never from input.
	query := fmt.Sprintf(
		`UPDATE users SET %s = MAX(0, %s + ?), current_xp = MAX(0, current_xp + ?) WHERE id = ?`,
		column, column)
	if _, err = tx.ExecContext(ctx, query, attrDelta, totalDelta, userID); err != nil {
		return nil, "", fmt.Errorf("failed to adjust xp: %w", err)
	}

	row := tx.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	stats, err := scanUser(row)
	if err != nil {
		return nil, "", fmt.Errorf("failed to reload user: %w", err)
	}

	newRank := rankFor(stats.CurrentXP)
	if _, err = tx.ExecContext(ctx, `UPDATE users SET rank = ? WHERE id = ?`, newRank, userID); err != nil {
		return nil, "", fmt.Errorf("failed to update rank: %w", err)
	}
	stats.Rank = newRank

	if err = tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit xp adjustment: %w", err)
	}

	return stats, prevRank, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*model.UserStats, error) {
	var stats model.UserStats
	err := row.Scan(
		&stats.ID, &stats.Name, &stats.Rank, &stats.CurrentXP,
		&stats.XPPhysical, &stats.XPDiscipline, &stats.XPMental,
		&stats.XPIntellect, &stats.XPProductivity, &stats.XPFinancial,
		&stats.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
