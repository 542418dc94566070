package storage

import (
	"context"
	"fmt"

	"github.com/atlasdev/atlas/internal/model"
)

// LogActivity appends an entry to a user's activity feed.
func (s *SQLiteStorage) LogActivity(ctx context.Context, userID, entryType, description string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(entryType, "entryType"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_log (user_id, type, description) VALUES (?, ?, ?)`,
		userID, entryType, description)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

// ListActivity returns a user's activity feed, newest first. A non-positive
// limit returns everything.
func (s *SQLiteStorage) ListActivity(ctx context.Context, userID string, limit int) ([]model.ActivityEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `SELECT user_id, type, description, created_at
		FROM activity_log WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	var entries []model.ActivityEntry
	for rows.Next() {
		var entry model.ActivityEntry
		if scanErr := rows.Scan(&entry.UserID, &entry.Type, &entry.Description, &entry.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", scanErr)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity log: %w", err)
	}
	return entries, nil
}
