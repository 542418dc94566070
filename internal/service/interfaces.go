// Package service defines the interfaces between the application's
// components and its persistence layer.
package service

import (
	"context"

	"github.com/atlasdev/atlas/internal/model"
)

// Storage is the full persistence surface consumed by the CLI commands.
type Storage interface {
	UserStore
	TransactionStore
	ActivityLog

	Migrate(ctx context.Context) error
	Close() error
}

// UserStore manages user gamification state.
type UserStore interface {
	// CreateUser creates a user with all-zero XP and the given initial rank.
	CreateUser(ctx context.Context, name, initialRank string) (*model.UserStats, error)
	// GetUser returns nil, nil when no such user exists.
	GetUser(ctx context.Context, id string) (*model.UserStats, error)
	ListUsers(ctx context.Context) ([]model.UserStats, error)

	// AdjustXP atomically applies a signed delta to one attribute pool and to
	// the cumulative total, flooring each at zero independently, then stores
	// the rank computed by rankFor from the new total — all in one storage
	// transaction. It returns the updated stats plus the rank held before the
	// mutation, or nil stats (and no error) when the user does not exist.
	AdjustXP(ctx context.Context, userID string, attr model.Attribute, attrDelta, totalDelta float64, rankFor func(total float64) string) (*model.UserStats, string, error)
}

// TransactionStore persists confirmed financial transactions.
type TransactionStore interface {
	// SaveTransaction stores a transaction, deduplicating on its hash.
	// It reports whether a new row was actually written.
	SaveTransaction(ctx context.Context, txn *model.Transaction) (bool, error)
	// GetTransaction returns nil, nil when no such transaction exists.
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// ActivityLog records user-visible events for the activity feed.
type ActivityLog interface {
	LogActivity(ctx context.Context, userID, entryType, description string) error
	ListActivity(ctx context.Context, userID string, limit int) ([]model.ActivityEntry, error)
}
