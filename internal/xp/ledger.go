// Package xp books experience points: it converts completion events into
// per-attribute XP deltas, keeps the cumulative total and display rank
// consistent, and records rank transitions in the activity feed.
package xp

import (
	"context"
	"fmt"

	"github.com/atlasdev/atlas/internal/common"
	"github.com/atlasdev/atlas/internal/model"
	"github.com/atlasdev/atlas/internal/rank"
)

// ConversionRate converts raw score points into cumulative XP. The rate is
// 1:1 today but has changed before, so it stays a named constant rather than
// an inlined multiplier.
const ConversionRate = 1.0

// Store is the persistence surface the ledger needs.
type Store interface {
	AdjustXP(ctx context.Context, userID string, attr model.Attribute, attrDelta, totalDelta float64, rankFor func(total float64) string) (*model.UserStats, string, error)
	LogActivity(ctx context.Context, userID, entryType, description string) error
}

// Result reports the outcome of an XP mutation.
type Result struct {
	Rank     string
	NewTotal float64
}

// Ledger applies XP mutations for users.
type Ledger struct {
	store Store
}

// NewLedger creates a ledger backed by the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// AddXP credits score points to one of a user's attributes and recomputes
// total XP and rank. An unrecognized category lands in PRODUTIVIDADE. A nil
// result with nil error means the user does not exist and nothing happened —
// callers must not treat that as a failure.
func (l *Ledger) AddXP(ctx context.Context, userID, category string, score float64) (*Result, error) {
	return l.apply(ctx, userID, category, score, false)
}

// RemoveXP is the reverse of AddXP: the same score removed after being added
// nets to zero. Subtraction floors the attribute pool and the total at zero
// independently, so neither ever goes negative.
func (l *Ledger) RemoveXP(ctx context.Context, userID, category string, score float64) (*Result, error) {
	return l.apply(ctx, userID, category, score, true)
}

func (l *Ledger) apply(ctx context.Context, userID, category string, score float64, remove bool) (*Result, error) {
	if score < 0 {
		return nil, fmt.Errorf("score must be non-negative, got %v", score)
	}

	attr := model.ParseAttribute(category)
	attrDelta := score
	totalDelta := score * ConversionRate
	if remove {
		attrDelta = -attrDelta
		totalDelta = -totalDelta
	}

	stats, prevRank, err := l.store.AdjustXP(ctx, userID, attr, attrDelta, totalDelta, func(total float64) string {
		return rank.For(total).Rank
	})
	if err != nil {
		return nil, err
	}
	if stats == nil {
		// Unknown user: deliberate no-op.
		return nil, nil
	}

	if stats.Rank != prevRank {
		l.recordRankChange(ctx, userID, stats.Rank, remove)
	}

	return &Result{Rank: stats.Rank, NewTotal: stats.CurrentXP}, nil
}

// recordRankChange writes the rank transition to the activity feed. A feed
// write failure is logged and swallowed: the XP mutation already committed
// and the feed is presentation, not bookkeeping.
func (l *Ledger) recordRankChange(ctx context.Context, userID, newRank string, remove bool) {
	entryType := model.ActivityRankUp
	description := fmt.Sprintf("Parabéns! Você alcançou o rank %s!", newRank)
	if remove {
		entryType = model.ActivityRankChange
		description = fmt.Sprintf("Seu rank mudou para %s", newRank)
	}

	if err := l.store.LogActivity(ctx, userID, entryType, description); err != nil {
		common.LogError(err, "failed to record rank change", common.Fields{
			"user_id": userID,
			"rank":    newRank,
		})
	}
}
