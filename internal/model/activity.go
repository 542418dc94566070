package model

import "time"

// Activity entry types written to the activity feed.
const (
	ActivityRankUp             = "rank_up"
	ActivityRankChange         = "rank_change"
	ActivityTransactionAdded   = "transaction_added"
	ActivityTransactionRemoved = "transaction_removed"
)

// ActivityEntry is one line in a user's activity feed.
type ActivityEntry struct {
	CreatedAt   time.Time
	UserID      string
	Type        string
	Description string
}
