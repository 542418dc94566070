package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction flow directions.
const (
	TransactionIncome  = "entrada"
	TransactionExpense = "saida"
)

// Transaction is a confirmed financial record, usually born from a
// ParsedReceipt after the user filled in any missing fields.
type Transaction struct {
	Date          time.Time
	CreatedAt     time.Time
	ID            string
	Hash          string
	Description   string
	Establishment string
	Type          string // entrada or saida
	Category      string
	Subcategory   string
	CategoryType  string
	Amount        float64
}

// GenerateHash creates a stable hash for duplicate detection, so re-uploading
// the same receipt does not book the expense twice.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Establishment,
		t.Category)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
