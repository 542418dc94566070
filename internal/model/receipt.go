package model

import "time"

// Expense classification tags. "essencial" marks non-discretionary spending,
// "variavel" marks lifestyle/optional spending.
const (
	TypeEssential     = "essencial"
	TypeDiscretionary = "variavel"
)

// CategoryOther is the fallback bucket for text that matches no known
// merchant keyword.
const CategoryOther = "outros"

// SubcategoryPayment tags payment intermediaries (processors, wallets) that
// say nothing about what was actually bought.
const SubcategoryPayment = "pagamento"

// ParsedReceipt is the structured result of running the receipt text pipeline
// over one uploaded document. It is transient: the caller decides what to
// persist after the user confirms or fills in missing fields.
//
// Amount, Date, Establishment and Description are nil when extraction found
// nothing — "unknown" is distinct from zero and must stay that way. Category,
// Subcategory and CategoryType are always populated, falling back to the
// "outros" bucket.
type ParsedReceipt struct {
	Amount        *float64
	Date          *time.Time
	Establishment *string
	Description   *string
	Category      string
	Subcategory   string
	CategoryType  string
}
