package xp

import (
	"strings"

	"github.com/atlasdev/atlas/internal/model"
)

// TransactionXP is the score awarded to FINANCEIRO when a qualifying
// financial transaction is created, and removed when it is deleted.
const TransactionXP = 10.0

// IsInvestmentIncome reports whether a transaction qualifies for the
// FINANCEIRO award: income tagged with an investment category. The misspelled
// variants are kept because historical data contains them.
func IsInvestmentIncome(txType, category string) bool {
	if txType != model.TransactionIncome {
		return false
	}
	switch strings.ToLower(category) {
	case "investimento", "investimentos", "investimientos":
		return true
	}
	return false
}
