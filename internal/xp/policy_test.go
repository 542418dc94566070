package xp

import (
	"testing"

	"github.com/atlasdev/atlas/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsInvestmentIncome(t *testing.T) {
	tests := []struct {
		name     string
		txType   string
		category string
		want     bool
	}{
		{name: "investment income", txType: model.TransactionIncome, category: "investimento", want: true},
		{name: "plural variant", txType: model.TransactionIncome, category: "investimentos", want: true},
		{name: "legacy misspelling", txType: model.TransactionIncome, category: "investimientos", want: true},
		{name: "case insensitive", txType: model.TransactionIncome, category: "Investimento", want: true},
		{name: "investment expense does not qualify", txType: model.TransactionExpense, category: "investimento", want: false},
		{name: "ordinary income", txType: model.TransactionIncome, category: "salario", want: false},
		{name: "empty category", txType: model.TransactionIncome, category: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInvestmentIncome(tt.txType, tt.category))
		})
	}
}
