package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		want *float64
		name string
		text string
	}{
		{
			name: "currency prefix with comma",
			text: "Pagamento aprovado\nR$ 19,13\nObrigado",
			want: floatPtr(19.13),
		},
		{
			name: "currency prefix without space",
			text: "Compra no valor de R$19.13",
			want: floatPtr(19.13),
		},
		{
			name: "labelled total",
			text: "Cupom fiscal\nTotal: 132,50\nVolte sempre",
			want: floatPtr(132.50),
		},
		{
			name: "labelled valor with currency",
			text: "Valor: R$ 45,90",
			want: floatPtr(45.90),
		},
		{
			name: "reais suffix",
			text: "foram cobrados 19,13 reais na fatura",
			want: floatPtr(19.13),
		},
		{
			name: "bare number on its own line",
			text: "SUPERMERCADO XYZ\n87,20\nCUPOM 0123",
			want: floatPtr(87.20),
		},
		{
			name: "currency prefix wins over bare number",
			text: "Ref 12.34\nTotal a pagar R$ 50,00",
			want: floatPtr(50.00),
		},
		{
			name: "value above ceiling rejected",
			text: "R$ 150000,00",
			want: nil,
		},
		{
			name: "ceiling rejection falls through to next pattern",
			text: "R$ 150000,00\ntotal: 89,90",
			want: floatPtr(89.90),
		},
		{
			name: "no amount present",
			text: "Obrigado pela preferência",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmount(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.001)
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
