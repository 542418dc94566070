// Package receipt turns raw extracted document text into a structured
// transaction candidate: a monetary amount, a calendar date, and a merchant
// classification. The input is whatever the OCR/PDF layer produced, noise
// included; every extractor here is a pure function over that text.
package receipt

import (
	"regexp"
	"strconv"
	"strings"
)

// maxAmount is the exclusive ceiling for an accepted value. Anything at or
// above it is assumed to be OCR noise (barcodes, document numbers) rather
// than a plausible receipt total.
const maxAmount = 100000

// amountPatterns is ordered most-specific first. An explicit currency marker
// or label beats a bare number found anywhere in the text; only the first
// accepted match is returned.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)R\$\s*(\d+[.,]\d{2})`),                 // R$ 19,13 / R$19.13
	regexp.MustCompile(`(?i)valor[:\s]+R?\$?\s*(\d+[.,]\d{2})`),    // Valor: 19,13
	regexp.MustCompile(`(?i)total[:\s]+R?\$?\s*(\d+[.,]\d{2})`),    // Total: 19,13
	regexp.MustCompile(`(?i)pagamento[:\s]+R?\$?\s*(\d+[.,]\d{2})`), // Pagamento: 19,13
	regexp.MustCompile(`(?i)(\d+[.,]\d{2})\s*reais?`),              // 19,13 reais
	regexp.MustCompile(`(?m)^(\d+[.,]\d{2})$`),                     // two-decimal number on its own line
	regexp.MustCompile(`\b(\d{1,4}[.,]\d{2})\b`),                   // any two-decimal number, last resort
}

// ExtractAmount pulls a monetary value out of free text. It returns nil when
// no pattern yields a value in the open range (0, 100000); the caller must
// treat that as "unknown", never as zero.
func ExtractAmount(text string) *float64 {
	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
		if err != nil {
			continue
		}
		if value > 0 && value < maxAmount {
			return &value
		}
	}

	return nil
}
