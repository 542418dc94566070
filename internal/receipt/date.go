package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthsByName maps Portuguese month names and their three-letter
// abbreviations, both of which appear in bank statements (Nubank spells the
// month out, Mercado Pago abbreviates).
var monthsByName = map[string]time.Month{
	"janeiro": time.January, "jan": time.January,
	"fevereiro": time.February, "fev": time.February,
	"março": time.March, "mar": time.March,
	"abril": time.April, "abr": time.April,
	"maio": time.May, "mai": time.May,
	"junho": time.June, "jun": time.June,
	"julho": time.July, "jul": time.July,
	"agosto": time.August, "ago": time.August,
	"setembro": time.September, "set": time.September,
	"outubro": time.October, "out": time.October,
	"novembro": time.November, "nov": time.November,
	"dezembro": time.December, "dez": time.December,
}

type datePattern struct {
	extract func([]string) *time.Time
	re      *regexp.Regexp
}

// datePatterns is ordered most-specific first and evaluated against a
// lowercased copy of the text.
var datePatterns = []datePattern{
	{
		// "29 de dezembro de 2025" (long form used by Nubank and Mercado Pago)
		re: regexp.MustCompile(`(\d{1,2})\s+de\s+(\w+)\s+de\s+(\d{4})`),
		extract: func(m []string) *time.Time {
			month, ok := monthsByName[m[2]]
			if !ok {
				return nil
			}
			return makeDate(atoi(m[3]), month, atoi(m[1]))
		},
	},
	{
		// ISO-like: 2025-12-29 or 2025/12/29
		re: regexp.MustCompile(`(\d{4})[-/](\d{2})[-/](\d{2})`),
		extract: func(m []string) *time.Time {
			return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
		},
	},
	{
		// DD/MM/YYYY
		re: regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`),
		extract: func(m []string) *time.Time {
			return makeDate(atoi(m[3]), time.Month(atoi(m[2])), atoi(m[1]))
		},
	},
	{
		// DD/MM/YY, assumed to be in the 2000s
		re: regexp.MustCompile(`(\d{2})/(\d{2})/(\d{2})`),
		extract: func(m []string) *time.Time {
			return makeDate(2000+atoi(m[3]), time.Month(atoi(m[2])), atoi(m[1]))
		},
	},
	{
		// Explicitly labelled: "data: 29/12/2025"
		re: regexp.MustCompile(`data[:\s]+(\d{2})/(\d{2})/(\d{4})`),
		extract: func(m []string) *time.Time {
			return makeDate(atoi(m[3]), time.Month(atoi(m[2])), atoi(m[1]))
		},
	},
}

// ExtractDate pulls a calendar date out of free text. The first pattern that
// matches and yields a calendar-valid date wins; nil means no date was found.
// There is no "today" fallback here — defaulting is the caller's call.
func ExtractDate(text string) *time.Time {
	lower := strings.ToLower(text)

	for _, pattern := range datePatterns {
		match := pattern.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		if date := pattern.extract(match); date != nil {
			return date
		}
	}

	return nil
}

// makeDate builds a date and verifies the components survived: time.Date
// normalizes impossible dates (31/02 becomes 03/03), so a round-trip mismatch
// means the regex matched something that is not a real calendar day.
func makeDate(year int, month time.Month, day int) *time.Time {
	if month < time.January || month > time.December {
		return nil
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return nil
	}
	return &date
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
