package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	datePrefixRe = regexp.MustCompile(`(?i)^(date|trans|transaction)\s*:?\s*`)
	dateJunkRe   = regexp.MustCompile(`[(),]`)
	amountJunkRe = regexp.MustCompile(`[^\d.\-]`)
)

// Layouts tried in order. Two-digit-year layouts are listed separately so
// the century rule below can apply.
var (
	// Comma-less month layouts: cleanup strips commas before parsing, so
	// "Jan 15, 2024" arrives as "Jan 15 2024".
	yearLayouts = []string{
		"1/2/2006", "2006/1/2", "2006-1-2", "1-2-2006",
		"Jan 2 2006", "January 2 2006",
	}
	shortYearLayouts = []string{"1/2/06", "1-2-06"}
	yearlessLayouts  = []string{"1/2", "1-2", "Jan 2", "January 2"}
)

// futureSlack is how far past "now" a year-less date may land before the
// previous year is substituted. Statements crossing a year boundary carry
// December dates that would otherwise resolve eleven months into the future.
const futureSlack = 30 * 24 * time.Hour

// parseDate parses one date string from a statement line. Year-less dates
// take statementYear, falling back to the prior year when the result lands
// more than 30 days after now. Returns false when no dialect matches.
func parseDate(raw string, statementYear int, now time.Time) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	s = datePrefixRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(dateJunkRe.ReplaceAllString(s, ""))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range yearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range shortYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// Two-digit years: 00-49 are 2000s, 50-99 are 1900s.
			d := t.Year() % 100
			year := 1900 + d
			if d < 50 {
				year = 2000 + d
			}
			return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			resolved := time.Date(statementYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			if resolved.After(now.Add(futureSlack)) {
				resolved = resolved.AddDate(-1, 0, 0)
			}
			return resolved, true
		}
	}
	return time.Time{}, false
}

// parseAmount cleans one matched amount string into a signed decimal.
// Parenthesized amounts are forced negative. Returns false when nothing
// numeric survives cleanup.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")

	cleaned := amountJunkRe.ReplaceAllString(s, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		amount = amount.Abs().Neg()
	}
	return amount, true
}
