package statement

import (
	"regexp"
	"strconv"
	"time"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
)

// PeriodResolver derives a statement's covered date range and inferred year
// from its full text. The year is the only output the locator depends on;
// the range is informational.
type PeriodResolver struct {
	patterns []*regexp.Regexp
	yearRe   *regexp.Regexp
}

// NewPeriodResolver compiles the configured period dialects.
func NewPeriodResolver() *PeriodResolver {
	r := &PeriodResolver{
		yearRe: regexp.MustCompile(`\b(20\d{2})\b`),
	}
	for _, p := range config.PeriodPatterns {
		r.patterns = append(r.patterns, regexp.MustCompile(`(?i)`+p))
	}
	return r
}

// Resolve extracts the statement period. When no period dialect matches,
// Start and End stay zero; Year falls back to the first 20xx token in the
// text, then to now's year.
func (r *PeriodResolver) Resolve(text string, now time.Time) domain.StatementPeriod {
	period := domain.StatementPeriod{Year: now.Year()}

	if m := r.yearRe.FindStringSubmatch(text); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			period.Year = year
		}
	}

	for _, re := range r.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		start, okStart := parseDate(m[1], period.Year, now)
		end, okEnd := parseDate(m[2], period.Year, now)
		if okStart && okEnd {
			period.Start = start
			period.End = end
			break
		}
	}

	return period
}
