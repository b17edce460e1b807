package statement

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
)

const (
	minLineLength  = 10
	maxDescription = 100
	minDescription = 2 // descriptions must be strictly longer than this
)

// minAmount is the smallest magnitude treated as a real transaction.
var minAmount = decimal.New(1, -2)

// Locator scans extracted statement lines for transaction-shaped content:
// a date in one of the known dialects plus an amount in one of the known
// amount dialects, with the leftover tokens forming the description.
type Locator struct {
	datePatterns   []*regexp.Regexp
	amountPatterns []*regexp.Regexp
	numericToken   *regexp.Regexp
	markers        []string
	log            zerolog.Logger
}

// NewLocator compiles the configured date/amount dialects.
func NewLocator(log zerolog.Logger) *Locator {
	l := &Locator{
		numericToken: regexp.MustCompile(`^[\d\.\-\$\(\),]*$`),
		markers:      config.BoilerplateMarkers,
		log:          log,
	}
	for _, p := range config.DatePatterns {
		l.datePatterns = append(l.datePatterns, regexp.MustCompile(p))
	}
	for _, p := range config.AmountPatterns {
		l.amountPatterns = append(l.amountPatterns, regexp.MustCompile(p))
	}
	return l
}

// Locate extracts raw transactions from lines. Lines lacking a date or an
// amount are skipped silently; that is the normal fate of most statement
// text. In-document exact duplicates are collapsed here, before any
// cross-document deduplication, and the result is sorted by date.
func (l *Locator) Locate(lines []string, period domain.StatementPeriod, now time.Time, sourceID string) []domain.Transaction {
	var txns []domain.Transaction

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if len(line) < minLineLength {
			continue
		}
		if l.isBoilerplate(line) {
			continue
		}

		date, ok := l.findDate(line, period.Year, now)
		if !ok {
			continue
		}
		amount, ok := l.findAmount(line)
		if !ok {
			continue
		}

		desc := l.describeLine(line)
		if len(desc) <= minDescription {
			continue
		}

		txns = append(txns, domain.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			SourceLine:  line,
			SourceID:    sourceID,
		})
	}

	txns = collapseExact(txns)
	sort.SliceStable(txns, func(i, j int) bool { return txns[i].Date.Before(txns[j].Date) })

	l.log.Debug().
		Str("source", sourceID).
		Int("lines", len(lines)).
		Int("transactions", len(txns)).
		Msg("located transactions")
	return txns
}

func (l *Locator) isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range l.markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// findDate tries each date dialect in order; first parseable match wins.
func (l *Locator) findDate(line string, statementYear int, now time.Time) (time.Time, bool) {
	for _, re := range l.datePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if date, ok := parseDate(m[1], statementYear, now); ok {
			return date, true
		}
	}
	return time.Time{}, false
}

// findAmount tries each amount dialect in order; the first match of at
// least one cent wins.
func (l *Locator) findAmount(line string) (decimal.Decimal, bool) {
	for _, re := range l.amountPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		amount, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if amount.Abs().GreaterThanOrEqual(minAmount) {
			return amount, true
		}
	}
	return decimal.Zero, false
}

// describeLine removes date/amount matches and pure numeric or currency
// tokens, leaving the merchant text.
func (l *Locator) describeLine(line string) string {
	var parts []string

wordLoop:
	for _, word := range strings.Fields(line) {
		for _, re := range l.datePatterns {
			if re.MatchString(word) {
				continue wordLoop
			}
		}
		for _, re := range l.amountPatterns {
			if re.MatchString(word) {
				continue wordLoop
			}
		}
		if l.numericToken.MatchString(word) {
			continue
		}
		parts = append(parts, word)
	}

	desc := strings.Join(parts, " ")
	desc = strings.Join(strings.Fields(desc), " ")
	if len(desc) > maxDescription {
		desc = desc[:maxDescription]
	}
	return strings.TrimSpace(desc)
}

// collapseExact drops in-document duplicates with identical date,
// description, and amount, keeping the first occurrence.
func collapseExact(txns []domain.Transaction) []domain.Transaction {
	seen := make(map[string]bool, len(txns))
	unique := txns[:0]
	for _, t := range txns {
		key := t.Date.Format("2006-01-02") + "|" + t.Description + "|" + t.Amount.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
	}
	return unique
}
