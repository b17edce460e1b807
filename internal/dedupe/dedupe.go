// Package dedupe removes duplicate and double-counted transactions from the
// cross-document union via four ordered passes: exact duplicates,
// credit-card payment cycles, transfer pairs, and (optionally) fuzzy
// near-duplicates. A row removed by an earlier pass is invisible to later
// passes; zero matches in any pass is a normal outcome.
package dedupe

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
)

// Deduplicator holds the compiled classification patterns and the active
// options. It is stateless across runs and safe for concurrent use.
type Deduplicator struct {
	opts       config.Options
	ccRe       *regexp.Regexp
	transferRe *regexp.Regexp

	normPrefixRe *regexp.Regexp
	normSuffixRe *regexp.Regexp
	normDigitsRe *regexp.Regexp

	log zerolog.Logger
}

// New builds a Deduplicator from clamped options.
func New(opts config.Options, log zerolog.Logger) *Deduplicator {
	opts = opts.Clamped()
	return &Deduplicator{
		opts:         opts,
		ccRe:         regexp.MustCompile(`(?i)` + strings.Join(config.DedupCCPaymentPatterns, "|")),
		transferRe:   regexp.MustCompile(`(?i)` + strings.Join(config.DedupTransferPatterns, "|")),
		normPrefixRe: regexp.MustCompile(`^(debit|credit|online|web|pos|purchase|payment|transaction)\s+`),
		normSuffixRe: regexp.MustCompile(`\s+(payment|purchase|transaction|charge)$`),
		normDigitsRe: regexp.MustCompile(`[\d\-/\*#]+`),
		log:          log,
	}
}

// Deduplicate runs the configured passes in order over rows and returns the
// surviving rows plus the report. Input order (concatenation order across
// documents) is the insertion order used for every keep-first tie-break.
func (d *Deduplicator) Deduplicate(rows []domain.Transaction) ([]domain.Transaction, *domain.DedupReport) {
	passes := []domain.DedupPass{domain.PassExact}
	if d.opts.RemoveCreditCardDuplicates {
		passes = append(passes, domain.PassPaymentCycle)
	}
	if d.opts.RemoveTransferDuplicates {
		passes = append(passes, domain.PassTransferPair)
	}
	if d.opts.AggressiveDeduplication {
		passes = append(passes, domain.PassFuzzy)
	}
	return d.run(rows, passes)
}

// ExactOnly runs just the exact-duplicate pass, the single-document path.
func (d *Deduplicator) ExactOnly(rows []domain.Transaction) ([]domain.Transaction, *domain.DedupReport) {
	return d.run(rows, []domain.DedupPass{domain.PassExact})
}

func (d *Deduplicator) run(rows []domain.Transaction, passes []domain.DedupPass) ([]domain.Transaction, *domain.DedupReport) {
	report := domain.NewDedupReport(passes...)
	removed := make([]bool, len(rows))

	for _, pass := range passes {
		var count int
		switch pass {
		case domain.PassExact:
			count = d.exactPass(rows, removed)
		case domain.PassPaymentCycle:
			count = d.paymentCyclePass(rows, removed, report)
		case domain.PassTransferPair:
			count = d.transferPairPass(rows, removed)
		case domain.PassFuzzy:
			count = d.fuzzyPass(rows, removed)
		}
		report.Removed[pass] = count
		d.log.Debug().Str("pass", string(pass)).Int("removed", count).Msg("deduplication pass complete")
	}

	kept := make([]domain.Transaction, 0, len(rows))
	for i, row := range rows {
		if !removed[i] {
			kept = append(kept, row)
		}
	}
	return kept, report
}

// normalizeDescription strips affixes and digit runs so formatting noise
// does not defeat comparison.
func (d *Deduplicator) normalizeDescription(desc string) string {
	s := strings.ToLower(strings.TrimSpace(desc))
	s = d.normPrefixRe.ReplaceAllString(s, "")
	s = d.normSuffixRe.ReplaceAllString(s, "")
	s = d.normDigitsRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// isCreditCardPayment reports whether the row is an aggregate payment to a
// credit card: payment phrasing plus a negative amount.
func (d *Deduplicator) isCreditCardPayment(row domain.Transaction) bool {
	return row.Amount.IsNegative() && d.ccRe.MatchString(row.Description)
}

// isTransfer reports whether the row moves money between the user's own
// accounts.
func (d *Deduplicator) isTransfer(row domain.Transaction) bool {
	return d.transferRe.MatchString(row.Description)
}

// exactPass removes rows sharing (date, normalized description, amount)
// with an earlier row.
func (d *Deduplicator) exactPass(rows []domain.Transaction, removed []bool) int {
	seen := make(map[string]bool, len(rows))
	count := 0
	for i, row := range rows {
		if removed[i] {
			continue
		}
		key := row.Date.Format("2006-01-02") + "|" + d.normalizeDescription(row.Description) + "|" + row.Amount.String()
		if seen[key] {
			removed[i] = true
			count++
			continue
		}
		seen[key] = true
	}
	return count
}

// paymentCyclePass resolves credit-card double counting: when the charges
// inside a payment's billing window sum to within tolerance of the payment,
// the aggregate payment row is dropped and the itemized charges are kept.
// Payments with no plausible charge set are retained and reported.
func (d *Deduplicator) paymentCyclePass(rows []domain.Transaction, removed []bool, report *domain.DedupReport) int {
	tolerance := decimal.NewFromFloat(d.opts.CCAmountTolerance)
	count := 0

	for i, payment := range rows {
		if removed[i] || !d.isCreditCardPayment(payment) {
			continue
		}

		paymentAmount := payment.Amount.Abs()
		windowStart := payment.Date.AddDate(0, 0, -d.opts.CCDateWindowDays)
		windowEnd := payment.Date.AddDate(0, 0, 2) // small buffer for processing delays

		charges := 0
		total := decimal.Zero
		for j, row := range rows {
			if j == i || removed[j] {
				continue
			}
			if row.Date.Before(windowStart) || row.Date.After(windowEnd) {
				continue
			}
			if !row.Amount.IsNegative() {
				continue
			}
			if d.ccRe.MatchString(row.Description) || d.isTransfer(row) {
				continue
			}
			charges++
			total = total.Add(row.Amount.Abs())
		}

		if charges > 0 && total.Sub(paymentAmount).Abs().LessThanOrEqual(paymentAmount.Mul(tolerance)) {
			removed[i] = true
			count++
			report.ChargesCovered += charges
			d.log.Info().
				Str("payment", paymentAmount.StringFixed(2)).
				Str("charges_total", total.StringFixed(2)).
				Int("charges", charges).
				Msg("payment cycle matched, removing aggregate payment")
			continue
		}

		report.UnmatchedPayments = append(report.UnmatchedPayments, domain.UnmatchedPayment{
			Amount:      paymentAmount,
			Date:        payment.Date,
			Description: payment.Description,
		})
	}
	return count
}

// transferPairPass collapses the same transfer appearing in two linked
// accounts' statements: transfer rows sharing date and magnitude keep only
// their first occurrence by insertion order.
func (d *Deduplicator) transferPairPass(rows []domain.Transaction, removed []bool) int {
	seen := make(map[string]bool, len(rows))
	count := 0
	for i, row := range rows {
		if removed[i] || !d.isTransfer(row) {
			continue
		}
		key := row.Date.Format("2006-01-02") + "|" + row.Amount.Abs().String()
		if seen[key] {
			removed[i] = true
			count++
			continue
		}
		seen[key] = true
	}
	return count
}

// fuzzyAmountFloor is the minimum absolute tolerance for the fuzzy pass.
var fuzzyAmountFloor = decimal.NewFromInt(1)

// fuzzyRelTolerance is the relative amount tolerance for the fuzzy pass.
var fuzzyRelTolerance = decimal.NewFromFloat(0.01)

// fuzzyPass removes near-duplicates: rows within the configured day window
// whose amounts differ by at most max(1%, $1) and whose normalized
// descriptions score at or above the similarity threshold. The later row by
// (date, insertion order) is removed.
func (d *Deduplicator) fuzzyPass(rows []domain.Transaction, removed []bool) int {
	count := 0
	for i := range rows {
		if removed[i] {
			continue
		}
		iAmount := rows[i].Amount.Abs()
		iDesc := d.normalizeDescription(rows[i].Description)
		if iDesc == "" {
			continue
		}

		for j := i + 1; j < len(rows); j++ {
			if removed[j] {
				continue
			}

			dayDiff := rows[j].Date.Sub(rows[i].Date).Hours() / 24
			if dayDiff < 0 {
				dayDiff = -dayDiff
			}
			if dayDiff > float64(d.opts.FuzzyDateWindowDays) {
				continue
			}

			jAmount := rows[j].Amount.Abs()
			limit := decimal.Max(iAmount.Mul(fuzzyRelTolerance), fuzzyAmountFloor)
			if iAmount.Sub(jAmount).Abs().GreaterThan(limit) {
				continue
			}

			jDesc := d.normalizeDescription(rows[j].Description)
			if jDesc == "" {
				continue
			}
			if fuzzy.Ratio(iDesc, jDesc) < d.opts.DescriptionSimilarityThreshold {
				continue
			}

			// Remove the later row by (date, insertion order).
			drop := j
			if rows[j].Date.Before(rows[i].Date) {
				drop = i
			}
			removed[drop] = true
			count++
			if drop == i {
				break
			}
		}
	}
	return count
}

// Summarize counts the broad transaction types in rows, for reporting.
func (d *Deduplicator) Summarize(rows []domain.Transaction) domain.TypeSummary {
	var s domain.TypeSummary
	for _, row := range rows {
		switch {
		case d.isCreditCardPayment(row):
			s.CreditCardPayments++
		case d.isTransfer(row):
			s.Transfers++
		default:
			s.Regular++
		}
	}
	return s
}
