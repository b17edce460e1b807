package categorize

import (
	"regexp"
	"sort"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/shopspring/decimal"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
)

// Input is one row under classification. Description is the normalized
// text; Lower is its lower-cased form, precomputed once per row.
type Input struct {
	Description string
	Lower       string
	Amount      decimal.Decimal
	Date        time.Time
}

// Rule attempts to classify a row. Rules are evaluated in a fixed order and
// the first rule to claim a row decides its category.
type Rule interface {
	Name() string
	Apply(in Input) (domain.Category, bool)
}

func compileAlternation(patterns []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + strings.Join(patterns, "|"))
}

// customRule applies caller-supplied keyword overrides ahead of every
// built-in heuristic. Overrides are checked in sorted keyword order so the
// outcome never depends on map iteration.
type customRule struct {
	keywords  []string
	overrides map[string]domain.Category
}

func newCustomRule(overrides map[string]domain.Category) customRule {
	r := customRule{overrides: make(map[string]domain.Category, len(overrides))}
	for kw, category := range overrides {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		r.keywords = append(r.keywords, kw)
		r.overrides[kw] = category
	}
	sort.Strings(r.keywords)
	return r
}

func (customRule) Name() string { return "custom" }

func (r customRule) Apply(in Input) (domain.Category, bool) {
	for _, keyword := range r.keywords {
		if strings.Contains(in.Lower, keyword) {
			return r.overrides[keyword], true
		}
	}
	return "", false
}

// incomeRule claims positive amounts with income-shaped descriptions.
type incomeRule struct {
	re *regexp.Regexp
}

func newIncomeRule() incomeRule { return incomeRule{compileAlternation(config.IncomePatterns)} }

func (incomeRule) Name() string { return "income" }

func (r incomeRule) Apply(in Input) (domain.Category, bool) {
	if in.Amount.IsPositive() && r.re.MatchString(in.Lower) {
		return domain.CategoryIncome, true
	}
	return "", false
}

// ccPaymentRule claims negative amounts carrying credit-card payment
// phrasing. It outranks the merchant lookup so "CHASE CREDIT CRD PAYMENT
// THANK YOU" lands in Bills & Utilities, not wherever fuzzy matching drifts.
type ccPaymentRule struct {
	re *regexp.Regexp
}

func newCCPaymentRule() ccPaymentRule {
	return ccPaymentRule{compileAlternation(config.CCPaymentKeywordPatterns)}
}

func (ccPaymentRule) Name() string { return "cc_payment" }

func (r ccPaymentRule) Apply(in Input) (domain.Category, bool) {
	if in.Amount.IsNegative() && r.re.MatchString(in.Lower) {
		return domain.CategoryBills, true
	}
	return "", false
}

// transferRule claims account-to-account movement, either sign.
type transferRule struct {
	re *regexp.Regexp
}

func newTransferRule() transferRule {
	return transferRule{compileAlternation(config.TransferKeywordPatterns)}
}

func (transferRule) Name() string { return "transfer" }

func (r transferRule) Apply(in Input) (domain.Category, bool) {
	if r.re.MatchString(in.Lower) {
		return domain.CategoryTransfer, true
	}
	return "", false
}

// feeRule claims bank fee descriptions.
type feeRule struct {
	re *regexp.Regexp
}

func newFeeRule() feeRule { return feeRule{compileAlternation(config.FeePatterns)} }

func (feeRule) Name() string { return "fee" }

func (r feeRule) Apply(in Input) (domain.Category, bool) {
	if r.re.MatchString(in.Lower) {
		return domain.CategoryBankingFees, true
	}
	return "", false
}

// merchantRule fuzzy-matches the description against the known-merchant
// table: the best of substring-overlap and token-order-insensitive scores,
// accepted at or above the threshold.
type merchantRule struct {
	merchants []config.Merchant
	threshold int
}

func (merchantRule) Name() string { return "merchant" }

func (r merchantRule) Apply(in Input) (domain.Category, bool) {
	if category, _, ok := r.match(in.Lower, r.threshold); ok {
		return category, true
	}
	return "", false
}

// match returns the best-scoring merchant category at or above threshold.
func (r merchantRule) match(lower string, threshold int) (domain.Category, int, bool) {
	if strings.TrimSpace(lower) == "" {
		return "", 0, false
	}
	if threshold < 0 || threshold > 100 {
		threshold = config.DefaultDescriptionSimilarityThreshold
	}

	var best domain.Category
	bestScore := 0
	for _, m := range r.merchants {
		score := fuzzy.PartialRatio(m.Name, lower)
		if token := fuzzy.TokenSortRatio(m.Name, lower); token > score {
			score = token
		}
		if score >= threshold && score > bestScore {
			bestScore = score
			best = m.Category
		}
	}
	return best, bestScore, best != ""
}

// Amount band boundaries for the band heuristics.
var (
	bandSmall = decimal.NewFromInt(5)
	bandMid   = decimal.NewFromInt(50)
	bandLarge = decimal.NewFromInt(1000)
)

// amountBandRule applies magnitude-banded keyword checks: pocket-change
// rows are fees or coffee, mid-size rows gas or groceries, four-figure rows
// rent, medical, or tuition.
type amountBandRule struct {
	feeRe *regexp.Regexp
}

func newAmountBandRule() amountBandRule {
	return amountBandRule{compileAlternation(config.FeePatterns)}
}

func (amountBandRule) Name() string { return "amount_band" }

func (r amountBandRule) Apply(in Input) (domain.Category, bool) {
	abs := in.Amount.Abs()

	switch {
	case abs.LessThan(bandSmall):
		if r.feeRe.MatchString(in.Lower) {
			return domain.CategoryBankingFees, true
		}
		if containsAny(in.Lower, "coffee", "drink", "snack") || strings.Contains(in.Lower, "tip") {
			return domain.CategoryFoodDining, true
		}
	case abs.LessThanOrEqual(bandMid):
		if containsAny(in.Lower, "gas", "fuel", "station") {
			return domain.CategoryTransportation, true
		}
		if containsAny(in.Lower, "grocery", "food", "market") {
			return domain.CategoryGroceries, true
		}
	case abs.GreaterThan(bandLarge):
		if containsAny(in.Lower, "rent", "mortgage", "property") {
			return domain.CategoryBills, true
		}
		if containsAny(in.Lower, "hospital", "medical", "surgery", "emergency") {
			return domain.CategoryHealthcare, true
		}
		if containsAny(in.Lower, "tuition", "university", "college") {
			return domain.CategoryEducation, true
		}
	}
	return "", false
}

// timingRule uses when a transaction happened: weekend leisure spend, and
// small-hours automation. Rows without a usable date pass through.
type timingRule struct{}

func (timingRule) Name() string { return "timing" }

func (timingRule) Apply(in Input) (domain.Category, bool) {
	if in.Date.IsZero() {
		return "", false
	}

	// Friday through Sunday.
	if wd := in.Date.Weekday(); wd == time.Friday || wd == time.Saturday || wd == time.Sunday {
		if containsAny(in.Lower, "restaurant", "bar", "movie", "entertainment", "game", "theater") {
			return domain.CategoryEntertainment, true
		}
	}

	// Before 6 AM, likely automated.
	if in.Date.Hour() < 6 {
		if containsAny(in.Lower, "autopay", "automatic", "recurring", "bill") {
			return domain.CategoryBills, true
		}
	}
	return "", false
}

// keywordRule is the scoring fallback: every category earns 10 points per
// word-boundary keyword match, highest nonzero total wins, ties broken by
// category declaration order.
type keywordRule struct {
	categories []scoredCategory
}

type scoredCategory struct {
	category domain.Category
	patterns []*regexp.Regexp
}

func newKeywordRule(table []config.CategoryKeywords) keywordRule {
	r := keywordRule{}
	for _, entry := range table {
		sc := scoredCategory{category: entry.Category}
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			sc.patterns = append(sc.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		r.categories = append(r.categories, sc)
	}
	return r
}

func (keywordRule) Name() string { return "keyword_score" }

func (r keywordRule) Apply(in Input) (domain.Category, bool) {
	var best domain.Category
	bestScore := 0
	for _, sc := range r.categories {
		score := 0
		for _, re := range sc.patterns {
			score += len(re.FindAllString(in.Lower, -1)) * 10
		}
		// Strictly greater: earlier declaration wins ties.
		if score > bestScore {
			bestScore = score
			best = sc.category
		}
	}
	if bestScore > 0 {
		return best, true
	}
	return "", false
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
