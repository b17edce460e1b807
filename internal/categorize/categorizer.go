package categorize

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
)

// Config carries the immutable tables a Categorizer is built from. Zero
// fields fall back to the built-in defaults.
type Config struct {
	Keywords  []config.CategoryKeywords
	Merchants []config.Merchant
	// CustomRules map a lower-case keyword to a category and outrank every
	// built-in rule.
	CustomRules map[string]domain.Category
	// SimilarityThreshold (0-100) gates the fuzzy merchant lookup.
	SimilarityThreshold int
	Logger              zerolog.Logger
}

// Categorizer is a pure function of (description, amount, date) over the
// tables it was constructed with. It holds no mutable state and is safe for
// concurrent use.
type Categorizer struct {
	normalizer *Normalizer
	rules      []Rule
	merchant   merchantRule
	keywords   map[domain.Category][]string
	log        zerolog.Logger
}

// New builds a Categorizer with its rule chain in precedence order.
func New(cfg Config) *Categorizer {
	if cfg.Keywords == nil {
		cfg.Keywords = config.DefaultCategoryKeywords()
	}
	if cfg.Merchants == nil {
		cfg.Merchants = config.DefaultMerchants()
	}
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 100 {
		cfg.SimilarityThreshold = config.DefaultDescriptionSimilarityThreshold
	}

	merchant := merchantRule{merchants: cfg.Merchants, threshold: cfg.SimilarityThreshold}

	rules := make([]Rule, 0, 9)
	if len(cfg.CustomRules) > 0 {
		rules = append(rules, newCustomRule(cfg.CustomRules))
	}
	rules = append(rules,
		newIncomeRule(),
		newCCPaymentRule(),
		newTransferRule(),
		newFeeRule(),
		merchant,
		newAmountBandRule(),
		timingRule{},
		newKeywordRule(cfg.Keywords),
	)

	keywords := make(map[domain.Category][]string, len(cfg.Keywords))
	for _, entry := range cfg.Keywords {
		for _, kw := range entry.Keywords {
			keywords[entry.Category] = append(keywords[entry.Category], strings.ToLower(kw))
		}
	}

	return &Categorizer{
		normalizer: NewNormalizer(),
		rules:      rules,
		merchant:   merchant,
		keywords:   keywords,
		log:        cfg.Logger,
	}
}

// Categorize assigns exactly one category. Malformed input never fails:
// an empty description and a zero date simply skip the rules that need
// them, and the fallback is always Other.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal, date time.Time) domain.Category {
	normalized := c.normalizer.Normalize(description)
	in := Input{
		Description: normalized,
		Lower:       strings.ToLower(normalized),
		Amount:      amount,
		Date:        date,
	}

	for _, rule := range c.rules {
		if category, ok := rule.Apply(in); ok {
			c.log.Trace().
				Str("rule", rule.Name()).
				Str("category", string(category)).
				Str("description", normalized).
				Msg("rule fired")
			return category
		}
	}
	return domain.CategoryOther
}

// Confidence is an independent High/Medium/Low estimate for review tooling.
// It never influences Categorize.
const highConfidenceThreshold = 90

func (c *Categorizer) Confidence(description string, category domain.Category) domain.Confidence {
	lower := strings.ToLower(description)

	if _, _, ok := c.merchant.match(lower, highConfidenceThreshold); ok {
		return domain.ConfidenceHigh
	}
	for _, kw := range c.keywords[category] {
		if strings.Contains(lower, kw) {
			return domain.ConfidenceMedium
		}
	}
	return domain.ConfidenceLow
}

// largeUncategorized is the magnitude above which an Other row is worth a
// manual look.
var largeUncategorized = decimal.NewFromInt(100)

// Hints flags rows whose categorization likely needs review: large amounts
// that fell through to Other, and Shopping rows that look like groceries.
func Hints(rows []domain.Transaction) []domain.ReviewHint {
	var hints []domain.ReviewHint
	for i, row := range rows {
		lower := strings.ToLower(row.Description)

		if row.Category == domain.CategoryOther && row.Amount.Abs().GreaterThan(largeUncategorized) {
			hints = append(hints, domain.ReviewHint{
				Index:     i,
				Suggested: domain.CategoryOther,
				Reason:    "large uncategorized transaction",
			})
		}
		if row.Category == domain.CategoryShopping && containsAny(lower, "market", "grocery", "food") {
			hints = append(hints, domain.ReviewHint{
				Index:     i,
				Suggested: domain.CategoryGroceries,
				Reason:    "likely grocery store",
			})
		}
	}
	return hints
}
