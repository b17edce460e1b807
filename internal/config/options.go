package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the deduplication heuristics. The window and tolerance
// numbers are hand-tuned against real statements, not derived from data,
// which is exactly why they live here as configuration.
const (
	DefaultCCDateWindowDays               = 45
	DefaultCCAmountTolerance              = 0.15
	DefaultFuzzyDateWindowDays            = 2
	DefaultDescriptionSimilarityThreshold = 85
)

// Options controls the behavior of a single batch run. The zero value is not
// usable; construct with DefaultOptions or Load and adjust from there.
type Options struct {
	// RemoveCreditCardDuplicates enables the payment-cycle pass.
	RemoveCreditCardDuplicates bool `yaml:"remove_credit_card_duplicates"`
	// RemoveTransferDuplicates enables the transfer-pair pass.
	RemoveTransferDuplicates bool `yaml:"remove_transfer_duplicates"`
	// AggressiveDeduplication enables the optional fuzzy near-duplicate pass
	// and forces full deduplication even for a single document.
	AggressiveDeduplication bool `yaml:"aggressive_deduplication"`

	// CCDateWindowDays is how far before a credit-card payment to look for
	// the charges it settles.
	CCDateWindowDays int `yaml:"cc_date_window_days"`
	// CCAmountTolerance is the allowed relative gap between a payment and
	// the sum of its candidate charges, as a fraction of the payment.
	CCAmountTolerance float64 `yaml:"cc_amount_tolerance"`
	// FuzzyDateWindowDays bounds the fuzzy pass's date window on both sides.
	FuzzyDateWindowDays int `yaml:"fuzzy_date_window_days"`
	// DescriptionSimilarityThreshold (0-100) is the minimum similarity score
	// for both the merchant lookup and the fuzzy near-duplicate pass.
	DescriptionSimilarityThreshold int `yaml:"description_similarity_threshold"`

	// Now is the reference time for year disambiguation of year-less dates.
	// It is the pipeline's only wall-clock input; tests pin it for
	// reproducibility. Zero means time.Now at pipeline construction.
	Now time.Time `yaml:"-"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		RemoveCreditCardDuplicates:     true,
		RemoveTransferDuplicates:       true,
		AggressiveDeduplication:        false,
		CCDateWindowDays:               DefaultCCDateWindowDays,
		CCAmountTolerance:              DefaultCCAmountTolerance,
		FuzzyDateWindowDays:            DefaultFuzzyDateWindowDays,
		DescriptionSimilarityThreshold: DefaultDescriptionSimilarityThreshold,
	}
}

// Clamped returns a copy with out-of-domain values replaced by their
// documented defaults. Bad configuration is corrected, never rejected.
func (o Options) Clamped() Options {
	if o.CCDateWindowDays <= 0 {
		o.CCDateWindowDays = DefaultCCDateWindowDays
	}
	if o.CCAmountTolerance <= 0 || o.CCAmountTolerance >= 1 {
		o.CCAmountTolerance = DefaultCCAmountTolerance
	}
	if o.FuzzyDateWindowDays <= 0 {
		o.FuzzyDateWindowDays = DefaultFuzzyDateWindowDays
	}
	if o.DescriptionSimilarityThreshold < 0 || o.DescriptionSimilarityThreshold > 100 {
		o.DescriptionSimilarityThreshold = DefaultDescriptionSimilarityThreshold
	}
	return o
}

// Load reads Options from a YAML file, starting from the defaults so absent
// keys keep their documented values.
func Load(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config.Load: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("config.Load: parsing %s: %w", path, err)
	}

	return opts.Clamped(), nil
}
