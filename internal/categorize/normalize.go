// Package categorize assigns each transaction exactly one category from the
// closed taxonomy via an ordered rule pipeline: every rule either claims the
// row or passes it along, and the first claim wins.
package categorize

import (
	"regexp"
	"strings"

	"github.com/abtonmoy/vault-finance/internal/config"
)

type rewrite struct {
	re      *regexp.Regexp
	replace string
}

// Normalizer rewrites raw statement descriptions into comparable merchant
// text: canonical merchant names, then card-network prefixes, store numbers,
// and stray digit runs stripped.
type Normalizer struct {
	merchant []rewrite
	cleanup  []rewrite
}

// NewNormalizer compiles the configured rewrite tables.
func NewNormalizer() *Normalizer {
	n := &Normalizer{}
	for _, r := range config.MerchantRewrites {
		n.merchant = append(n.merchant, rewrite{regexp.MustCompile(`(?i)` + r.Pattern), r.Replace})
	}
	for _, r := range config.CleanupRewrites {
		n.cleanup = append(n.cleanup, rewrite{regexp.MustCompile(`(?i)` + r.Pattern), r.Replace})
	}
	return n
}

// Normalize returns the cleaned description. Safe on empty input.
func (n *Normalizer) Normalize(description string) string {
	desc := strings.TrimSpace(description)
	for _, r := range n.merchant {
		desc = r.re.ReplaceAllString(desc, r.replace)
	}
	for _, r := range n.cleanup {
		desc = r.re.ReplaceAllString(desc, r.replace)
	}
	return strings.TrimSpace(desc)
}
