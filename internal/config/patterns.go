package config

// Pattern tables shared by the locator, categorizer, and deduplicator. All
// entries are regular expressions compiled by their consumers; consumers add
// case-insensitivity themselves. Order matters everywhere a list is tried
// first-match-wins.

// DatePatterns are the date dialects tried per statement line, most specific
// use first. The capture group is the date text handed to the date parser.
var DatePatterns = []string{
	`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`,         // MM/DD/YY or MM/DD/YYYY
	`\b(\d{1,2}/\d{1,2})\b`,                 // MM/DD or M/D
	`\b([A-Za-z]{3,9}\s+\d{1,2},\s*\d{2,4})\b`, // January 15, 2024
	`\b([A-Za-z]{3}\s+\d{1,2})\b`,           // Jan 15
}

// AmountPatterns are the amount dialects tried per line: currency-prefixed
// decimal, parenthesized (negative), minus-prefixed.
var AmountPatterns = []string{
	`(?:^|\s)(\$?\-?\d{1,3}(?:,\d{3})*\.\d{2})(?:\s|$)`,   // $1,234.56
	`(?:^|\s)(\(\$?\d{1,3}(?:,\d{3})*\.\d{2}\))(?:\s|$)`,  // ($1,234.56)
	`(?:^|\s)(\-\$?\d{1,3}(?:,\d{3})*\.\d{2})(?:\s|$)`,    // -$1,234.56
}

// PeriodPatterns locate a statement's "start through end" date range in the
// full document text. Each has exactly two capture groups.
var PeriodPatterns = []string{
	`([A-Za-z]+\s+\d{1,2},?\s+\d{4})\s*(?:through|to|-)\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`,
	`(\d{1,2}/\d{1,2}/\d{2,4})\s*(?:through|to|-)\s*(\d{1,2}/\d{1,2}/\d{2,4})`,
	`Statement Period:?\s*(\d{1,2}/\d{1,2}/\d{2,4})\s*(?:through|to|-)\s*(\d{1,2}/\d{1,2}/\d{2,4})`,
	`([A-Za-z]+\s+\d{1,2})\s*(?:through|to|-)\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`,
}

// BoilerplateMarkers skip statement chrome before pattern matching. A line
// containing any of these (case-insensitive) is never a transaction.
var BoilerplateMarkers = []string{
	"statement", "account", "balance", "customer service", "page", "continued",
}

// IncomePatterns match descriptions of incoming money; only consulted for
// positive amounts.
var IncomePatterns = []string{
	`\b(deposit|payroll|salary|refund|reversal|return|credit|direct\s+deposit|dividend|interest\s+earned|payment\s+received|reimbursement)\b`,
}

// TransferKeywordPatterns match money movement between the user's own
// accounts, either sign.
var TransferKeywordPatterns = []string{
	`\b(transfer|zelle|venmo|cash\s+app|paypal\s+transfer|wire\s+transfer|p2p|person\s+to\s+person)\b`,
}

// CCPaymentKeywordPatterns match aggregate credit-card payment descriptions;
// the categorizer only consults them for negative amounts.
var CCPaymentKeywordPatterns = []string{
	`\b(payment\s+thank\s+you|online\s+payment|autopay|automatic\s+payment|credit\s+card\s+payment|cc\s+payment|electronic\s+payment)\b`,
}

// FeePatterns match bank fee descriptions.
var FeePatterns = []string{
	`\b(fee|charge|overdraft|maintenance|service\s+charge|wire\s+fee|atm\s+fee|late\s+fee)\b`,
}

// DedupCCPaymentPatterns is the wider payment-detection list the
// deduplicator uses to find payment rows and to exclude other payments from
// charge candidates. Includes issuer-specific phrasings.
var DedupCCPaymentPatterns = []string{
	`payment\s+thank\s+you`,
	`online\s+payment`,
	`autopay`,
	`credit\s+card\s+payment`,
	`cc\s+payment`,
	`automatic\s+payment`,
	`electronic\s+payment`,
	`chase\s+credit\s+crd`,
	`discover\s+payment`,
	`capital\s+one\s+payment`,
	`citi\s+payment`,
	`amex\s+payment`,
	`american\s+express\s+payment`,
}

// DedupTransferPatterns is the deduplicator's transfer-detection list.
var DedupTransferPatterns = []string{
	`transfer\s+to`,
	`transfer\s+from`,
	`internal\s+transfer`,
	`account\s+transfer`,
	`online\s+transfer`,
	`zelle`,
	`venmo`,
	`cash\s+app`,
	`paypal\s+transfer`,
}

// MerchantRewrite rewrites a matched merchant pattern to a canonical name
// during description normalization.
type MerchantRewrite struct {
	Pattern string
	Replace string
}

// MerchantRewrites standardize noisy processor-decorated merchant strings
// before any matching takes place.
var MerchantRewrites = []MerchantRewrite{
	{`AMAZON\.COM\*\w+`, "Amazon"},
	{`AMZN\s+MKTP`, "Amazon"},
	{`WAL-MART.*`, "Walmart"},
	{`TARGET\s+\d+`, "Target"},
	{`STARBUCKS.*`, "Starbucks"},
	{`MCDONALD'S.*`, "McDonald's"},
	{`TST\*\s*(.+)`, "$1"}, // strip Toast prefix
	{`SQ\*\s*(.+)`, "$1"},  // strip Square prefix
}

// CleanupRewrites strip card-network boilerplate, store numbers, and stray
// digit runs from descriptions after merchant rewriting.
var CleanupRewrites = []MerchantRewrite{
	{`^(DEBIT\s+CARD|CREDIT\s+CARD|ONLINE|WEB)\s+`, ""},
	{`\s+(PAYMENT|PURCHASE|TRANSACTION)$`, ""},
	{`#\d+`, ""},
	{`\d{3,4}\s*$`, ""},
	{`^\d{2,4}\s+`, ""},
}
