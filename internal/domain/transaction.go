package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one dated, signed monetary movement located in a
// statement document. Amount is negative for money OUT and positive for
// money IN.
type Transaction struct {
	Date        time.Time       // transaction date, year resolved against the statement period
	Description string          // cleaned free-text description, max 100 chars
	Amount      decimal.Decimal // signed amount; never zero after locating
	SourceLine  string          // the raw statement line the transaction was parsed from
	SourceID    string          // display name of the originating document

	Category   Category   // populated by the categorizer; empty until then
	Confidence Confidence // secondary estimate for review tooling, never affects Category
}

// Confidence is a coarse estimate of how certain a categorization is.
// It is informational only and does not influence category assignment.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// StatementPeriod is the date range a statement covers plus the year used to
// disambiguate year-less transaction dates. Start and End may be zero when
// the period text could not be located; Year is always set.
type StatementPeriod struct {
	Start time.Time
	End   time.Time
	Year  int
}

// DocumentStatus records the outcome of processing one source document.
type DocumentStatus string

const (
	// DocumentParsed means transactions were extracted from the document.
	DocumentParsed DocumentStatus = "parsed"
	// DocumentUnreadable means both extraction strategies failed.
	DocumentUnreadable DocumentStatus = "extraction failed"
	// DocumentEmpty means text was extracted but no transaction lines matched.
	DocumentEmpty DocumentStatus = "no transactions found"
)

// DocumentResult is the per-document output of the extraction stage.
type DocumentResult struct {
	SourceID     string
	Status       DocumentStatus
	Period       StatementPeriod
	Transactions []Transaction
}
