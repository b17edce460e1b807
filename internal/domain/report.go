package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DedupPass names one of the four ordered deduplication strategies.
type DedupPass string

const (
	PassExact        DedupPass = "exact"
	PassPaymentCycle DedupPass = "payment_cycle"
	PassTransferPair DedupPass = "transfer_pair"
	PassFuzzy        DedupPass = "fuzzy"
)

// UnmatchedPayment is a credit-card payment whose underlying charges could
// not be located within tolerance. The payment row is retained in the table.
type UnmatchedPayment struct {
	Amount      decimal.Decimal // payment magnitude (positive)
	Date        time.Time
	Description string
}

// DedupReport summarizes what the deduplicator removed and why.
type DedupReport struct {
	Removed           map[DedupPass]int
	ChargesCovered    int // individual charges matched to removed payments
	UnmatchedPayments []UnmatchedPayment
}

// NewDedupReport returns a report with every pass counter initialized, so
// callers can distinguish "pass ran, zero matches" from "pass skipped".
func NewDedupReport(passes ...DedupPass) *DedupReport {
	r := &DedupReport{Removed: make(map[DedupPass]int, len(passes))}
	for _, p := range passes {
		r.Removed[p] = 0
	}
	return r
}

// TotalRemoved is the number of rows removed across all passes.
func (r *DedupReport) TotalRemoved() int {
	total := 0
	for _, n := range r.Removed {
		total += n
	}
	return total
}

// TypeSummary counts the broad transaction types in the final table.
type TypeSummary struct {
	CreditCardPayments int
	Transfers          int
	Regular            int
}

// ReviewHint flags a row whose categorization likely needs a second look.
type ReviewHint struct {
	Index     int // position in the final table
	Suggested Category
	Reason    string
}

// Report is the structured outcome of one batch run.
type Report struct {
	RunID     string
	Documents []DocumentResult
	Dedup     *DedupReport
	Types     TypeSummary
	Hints     []ReviewHint
}
