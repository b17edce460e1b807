// Package pipeline wires the statement, categorize, and dedupe stages into
// one batch run: documents in, a date-sorted transaction table plus a
// structured report out.
package pipeline

import (
	"time"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
	"github.com/abtonmoy/vault-finance/internal/statement"
)

// State is the shared state threaded through all pipeline steps.
type State struct {
	RunID     string
	Documents []statement.Document
	Options   config.Options
	Now       time.Time

	// Results holds one entry per input document, in input order.
	Results []domain.DocumentResult
	// Combined is the categorized cross-document union, concatenation order.
	Combined []domain.Transaction
	// Final is the deduplicated, date-sorted table.
	Final []domain.Transaction
	// Report accumulates the structured outcome.
	Report *domain.Report
}

// Result is what a batch run hands back to the caller.
type Result struct {
	Transactions []domain.Transaction
	Report       *domain.Report
}
