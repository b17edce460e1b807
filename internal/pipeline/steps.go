package pipeline

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/abtonmoy/vault-finance/internal/categorize"
	"github.com/abtonmoy/vault-finance/internal/dedupe"
	"github.com/abtonmoy/vault-finance/internal/domain"
	"github.com/abtonmoy/vault-finance/internal/statement"
)

// Step represents a single step in the batch pipeline.
type Step interface {
	Name() string
	Execute(ctx context.Context, state *State) error
}

// ExtractStep runs extraction, period resolution, and transaction locating
// for every document. Documents are independent at this stage, so they run
// concurrently; results land in an index-addressed slice so input order —
// not completion order — decides everything downstream.
type ExtractStep struct {
	extractor *statement.Extractor
	resolver  *statement.PeriodResolver
	locator   *statement.Locator
	log       zerolog.Logger
}

func (s *ExtractStep) Name() string { return "extract" }

func (s *ExtractStep) Execute(ctx context.Context, state *State) error {
	state.Results = make([]domain.DocumentResult, len(state.Documents))

	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range state.Documents {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			state.Results[i] = s.processDocument(doc, state)
			return nil
		})
	}
	return g.Wait()
}

// processDocument never fails the batch: an unreadable or empty document is
// recorded on its result and skipped.
func (s *ExtractStep) processDocument(doc statement.Document, state *State) domain.DocumentResult {
	result := domain.DocumentResult{SourceID: doc.Name()}

	text, lines, err := s.extractor.Extract(doc)
	if err != nil {
		s.log.Warn().Str("source", doc.Name()).Err(err).Msg("document unreadable, skipping")
		result.Status = domain.DocumentUnreadable
		return result
	}

	result.Period = s.resolver.Resolve(text, state.Now)
	result.Transactions = s.locator.Locate(lines, result.Period, state.Now, doc.Name())
	if len(result.Transactions) == 0 {
		s.log.Warn().Str("source", doc.Name()).Msg("no transactions found")
		result.Status = domain.DocumentEmpty
		return result
	}

	result.Status = domain.DocumentParsed
	s.log.Info().
		Str("source", doc.Name()).
		Int("transactions", len(result.Transactions)).
		Int("statement_year", result.Period.Year).
		Msg("document parsed")
	return result
}

// CategorizeStep assigns a category and confidence to every located row.
type CategorizeStep struct {
	categorizer *categorize.Categorizer
}

func (s *CategorizeStep) Name() string { return "categorize" }

func (s *CategorizeStep) Execute(ctx context.Context, state *State) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := range state.Results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			txns := state.Results[i].Transactions
			for j := range txns {
				txns[j].Category = s.categorizer.Categorize(txns[j].Description, txns[j].Amount, txns[j].Date)
				txns[j].Confidence = s.categorizer.Confidence(txns[j].Description, txns[j].Category)
			}
			return nil
		})
	}
	return g.Wait()
}

// MergeStep concatenates per-document rows in document order. That order is
// the insertion order every dedup tie-break keys on.
type MergeStep struct{}

func (MergeStep) Name() string { return "merge" }

func (MergeStep) Execute(_ context.Context, state *State) error {
	total := 0
	for _, r := range state.Results {
		total += len(r.Transactions)
	}
	state.Combined = make([]domain.Transaction, 0, total)
	for _, r := range state.Results {
		state.Combined = append(state.Combined, r.Transactions...)
	}
	return nil
}

// DedupStep runs the full pass sequence when more than one document is
// present or aggressive mode is on; a single document only needs the
// exact-duplicate pass.
type DedupStep struct {
	dedup *dedupe.Deduplicator
}

func (s *DedupStep) Name() string { return "dedup" }

func (s *DedupStep) Execute(_ context.Context, state *State) error {
	var report *domain.DedupReport
	if len(state.Documents) > 1 || state.Options.AggressiveDeduplication {
		state.Final, report = s.dedup.Deduplicate(state.Combined)
	} else {
		state.Final, report = s.dedup.ExactOnly(state.Combined)
	}
	state.Report.Dedup = report
	return nil
}

// FinalizeStep stable-sorts the table by date (ties keep insertion order)
// and fills in the report's summary sections.
type FinalizeStep struct {
	dedup *dedupe.Deduplicator
}

func (s *FinalizeStep) Name() string { return "finalize" }

func (s *FinalizeStep) Execute(_ context.Context, state *State) error {
	sort.SliceStable(state.Final, func(i, j int) bool {
		return state.Final[i].Date.Before(state.Final[j].Date)
	})

	state.Report.Documents = state.Results
	state.Report.Types = s.dedup.Summarize(state.Final)
	state.Report.Hints = categorize.Hints(state.Final)
	return nil
}
