package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abtonmoy/vault-finance/internal/categorize"
	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/dedupe"
	"github.com/abtonmoy/vault-finance/internal/domain"
	"github.com/abtonmoy/vault-finance/internal/logger"
	"github.com/abtonmoy/vault-finance/internal/statement"
)

// Pipeline executes a sequence of steps in order over shared state.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline with the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially. Only batch-fatal conditions (context
// cancellation) surface as errors; per-document failures are recorded on
// the report and never stop the run.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for _, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %s failed: %w", step.Name(), err)
		}
	}
	return nil
}

// Orchestrator builds the standard batch pipeline once and runs it per
// batch. Construction compiles every pattern table; runs share nothing but
// the immutable components, so concurrent Process calls are safe.
type Orchestrator struct {
	opts        config.Options
	categorizer *categorize.Categorizer
	dedup       *dedupe.Deduplicator
	pipeline    *Pipeline
	log         zerolog.Logger
}

// Settings bundles the orchestrator's construction inputs. The zero value
// uses defaults for everything.
type Settings struct {
	Options config.Options
	// Keywords, Merchants, and CustomRules override the categorizer tables.
	Keywords    []config.CategoryKeywords
	Merchants   []config.Merchant
	CustomRules map[string]domain.Category
	Logger      zerolog.Logger
}

// NewOrchestrator wires the standard five-step pipeline.
func NewOrchestrator(s Settings) *Orchestrator {
	opts := s.Options.Clamped()
	log := s.Logger

	categorizer := categorize.New(categorize.Config{
		Keywords:            s.Keywords,
		Merchants:           s.Merchants,
		CustomRules:         s.CustomRules,
		SimilarityThreshold: opts.DescriptionSimilarityThreshold,
		Logger:              log,
	})
	dedup := dedupe.New(opts, log)

	return &Orchestrator{
		opts:        opts,
		categorizer: categorizer,
		dedup:       dedup,
		pipeline: NewPipeline(
			&ExtractStep{
				extractor: statement.NewExtractor(log),
				resolver:  statement.NewPeriodResolver(),
				locator:   statement.NewLocator(log),
				log:       log,
			},
			&CategorizeStep{categorizer: categorizer},
			MergeStep{},
			&DedupStep{dedup: dedup},
			&FinalizeStep{dedup: dedup},
		),
		log: log,
	}
}

// Process runs one batch. The output is deterministic for a given document
// set and options: per-document work is keyed by input position and the
// final sort is stable on (date, insertion order).
func (o *Orchestrator) Process(ctx context.Context, docs []statement.Document) (*Result, error) {
	now := o.opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	state := &State{
		RunID:     uuid.NewString(),
		Documents: docs,
		Options:   o.opts,
		Now:       now,
		Report:    &domain.Report{},
	}
	state.Report.RunID = state.RunID

	log := logger.WithFields(o.log, map[string]interface{}{
		"run_id":    state.RunID,
		"documents": len(docs),
	})
	log.Info().Msg("starting batch run")

	if err := o.pipeline.Execute(ctx, state); err != nil {
		return nil, err
	}

	log.Info().
		Int("transactions", len(state.Final)).
		Int("removed", state.Report.Dedup.TotalRemoved()).
		Msg("batch run complete")

	return &Result{Transactions: state.Final, Report: state.Report}, nil
}

// Categorizer exposes the orchestrator's categorizer for review tooling
// (confidence re-checks, suggestion training).
func (o *Orchestrator) Categorizer() *categorize.Categorizer {
	return o.categorizer
}
