package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
	"github.com/abtonmoy/vault-finance/internal/logger"
	"github.com/abtonmoy/vault-finance/internal/pipeline"
	"github.com/abtonmoy/vault-finance/internal/statement"
)

func main() {
	// Optional .env for LOG_LEVEL and friends; absence is fine.
	_ = godotenv.Load()
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		runParse(log)
	case "inspect":
		runInspect(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Vault Finance CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options] <files...>")
	fmt.Println("\nCommands:")
	fmt.Println("  parse     Parse statements into a categorized, deduplicated table")
	fmt.Println("  inspect   Show per-document extraction results without deduplication")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runParse(log zerolog.Logger) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML options file")
	csvPath := fs.String("csv", "", "Write the final table to this CSV file")
	aggressive := fs.Bool("aggressive", false, "Enable the fuzzy near-duplicate pass")
	keepCC := fs.Bool("keep-cc-payments", false, "Disable the credit-card payment-cycle pass")
	keepTransfers := fs.Bool("keep-transfers", false, "Disable the transfer-pair pass")
	fs.Parse(os.Args[2:])

	if fs.NArg() == 0 {
		log.Fatal().Msg("parse: at least one statement file is required")
	}

	opts := config.DefaultOptions()
	if *configPath != "" {
		var err error
		opts, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading options")
		}
	}
	if *aggressive {
		opts.AggressiveDeduplication = true
	}
	if *keepCC {
		opts.RemoveCreditCardDuplicates = false
	}
	if *keepTransfers {
		opts.RemoveTransferDuplicates = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	orch := pipeline.NewOrchestrator(pipeline.Settings{Options: opts, Logger: log})
	result, err := orch.Process(ctx, fileDocuments(fs.Args()))
	if err != nil {
		log.Fatal().Err(err).Msg("batch run failed")
	}

	printTable(result.Transactions)
	printReport(result.Report)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, result.Transactions); err != nil {
			log.Fatal().Err(err).Msg("writing CSV")
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(result.Transactions), *csvPath)
	}
}

func runInspect(log zerolog.Logger) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Parse(os.Args[2:])

	if fs.NArg() == 0 {
		log.Fatal().Msg("inspect: at least one statement file is required")
	}

	ctx := logger.WithContext(context.Background(), log)
	orch := pipeline.NewOrchestrator(pipeline.Settings{
		Options: config.DefaultOptions(),
		Logger:  log,
	})
	result, err := orch.Process(ctx, fileDocuments(fs.Args()))
	if err != nil {
		log.Fatal().Err(err).Msg("batch run failed")
	}

	for _, doc := range result.Report.Documents {
		header := color.New(color.Bold)
		header.Printf("\n%s — %s\n", doc.SourceID, doc.Status)
		if !doc.Period.Start.IsZero() {
			fmt.Printf("  period: %s to %s (year %d)\n",
				doc.Period.Start.Format("2006-01-02"), doc.Period.End.Format("2006-01-02"), doc.Period.Year)
		}
		for _, t := range doc.Transactions {
			fmt.Printf("  %s  %10s  %s\n", t.Date.Format("2006-01-02"), t.Amount.StringFixed(2), t.Description)
		}
	}
}

func fileDocuments(paths []string) []statement.Document {
	docs := make([]statement.Document, 0, len(paths))
	for _, p := range paths {
		docs = append(docs, statement.FileDocument{Path: p})
	}
	return docs
}

func printTable(rows []domain.Transaction) {
	bold := color.New(color.Bold)
	bold.Printf("%-12s %-12s %-20s %-10s %s\n", "DATE", "AMOUNT", "CATEGORY", "CONFIDENCE", "DESCRIPTION")

	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	for _, t := range rows {
		amount := t.Amount.StringFixed(2)
		if t.Amount.IsNegative() {
			amount = red.Sprint(amount)
		} else {
			amount = green.Sprint(amount)
		}
		fmt.Printf("%-12s %-12s %-20s %-10s %s\n",
			t.Date.Format("2006-01-02"), amount, t.Category, t.Confidence, t.Description)
	}
}

func printReport(report *domain.Report) {
	bold := color.New(color.Bold)
	bold.Println("\nDeduplication")
	passes := []domain.DedupPass{domain.PassExact, domain.PassPaymentCycle, domain.PassTransferPair, domain.PassFuzzy}
	for _, pass := range passes {
		if n, ran := report.Dedup.Removed[pass]; ran {
			fmt.Printf("  %-15s removed %d\n", pass, n)
		}
	}
	if report.Dedup.ChargesCovered > 0 {
		fmt.Printf("  %d charges covered by removed payments\n", report.Dedup.ChargesCovered)
	}
	for _, p := range report.Dedup.UnmatchedPayments {
		color.Yellow("  unmatched payment: %s on %s (%s)",
			p.Amount.StringFixed(2), p.Date.Format("2006-01-02"), p.Description)
	}

	bold.Println("\nTransaction types")
	fmt.Printf("  payments %d, transfers %d, regular %d\n",
		report.Types.CreditCardPayments, report.Types.Transfers, report.Types.Regular)

	if len(report.Hints) > 0 {
		bold.Println("\nReview hints")
		for _, h := range report.Hints {
			fmt.Printf("  row %d: %s (suggest %s)\n", h.Index, h.Reason, h.Suggested)
		}
	}
}

func writeCSV(path string, rows []domain.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "description", "amount", "category", "confidence", "source"}); err != nil {
		return err
	}
	for _, t := range rows {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.Amount.StringFixed(2),
			string(t.Category),
			string(t.Confidence),
			t.SourceID,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}
