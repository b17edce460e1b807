package dedupe

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/abtonmoy/vault-finance/internal/config"
	"github.com/abtonmoy/vault-finance/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func row(t *testing.T, date, desc, amount, source string) domain.Transaction {
	t.Helper()
	return domain.Transaction{
		Date:        day(t, date),
		Description: desc,
		Amount:      amt(t, amount),
		SourceID:    source,
	}
}

func TestExactPassIgnoresFormattingNoise(t *testing.T) {
	d := New(config.DefaultOptions(), zerolog.Nop())

	rows := []domain.Transaction{
		row(t, "2024-01-15", "WALMART STORE 4521", "-45.67", "jan.pdf"),
		row(t, "2024-01-15", "PURCHASE WALMART STORE #4521", "-45.67", "combined.pdf"),
		row(t, "2024-01-16", "WALMART STORE 4521", "-45.67", "jan.pdf"), // different date, kept
	}

	kept, report := d.Deduplicate(rows)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2: %+v", len(kept), kept)
	}
	if report.Removed[domain.PassExact] != 1 {
		t.Errorf("exact pass removed %d, want 1", report.Removed[domain.PassExact])
	}
	// First occurrence by insertion order survives.
	if kept[0].SourceID != "jan.pdf" {
		t.Errorf("kept the wrong occurrence: %+v", kept[0])
	}
}

func TestPaymentCycleRemovesAggregatePayment(t *testing.T) {
	d := New(config.DefaultOptions(), zerolog.Nop())

	rows := []domain.Transaction{
		// Credit-card statement: the itemized charges.
		row(t, "2024-01-05", "AMAZON MARKETPLACE", "-200.00", "cc.pdf"),
		row(t, "2024-01-12", "GROCERY MART", "-150.00", "cc.pdf"),
		row(t, "2024-01-20", "SHELL OIL", "-120.00", "cc.pdf"),
		// Bank statement: the aggregate payment settling them.
		row(t, "2024-02-01", "CHASE CREDIT CRD AUTOPAY", "-485.00", "bank.pdf"),
	}

	kept, report := d.Deduplicate(rows)
	if len(kept) != 3 {
		t.Fatalf("kept %d rows, want 3: %+v", len(kept), kept)
	}
	for _, r := range kept {
		if r.SourceID != "cc.pdf" {
			t.Errorf("itemized charges should survive, payment should not: %+v", r)
		}
	}
	if report.Removed[domain.PassPaymentCycle] != 1 {
		t.Errorf("payment cycle removed %d, want 1", report.Removed[domain.PassPaymentCycle])
	}
	if report.ChargesCovered != 3 {
		t.Errorf("ChargesCovered = %d, want 3", report.ChargesCovered)
	}
	if len(report.UnmatchedPayments) != 0 {
		t.Errorf("unexpected unmatched payments: %+v", report.UnmatchedPayments)
	}
}

func TestPaymentCycleKeepsUnmatchedPayment(t *testing.T) {
	d := New(config.DefaultOptions(), zerolog.Nop())

	rows := []domain.Transaction{
		// Charges sum to 100, far outside 15% of the 485 payment.
		row(t, "2024-01-12", "GROCERY MART", "-100.00", "cc.pdf"),
		row(t, "2024-02-01", "DISCOVER PAYMENT", "-485.00", "bank.pdf"),
	}

	kept, report := d.Deduplicate(rows)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2", len(kept))
	}
	if got := len(report.UnmatchedPayments); got != 1 {
		t.Fatalf("got %d unmatched payments, want 1", got)
	}
	up := report.UnmatchedPayments[0]
	if !up.Amount.Equal(amt(t, "485.00")) || !up.Date.Equal(day(t, "2024-02-01")) {
		t.Errorf("unexpected unmatched payment: %+v", up)
	}
}

func TestPaymentCycleIgnoresChargesOutsideWindow(t *testing.T) {
	d := New(config.DefaultOptions(), zerolog.Nop())

	rows := []domain.Transaction{
		// 60 days before the payment, outside the 45-day window.
		row(t, "2023-12-03", "GROCERY MART", "-485.00", "cc.pdf"),
		row(t, "2024-02-01", "DISCOVER PAYMENT", "-485.00", "bank.pdf"),
	}

	kept, report := d.Deduplicate(rows)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2", len(kept))
	}
	if report.Removed[domain.PassPaymentCycle] != 0 {
		t.Errorf("payment cycle removed %d, want 0", report.Removed[domain.PassPaymentCycle])
	}
}

func TestTransferPairKeepsFirstOccurrence(t *testing.T) {
	d := New(config.DefaultOptions(), zerolog.Nop())

	rows := []domain.Transaction{
		row(t, "2024-01-10", "TRANSFER TO SAVINGS", "-500.00", "checking.pdf"),
		row(t, "2024-01-10", "ONLINE TRANSFER FROM CHECKING", "500.00", "savings.pdf"),
		row(t, "2024-01-10", "GROCERY MART", "-500.00", "checking.pdf"), // not a transfer, untouched
	}

	kept, report := d.Deduplicate(rows)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2: %+v", len(kept), kept)
	}
	if kept[0].SourceID != "checking.pdf" || kept[0].Description != "TRANSFER TO SAVINGS" {
		t.Errorf("first occurrence should survive: %+v", kept[0])
	}
	if report.Removed[domain.PassTransferPair] != 1 {
		t.Errorf("transfer pair removed %d, want 1", report.Removed[domain.PassTransferPair])
	}
}

func TestFuzzyPassNeedsAggressiveOption(t *testing.T) {
	rows := []domain.Transaction{
		row(t, "2024-01-15", "STARBUCKS STORE 123", "-6.50", "jan.pdf"),
		row(t, "2024-01-16", "STARBUCKS STORE 456", "-6.50", "feb.pdf"),
	}

	conservative := New(config.DefaultOptions(), zerolog.Nop())
	kept, report := conservative.Deduplicate(rows)
	if len(kept) != 2 {
		t.Fatalf("conservative run kept %d rows, want 2", len(kept))
	}
	if _, ran := report.Removed[domain.PassFuzzy]; ran {
		t.Error("fuzzy pass should not run without the aggressive option")
	}

	opts := config.DefaultOptions()
	opts.AggressiveDeduplication = true
	aggressive := New(opts, zerolog.Nop())
	kept, report = aggressive.Deduplicate(rows)
	if len(kept) != 1 {
		t.Fatalf("aggressive run kept %d rows, want 1: %+v", len(kept), kept)
	}
	if report.Removed[domain.PassFuzzy] != 1 {
		t.Errorf("fuzzy pass removed %d, want 1", report.Removed[domain.PassFuzzy])
	}
	// The earlier row survives.
	if kept[0].Date.After(day(t, "2024-01-15")) {
		t.Errorf("earlier row should survive: %+v", kept[0])
	}
}

func TestFuzzyPassRespectsDateWindow(t *testing.T) {
	opts := config.DefaultOptions()
	opts.AggressiveDeduplication = true
	d := New(opts, zerolog.Nop())

	rows := []domain.Transaction{
		row(t, "2024-01-15", "STARBUCKS STORE 123", "-6.50", "jan.pdf"),
		row(t, "2024-01-20", "STARBUCKS STORE 456", "-6.50", "jan.pdf"), // 5 days out
	}

	if kept, _ := d.Deduplicate(rows); len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2: rows outside the window are distinct", len(kept))
	}
}

func TestFuzzyPassRespectsAmountTolerance(t *testing.T) {
	opts := config.DefaultOptions()
	opts.AggressiveDeduplication = true
	d := New(opts, zerolog.Nop())

	rows := []domain.Transaction{
		row(t, "2024-01-15", "STARBUCKS STORE 123", "-6.50", "jan.pdf"),
		row(t, "2024-01-15", "STARBUCKS STORE 456", "-9.75", "jan.pdf"), // $3.25 apart
	}

	if kept, _ := d.Deduplicate(rows); len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2: amounts beyond max(1%%, $1) are distinct", len(kept))
	}
}

func TestTogglesDisablePasses(t *testing.T) {
	opts := config.DefaultOptions()
	opts.RemoveCreditCardDuplicates = false
	opts.RemoveTransferDuplicates = false
	d := New(opts, zerolog.Nop())

	rows := []domain.Transaction{
		row(t, "2024-01-10", "TRANSFER TO SAVINGS", "-500.00", "checking.pdf"),
		row(t, "2024-01-10", "ONLINE TRANSFER FROM CHECKING", "500.00", "savings.pdf"),
	}

	kept, report := d.Deduplicate(rows)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2 with passes disabled", len(kept))
	}
	if _, ran := report.Removed[domain.PassTransferPair]; ran {
		t.Error("transfer pass should not run when disabled")
	}
	if _, ran := report.Removed[domain.PassPaymentCycle]; ran {
		t.Error("payment cycle pass should not run when disabled")
	}
}

func TestSummarize(t *testing.T) {
	d := New(config.DefaultOptions(), zerolog.Nop())

	rows := []domain.Transaction{
		row(t, "2024-02-01", "CHASE CREDIT CRD AUTOPAY", "-485.00", "bank.pdf"),
		row(t, "2024-01-10", "TRANSFER TO SAVINGS", "-500.00", "checking.pdf"),
		row(t, "2024-01-15", "GROCERY MART", "-45.67", "checking.pdf"),
		row(t, "2024-01-31", "ACME PAYROLL", "2500.00", "checking.pdf"),
	}

	got := d.Summarize(rows)
	want := domain.TypeSummary{CreditCardPayments: 1, Transfers: 1, Regular: 2}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}
