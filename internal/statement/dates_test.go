package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		raw           string
		statementYear int
		want          time.Time
		wantOK        bool
	}{
		{
			name:   "slash with four digit year",
			raw:    "01/15/2024",
			want:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "iso style",
			raw:    "2024-01-15",
			want:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "month name with comma",
			raw:    "January 15, 2024",
			want:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "two digit year resolves to 2000s",
			raw:    "01/15/24",
			want:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "two digit year resolves to 1900s",
			raw:    "01/15/99",
			want:   time.Date(1999, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:          "yearless takes statement year",
			raw:           "01/15",
			statementYear: 2023,
			want:          time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK:        true,
		},
		{
			name:          "yearless far future rolls back a year",
			raw:           "12/20",
			statementYear: 2024,
			want:          time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC),
			wantOK:        true,
		},
		{
			name:          "yearless within slack keeps statement year",
			raw:           "03/25",
			statementYear: 2024,
			want:          time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
			wantOK:        true,
		},
		{
			name:   "label prefix stripped",
			raw:    "Date: 01/15/2024",
			want:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "garbage",
			raw:    "not a date",
			wantOK: false,
		},
		{
			name:   "empty",
			raw:    "  ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.raw, tt.statementYear, now)
			if ok != tt.wantOK {
				t.Fatalf("parseDate(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain", raw: "45.67", want: "45.67", wantOK: true},
		{name: "dollar sign", raw: "$1,234.56", want: "1234.56", wantOK: true},
		{name: "minus prefix", raw: "-$89.99", want: "-89.99", wantOK: true},
		{name: "parenthesized is negative", raw: "($500.00)", want: "-500", wantOK: true},
		{name: "garbage", raw: "n/a", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAmount(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("parseAmount(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("parseAmount(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}
