package statement

import (
	"testing"
	"time"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	r := NewPeriodResolver()

	tests := []struct {
		name      string
		text      string
		wantYear  int
		wantStart string // "2006-01-02", empty means zero
		wantEnd   string
	}{
		{
			name:      "month name range",
			text:      "Statement Period: January 1, 2024 through January 31, 2024",
			wantYear:  2024,
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
		{
			name:      "slash range",
			text:      "01/01/2024 to 01/31/2024",
			wantYear:  2024,
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
		{
			name:     "year token only",
			text:     "Annual summary for 2023, no period line here",
			wantYear: 2023,
		},
		{
			name:     "nothing usable falls back to now",
			text:     "no dates at all",
			wantYear: 2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.text, now)
			if got.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", got.Year, tt.wantYear)
			}
			if tt.wantStart == "" {
				if !got.Start.IsZero() {
					t.Errorf("Start = %s, want zero", got.Start)
				}
				return
			}
			if got.Start.Format("2006-01-02") != tt.wantStart {
				t.Errorf("Start = %s, want %s", got.Start.Format("2006-01-02"), tt.wantStart)
			}
			if got.End.Format("2006-01-02") != tt.wantEnd {
				t.Errorf("End = %s, want %s", got.End.Format("2006-01-02"), tt.wantEnd)
			}
		})
	}
}
