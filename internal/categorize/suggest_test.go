package categorize

import (
	"testing"

	"github.com/abtonmoy/vault-finance/internal/domain"
)

func TestSuggesterUntrained(t *testing.T) {
	s := NewSuggester()

	if _, ok := s.Suggest("STARBUCKS STORE"); ok {
		t.Error("untrained Suggester should not suggest anything")
	}
	if s.Trained() != 0 {
		t.Errorf("Trained() = %d, want 0", s.Trained())
	}
}

func TestSuggesterLearnsConfirmedRows(t *testing.T) {
	s := NewSuggester()

	s.Learn("STARBUCKS COFFEE", domain.CategoryFoodDining)
	s.Learn("CORNER COFFEE HOUSE", domain.CategoryFoodDining)
	s.Learn("SHELL GAS STATION", domain.CategoryTransportation)
	s.Learn("", domain.CategoryOther)              // ignored: no tokens
	s.Learn("SOMETHING", domain.Category("Bogus")) // ignored: not in the closed set

	if s.Trained() != 3 {
		t.Fatalf("Trained() = %d, want 3", s.Trained())
	}

	got, ok := s.Suggest("DOWNTOWN COFFEE")
	if !ok {
		t.Fatal("trained Suggester should return a suggestion")
	}
	if got != domain.CategoryFoodDining {
		t.Errorf("Suggest = %q, want %q", got, domain.CategoryFoodDining)
	}

	got, ok = s.Suggest("HIGHWAY GAS STOP")
	if !ok || got != domain.CategoryTransportation {
		t.Errorf("Suggest = %q (ok=%v), want %q", got, ok, domain.CategoryTransportation)
	}
}
