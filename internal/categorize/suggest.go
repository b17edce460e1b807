package categorize

import (
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"

	"github.com/abtonmoy/vault-finance/internal/domain"
)

// Suggester proposes categories learned from confirmed rows. It backs the
// review workflow only: the deterministic rule pipeline never consults it,
// so learning cannot change what Categorize returns.
type Suggester struct {
	mu         sync.Mutex
	classifier *bayesian.Classifier
	normalizer *Normalizer
	trained    int
}

// NewSuggester creates an untrained Suggester over the closed category set.
func NewSuggester() *Suggester {
	classes := make([]bayesian.Class, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		classes = append(classes, bayesian.Class(c))
	}
	return &Suggester{
		classifier: bayesian.NewClassifier(classes...),
		normalizer: NewNormalizer(),
	}
}

// Learn records one confirmed (description, category) pair. Invalid
// categories and empty descriptions are ignored.
func (s *Suggester) Learn(description string, category domain.Category) {
	if !category.Valid() {
		return
	}
	tokens := s.tokenize(description)
	if len(tokens) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.classifier.Learn(tokens, bayesian.Class(category))
	s.trained++
}

// Suggest returns the most likely category for description, or false when
// the Suggester has no training data or the description carries no tokens.
func (s *Suggester) Suggest(description string) (domain.Category, bool) {
	tokens := s.tokenize(description)
	if len(tokens) == 0 {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trained == 0 {
		return "", false
	}

	_, best, _ := s.classifier.LogScores(tokens)
	return domain.Categories[best], true
}

// Trained reports how many confirmed pairs have been learned.
func (s *Suggester) Trained() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trained
}

func (s *Suggester) tokenize(description string) []string {
	normalized := strings.ToLower(s.normalizer.Normalize(description))
	return strings.Fields(normalized)
}
