package application

import (
	"sync"

	"github.com/bnema/pokedex-cli/internal/domain"
)

// ComparisonStore is the shared comparison selection of one viewer. Hand the
// same instance to every component that reads or edits the selection.
type ComparisonStore struct {
	mu        sync.RWMutex
	selection domain.ComparisonSelection
}

func NewComparisonStore() *ComparisonStore {
	return &ComparisonStore{}
}

// Toggle removes p if it is selected, otherwise appends it and evicts the
// oldest entry beyond two. It returns the resulting selection.
func (s *ComparisonStore) Toggle(p domain.PokemonSummary) []domain.PokemonSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = s.selection.Toggle(p)
	return s.selection.Entries()
}

func (s *ComparisonStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = domain.ComparisonSelection{}
}

func (s *ComparisonStore) Selected() []domain.PokemonSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selection.Entries()
}

func (s *ComparisonStore) IsSelected(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selection.Contains(name)
}

// Ready reports whether a full pair is selected.
func (s *ComparisonStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selection.Len() == domain.MaxComparison
}
