package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pokedex-cli/internal/domain"
)

type inMemorySource struct {
	mu         sync.Mutex
	names      []string
	types      map[string][]string
	listCalls  []domain.PageWindow
	listErr    error
	detailErrs map[string]error

	// When listGate is set, ListPokemon signals listStarted and then waits
	// for listGate to close or for its context to end.
	listGate    chan struct{}
	listStarted chan struct{}
}

func newInMemorySource(count int) *inMemorySource {
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		names = append(names, fmt.Sprintf("mon-%04d", i))
	}
	return &inMemorySource{names: names, types: map[string][]string{}, detailErrs: map[string]error{}}
}

func (s *inMemorySource) ListPokemon(ctx context.Context, window domain.PageWindow) ([]domain.ResourceRef, error) {
	s.mu.Lock()
	s.listCalls = append(s.listCalls, window)
	gate, started, listErr := s.listGate, s.listStarted, s.listErr
	s.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if listErr != nil {
		return nil, listErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	refs := []domain.ResourceRef{}
	for i := window.Offset; i < len(s.names) && i < window.Offset+window.Limit; i++ {
		refs = append(refs, domain.ResourceRef{Name: s.names[i]})
	}
	return refs, nil
}

func (s *inMemorySource) GetPokemon(_ context.Context, ref domain.ResourceRef) (domain.PokemonRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.detailErrs[ref.Name]; ok {
		return domain.PokemonRecord{}, err
	}
	for i, name := range s.names {
		if name == ref.Name {
			return domain.PokemonRecord{Summary: domain.PokemonSummary{ID: i + 1, Name: name, Types: s.types[name]}}, nil
		}
	}
	return domain.PokemonRecord{}, fmt.Errorf("%w: %s", domain.ErrNotFound, ref.Name)
}

func (s *inMemorySource) GetSpecies(context.Context, string) (domain.Species, error) {
	return domain.Species{}, fmt.Errorf("%w: no species in memory", domain.ErrNotFound)
}

func (s *inMemorySource) GetEvolutionChain(context.Context, string) (domain.ChainLink, error) {
	return domain.ChainLink{}, fmt.Errorf("%w: no chains in memory", domain.ErrNotFound)
}

func (s *inMemorySource) windows() []domain.PageWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PageWindow(nil), s.listCalls...)
}

func (s *inMemorySource) block() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listGate = make(chan struct{})
	s.listStarted = make(chan struct{}, 1)
}

func (s *inMemorySource) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.listGate)
	s.listGate = nil
	s.listStarted = nil
}

func summaryNames(list []domain.PokemonSummary) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}
