package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/bnema/pokedex-cli/internal/ports"
	"go.uber.org/zap"
)

type EvolutionResolver struct {
	source ports.PokemonSource
	logger *zap.Logger
}

func NewEvolutionResolver(source ports.PokemonSource, logger *zap.Logger) *EvolutionResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvolutionResolver{source: source, logger: logger}
}

// Resolve follows pokemon -> species -> evolution chain and returns the
// chain's first-branch path from base form to final form. Alternate branches
// are dropped. Any failing step yields no chain at all.
func (r *EvolutionResolver) Resolve(ctx context.Context, name string) ([]domain.EvolutionNode, error) {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return nil, ErrEmptyQuery
	}

	record, err := r.source.GetPokemon(ctx, domain.ResourceRef{Name: normalized})
	if err != nil {
		return nil, fmt.Errorf("resolve %s: load pokemon: %w", normalized, err)
	}

	species, err := r.source.GetSpecies(ctx, record.Species.URL)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: load species: %w", normalized, err)
	}

	root, err := r.source.GetEvolutionChain(ctx, species.EvolutionChainURL)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: load evolution chain: %w", normalized, err)
	}

	chain := domain.LinearizeFirstBranch(root)
	r.logger.Debug("evolution chain resolved", zap.String("name", normalized), zap.Int("stages", len(chain)))
	return chain, nil
}

type EvolutionState struct {
	Name    string
	Chain   []domain.EvolutionNode
	Loading bool
	Err     error
}

// EvolutionLookup keeps the result of the latest Resolve call. A resolution
// that finishes after a newer one started is discarded.
type EvolutionLookup struct {
	resolver *EvolutionResolver

	mu    sync.Mutex
	gate  requestGate
	state EvolutionState
}

func NewEvolutionLookup(resolver *EvolutionResolver) *EvolutionLookup {
	return &EvolutionLookup{resolver: resolver}
}

func (l *EvolutionLookup) Lookup(ctx context.Context, name string) (EvolutionState, error) {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return l.State(), ErrEmptyQuery
	}

	l.mu.Lock()
	opCtx, token := l.gate.begin(ctx)
	l.state = EvolutionState{Name: normalized, Loading: true}
	l.mu.Unlock()

	chain, err := l.resolver.Resolve(opCtx, normalized)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.gate.finish(token) {
		return l.state, ErrSuperseded
	}
	l.state = EvolutionState{Name: normalized, Chain: chain, Err: err}
	return l.state, err
}

func (l *EvolutionLookup) State() EvolutionState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
