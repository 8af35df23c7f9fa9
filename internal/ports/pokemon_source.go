package ports

import (
	"context"

	"github.com/bnema/pokedex-cli/internal/domain"
)

// PokemonSource is the read-only remote catalog. Lookups that the remote
// answers with 404 return an error wrapping domain.ErrNotFound.
type PokemonSource interface {
	ListPokemon(ctx context.Context, window domain.PageWindow) ([]domain.ResourceRef, error)
	// GetPokemon fetches by ref.URL when set, otherwise by ref.Name.
	GetPokemon(ctx context.Context, ref domain.ResourceRef) (domain.PokemonRecord, error)
	GetSpecies(ctx context.Context, speciesURL string) (domain.Species, error)
	GetEvolutionChain(ctx context.Context, chainURL string) (domain.ChainLink, error)
}
