package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/bnema/pokedex-cli/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	speciesURL = "https://pokeapi.co/api/v2/pokemon-species/1/"
	chainURL   = "https://pokeapi.co/api/v2/evolution-chain/1/"
)

func speciesRef(name string, id int) domain.ResourceRef {
	return domain.ResourceRef{Name: name, URL: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id)}
}

func expectRecordAndSpecies(source *mocks.MockPokemonSource, name string) {
	source.EXPECT().GetPokemon(mockAnyContext(), domain.ResourceRef{Name: name}).Return(domain.PokemonRecord{
		Summary: domain.PokemonSummary{Name: name},
		Species: domain.ResourceRef{Name: name, URL: speciesURL},
	}, nil)
	source.EXPECT().GetSpecies(mockAnyContext(), speciesURL).Return(domain.Species{Name: name, EvolutionChainURL: chainURL}, nil)
}

func TestEvolutionResolverThreeStages(t *testing.T) {
	source := mocks.NewMockPokemonSource(t)
	resolver := NewEvolutionResolver(source, nil)

	expectRecordAndSpecies(source, "ivysaur")
	source.EXPECT().GetEvolutionChain(mockAnyContext(), chainURL).Return(domain.ChainLink{
		Species: speciesRef("bulbasaur", 1),
		EvolvesTo: []domain.ChainLink{{
			Species:   speciesRef("ivysaur", 2),
			EvolvesTo: []domain.ChainLink{{Species: speciesRef("venusaur", 3)}},
		}},
	}, nil)

	chain, err := resolver.Resolve(context.Background(), "Ivysaur")
	require.NoError(t, err)

	want := []domain.EvolutionNode{
		{SpeciesName: "bulbasaur", SpeciesURL: speciesRef("bulbasaur", 1).URL},
		{SpeciesName: "ivysaur", SpeciesURL: speciesRef("ivysaur", 2).URL},
		{SpeciesName: "venusaur", SpeciesURL: speciesRef("venusaur", 3).URL},
	}
	if diff := cmp.Diff(want, chain); diff != "" {
		t.Fatalf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestEvolutionResolverBranchingFollowsFirstBranch(t *testing.T) {
	source := mocks.NewMockPokemonSource(t)
	resolver := NewEvolutionResolver(source, nil)

	expectRecordAndSpecies(source, "eevee")
	source.EXPECT().GetEvolutionChain(mockAnyContext(), chainURL).Return(domain.ChainLink{
		Species: speciesRef("eevee", 133),
		EvolvesTo: []domain.ChainLink{
			{Species: speciesRef("vaporeon", 134)},
			{Species: speciesRef("jolteon", 135)},
		},
	}, nil)

	chain, err := resolver.Resolve(context.Background(), "eevee")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "vaporeon", chain[1].SpeciesName)
	assert.Equal(t, 134, chain[1].ID())
}

func TestEvolutionResolverFailuresReturnNoChain(t *testing.T) {
	stepErr := errors.New("step failed")

	tests := []struct {
		name   string
		setup  func(source *mocks.MockPokemonSource)
		wantIs error
		step   string
	}{
		{
			name: "pokemon not found",
			setup: func(source *mocks.MockPokemonSource) {
				source.EXPECT().GetPokemon(mockAnyContext(), domain.ResourceRef{Name: "missingno"}).
					Return(domain.PokemonRecord{}, fmt.Errorf("%w: missingno", domain.ErrNotFound))
			},
			wantIs: domain.ErrNotFound,
			step:   "load pokemon",
		},
		{
			name: "species fails",
			setup: func(source *mocks.MockPokemonSource) {
				source.EXPECT().GetPokemon(mockAnyContext(), domain.ResourceRef{Name: "missingno"}).Return(domain.PokemonRecord{
					Species: domain.ResourceRef{URL: speciesURL},
				}, nil)
				source.EXPECT().GetSpecies(mockAnyContext(), speciesURL).Return(domain.Species{}, stepErr)
			},
			wantIs: stepErr,
			step:   "load species",
		},
		{
			name: "chain fails",
			setup: func(source *mocks.MockPokemonSource) {
				expectRecordAndSpecies(source, "missingno")
				source.EXPECT().GetEvolutionChain(mockAnyContext(), chainURL).Return(domain.ChainLink{}, stepErr)
			},
			wantIs: stepErr,
			step:   "load evolution chain",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := mocks.NewMockPokemonSource(t)
			tc.setup(source)
			resolver := NewEvolutionResolver(source, nil)

			chain, err := resolver.Resolve(context.Background(), "missingno")
			require.ErrorIs(t, err, tc.wantIs)
			assert.Contains(t, err.Error(), tc.step)
			assert.Nil(t, chain)
		})
	}
}

func TestEvolutionResolverEmptyName(t *testing.T) {
	resolver := NewEvolutionResolver(mocks.NewMockPokemonSource(t), nil)

	_, err := resolver.Resolve(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestEvolutionLookupDiscardsSupersededResolution(t *testing.T) {
	source := mocks.NewMockPokemonSource(t)
	lookup := NewEvolutionLookup(NewEvolutionResolver(source, nil))

	started := make(chan struct{})
	source.EXPECT().GetPokemon(mockAnyContext(), domain.ResourceRef{Name: "slowpoke"}).RunAndReturn(
		func(ctx context.Context, _ domain.ResourceRef) (domain.PokemonRecord, error) {
			close(started)
			<-ctx.Done()
			return domain.PokemonRecord{}, ctx.Err()
		},
	)
	expectRecordAndSpecies(source, "eevee")
	source.EXPECT().GetEvolutionChain(mockAnyContext(), chainURL).Return(domain.ChainLink{Species: speciesRef("eevee", 133)}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := lookup.Lookup(context.Background(), "slowpoke")
		done <- err
	}()
	<-started

	state, err := lookup.Lookup(context.Background(), "eevee")
	require.NoError(t, err)
	assert.Equal(t, "eevee", state.Name)

	require.ErrorIs(t, <-done, ErrSuperseded)
	final := lookup.State()
	assert.Equal(t, "eevee", final.Name)
	require.Len(t, final.Chain, 1)
	assert.NoError(t, final.Err)
}

func TestEvolutionLookupRecordsFailure(t *testing.T) {
	source := mocks.NewMockPokemonSource(t)
	lookup := NewEvolutionLookup(NewEvolutionResolver(source, nil))

	source.EXPECT().GetPokemon(mockAnyContext(), domain.ResourceRef{Name: "missingno"}).
		Return(domain.PokemonRecord{}, fmt.Errorf("%w: missingno", domain.ErrNotFound))

	state, err := lookup.Lookup(context.Background(), "missingno")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, state.Chain)
	assert.False(t, state.Loading)
	assert.ErrorIs(t, lookup.State().Err, domain.ErrNotFound)
}
