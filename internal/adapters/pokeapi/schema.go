package pokeapi

import "github.com/bnema/pokedex-cli/internal/domain"

type namedResourceSchema struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listSchema struct {
	Count   int                   `json:"count"`
	Next    *string               `json:"next"`
	Results []namedResourceSchema `json:"results"`
}

type pokemonSchema struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int                 `json:"slot"`
		Type namedResourceSchema `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  namedResourceSchema `json:"ability"`
		IsHidden bool                `json:"is_hidden"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int                 `json:"base_stat"`
		Stat     namedResourceSchema `json:"stat"`
	} `json:"stats"`
	Species namedResourceSchema `json:"species"`
}

type speciesSchema struct {
	Name           string `json:"name"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type chainSchema struct {
	ID    int             `json:"id"`
	Chain chainLinkSchema `json:"chain"`
}

type chainLinkSchema struct {
	Species   namedResourceSchema `json:"species"`
	EvolvesTo []chainLinkSchema   `json:"evolves_to"`
}

func fromListSchema(payload listSchema) []domain.ResourceRef {
	refs := make([]domain.ResourceRef, 0, len(payload.Results))
	for _, entry := range payload.Results {
		refs = append(refs, domain.ResourceRef{Name: entry.Name, URL: entry.URL})
	}
	return refs
}

func fromPokemonSchema(payload pokemonSchema) domain.PokemonRecord {
	summary := domain.PokemonSummary{
		ID:        payload.ID,
		Name:      payload.Name,
		Height:    payload.Height,
		Weight:    payload.Weight,
		Types:     make([]string, 0, len(payload.Types)),
		Abilities: make([]string, 0, len(payload.Abilities)),
		Stats:     make([]domain.Stat, 0, len(payload.Stats)),
	}
	if payload.Sprites.FrontDefault != nil {
		summary.SpriteURL = *payload.Sprites.FrontDefault
	}
	for _, t := range payload.Types {
		summary.Types = append(summary.Types, t.Type.Name)
	}
	for _, a := range payload.Abilities {
		summary.Abilities = append(summary.Abilities, a.Ability.Name)
	}
	for _, s := range payload.Stats {
		summary.Stats = append(summary.Stats, domain.Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}

	return domain.PokemonRecord{
		Summary: summary,
		Species: domain.ResourceRef{Name: payload.Species.Name, URL: payload.Species.URL},
	}
}

func fromChainLinkSchema(link chainLinkSchema) domain.ChainLink {
	out := domain.ChainLink{
		Species: domain.ResourceRef{Name: link.Species.Name, URL: link.Species.URL},
	}
	if len(link.EvolvesTo) > 0 {
		out.EvolvesTo = make([]domain.ChainLink, 0, len(link.EvolvesTo))
		for _, next := range link.EvolvesTo {
			out.EvolvesTo = append(out.EvolvesTo, fromChainLinkSchema(next))
		}
	}
	return out
}
