package domain

import "strings"

// FilterVisible keeps the pokemon that carry at least one selected type and
// whose name contains nameFilter. Both predicates must hold. The input slice
// is never modified.
func FilterVisible(list []PokemonSummary, types TypeSet, nameFilter string) []PokemonSummary {
	needle := strings.ToLower(nameFilter)
	visible := make([]PokemonSummary, 0, len(list))
	for _, p := range list {
		if !types.matches(p) {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}
