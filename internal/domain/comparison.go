package domain

const MaxComparison = 2

// ComparisonSelection holds at most MaxComparison pokemon, unique by name,
// oldest first. Methods return new values.
type ComparisonSelection struct {
	entries []PokemonSummary
}

func (c ComparisonSelection) Toggle(p PokemonSummary) ComparisonSelection {
	if c.Contains(p.Name) {
		next := make([]PokemonSummary, 0, len(c.entries))
		for _, e := range c.entries {
			if e.Name != p.Name {
				next = append(next, e)
			}
		}
		return ComparisonSelection{entries: next}
	}

	next := make([]PokemonSummary, 0, MaxComparison)
	next = append(next, c.entries...)
	next = append(next, p)
	if len(next) > MaxComparison {
		next = next[len(next)-MaxComparison:]
	}
	return ComparisonSelection{entries: next}
}

func (c ComparisonSelection) Contains(name string) bool {
	for _, e := range c.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

func (c ComparisonSelection) Entries() []PokemonSummary {
	return append([]PokemonSummary(nil), c.entries...)
}

func (c ComparisonSelection) Len() int {
	return len(c.entries)
}
