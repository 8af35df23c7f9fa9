package domain

import (
	"fmt"
	"sort"
)

var canonicalTypes = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic",
	"bug", "rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// AllTypes returns the 18 canonical type tags in display order.
func AllTypes() []string {
	return append([]string(nil), canonicalTypes...)
}

func IsCanonicalType(tag string) bool {
	for _, t := range canonicalTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// TypeSet is a selection of type tags. The empty set matches everything.
type TypeSet map[string]struct{}

func NewTypeSet(tags ...string) (TypeSet, error) {
	set := TypeSet{}
	for _, tag := range tags {
		normalized := NormalizeName(tag)
		if !IsCanonicalType(normalized) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
		}
		set[normalized] = struct{}{}
	}
	return set, nil
}

// Toggle returns a new set with tag flipped; the receiver is left untouched.
func (s TypeSet) Toggle(tag string) TypeSet {
	next := make(TypeSet, len(s)+1)
	for t := range s {
		next[t] = struct{}{}
	}
	if _, ok := next[tag]; ok {
		delete(next, tag)
	} else {
		next[tag] = struct{}{}
	}
	return next
}

func (s TypeSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s TypeSet) IsEmpty() bool {
	return len(s) == 0
}

// Sorted lists the selected tags in canonical order.
func (s TypeSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	order := make(map[string]int, len(canonicalTypes))
	for i, t := range canonicalTypes {
		order[t] = i
	}
	sort.Slice(tags, func(i, j int) bool {
		return order[tags[i]] < order[tags[j]]
	})
	return tags
}

func (s TypeSet) matches(p PokemonSummary) bool {
	if s.IsEmpty() {
		return true
	}
	for _, t := range p.Types {
		if s.Has(t) {
			return true
		}
	}
	return false
}
