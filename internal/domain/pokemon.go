package domain

import (
	"fmt"
	"strings"
)

const DefaultPageLimit = 20

type ResourceRef struct {
	Name string
	URL  string
}

type Stat struct {
	Name  string
	Value int
}

// PokemonSummary is the projection of a remote pokemon record that the
// catalog views work with. Name is the identity within one session.
type PokemonSummary struct {
	ID        int
	Name      string
	SpriteURL string
	Types     []string
	Abilities []string
	Height    int
	Weight    int
	Stats     []Stat
}

type PokemonRecord struct {
	Summary PokemonSummary
	Species ResourceRef
}

func (p PokemonSummary) HasType(tag string) bool {
	for _, t := range p.Types {
		if t == tag {
			return true
		}
	}
	return false
}

// Sprite returns the record's own sprite, falling back to the static sprite
// host keyed by numeric id.
func (p PokemonSummary) Sprite(spriteBaseURL string) string {
	if p.SpriteURL != "" {
		return p.SpriteURL
	}
	if p.ID <= 0 || spriteBaseURL == "" {
		return ""
	}
	return SpriteURL(spriteBaseURL, p.ID)
}

type PageWindow struct {
	Offset int
	Limit  int
}

func (w PageWindow) Validate() error {
	if w.Offset < 0 {
		return fmt.Errorf("%w: offset %d is negative", ErrInvalidWindow, w.Offset)
	}
	if w.Limit <= 0 {
		return fmt.Errorf("%w: limit %d must be positive", ErrInvalidWindow, w.Limit)
	}
	return nil
}

func (w PageWindow) Next() PageWindow {
	return PageWindow{Offset: w.Offset + w.Limit, Limit: w.Limit}
}

// NormalizeName turns user input into the lookup key the remote API expects.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
