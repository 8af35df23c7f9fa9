package application

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComparisonStoreEvictsOldest(t *testing.T) {
	store := NewComparisonStore()
	a := domain.PokemonSummary{Name: "bulbasaur"}
	b := domain.PokemonSummary{Name: "charmander"}
	c := domain.PokemonSummary{Name: "squirtle"}

	store.Toggle(a)
	assert.False(t, store.Ready())
	store.Toggle(b)
	assert.True(t, store.Ready())
	selected := store.Toggle(c)

	assert.Equal(t, []domain.PokemonSummary{b, c}, selected)
	assert.Equal(t, selected, store.Selected())
	assert.False(t, store.IsSelected("bulbasaur"))
}

func TestComparisonStoreToggleOffAndClear(t *testing.T) {
	store := NewComparisonStore()
	a := domain.PokemonSummary{Name: "eevee"}

	store.Toggle(a)
	assert.True(t, store.IsSelected("eevee"))
	assert.Empty(t, store.Toggle(a))

	store.Toggle(a)
	store.Clear()
	assert.Empty(t, store.Selected())
}

func TestComparisonStoreSelectedIsACopy(t *testing.T) {
	store := NewComparisonStore()
	store.Toggle(domain.PokemonSummary{Name: "eevee"})

	selected := store.Selected()
	selected[0].Name = "mutated"
	assert.True(t, store.IsSelected("eevee"))
}

func TestComparisonStoreConcurrentTogglesKeepInvariant(t *testing.T) {
	store := NewComparisonStore()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				store.Toggle(domain.PokemonSummary{Name: fmt.Sprintf("mon-%d", (worker+i)%5)})
				selected := store.Selected()
				assert.LessOrEqual(t, len(selected), domain.MaxComparison)
			}
		}(worker)
	}
	wg.Wait()

	selected := store.Selected()
	assert.LessOrEqual(t, len(selected), domain.MaxComparison)
	if len(selected) == 2 {
		assert.NotEqual(t, selected[0].Name, selected[1].Name)
	}
}
