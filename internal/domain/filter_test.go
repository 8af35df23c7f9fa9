package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starterList() []PokemonSummary {
	return []PokemonSummary{
		{Name: "charmander", Types: []string{"fire"}},
		{Name: "squirtle", Types: []string{"water"}},
		{Name: "pidgey", Types: []string{"normal", "flying"}},
	}
}

func names(list []PokemonSummary) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterVisibleSelectsAnyMatchingType(t *testing.T) {
	types, err := NewTypeSet("fire", "water")
	require.NoError(t, err)

	visible := FilterVisible(starterList(), types, "")
	assert.Equal(t, []string{"charmander", "squirtle"}, names(visible))
}

func TestFilterVisibleEmptySetMatchesAll(t *testing.T) {
	visible := FilterVisible(starterList(), TypeSet{}, "")
	assert.Equal(t, []string{"charmander", "squirtle", "pidgey"}, names(visible))
}

func TestFilterVisibleCombinesTypeAndName(t *testing.T) {
	types, err := NewTypeSet("fire", "water", "flying")
	require.NoError(t, err)

	visible := FilterVisible(starterList(), types, "IR")
	assert.Equal(t, []string{"squirtle"}, names(visible))
}

func TestFilterVisibleIsPure(t *testing.T) {
	list := starterList()
	types, err := NewTypeSet("water")
	require.NoError(t, err)

	first := FilterVisible(list, types, "")
	second := FilterVisible(list, types, "")
	assert.Equal(t, first, second)
	assert.Equal(t, starterList(), list)
}

func TestNewTypeSetRejectsUnknownTag(t *testing.T) {
	_, err := NewTypeSet("fire", "shadow")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypeSetToggleReturnsNewSet(t *testing.T) {
	empty := TypeSet{}
	withFire := empty.Toggle("fire")

	assert.True(t, empty.IsEmpty())
	assert.True(t, withFire.Has("fire"))
	assert.True(t, withFire.Toggle("fire").IsEmpty())
}

func TestTypeSetSortedUsesCanonicalOrder(t *testing.T) {
	set, err := NewTypeSet("fairy", "normal", "water")
	require.NoError(t, err)
	assert.Equal(t, []string{"normal", "water", "fairy"}, set.Sorted())
}

func TestAllTypesHasEighteenTags(t *testing.T) {
	all := AllTypes()
	require.Len(t, all, 18)
	all[0] = "mutated"
	assert.Equal(t, "normal", AllTypes()[0])
}
