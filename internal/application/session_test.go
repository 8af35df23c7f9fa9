package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(source *inMemorySource) *Session {
	return NewSession(NewCatalog(source, nil, 4), domain.DefaultPageLimit, nil)
}

func TestSessionTwoTriggersAccumulateFortyInOrder(t *testing.T) {
	source := newInMemorySource(100)
	session := newTestSession(source)

	first, err := session.LoadNextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, first.Total)
	assert.Equal(t, 20, first.Offset)

	second, err := session.LoadNextPage(context.Background())
	require.NoError(t, err)
	require.Equal(t, 40, second.Total)
	assert.Equal(t, 40, second.Offset)

	names := summaryNames(second.Items)
	seen := map[string]bool{}
	for i, name := range names {
		assert.Equal(t, fmt.Sprintf("mon-%04d", i+1), name)
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
	}
	assert.Equal(t, []domain.PageWindow{{Offset: 0, Limit: 20}, {Offset: 20, Limit: 20}}, source.windows())
}

func TestSessionFailedPageLeavesStateUnchanged(t *testing.T) {
	source := newInMemorySource(60)
	session := newTestSession(source)

	_, err := session.LoadNextPage(context.Background())
	require.NoError(t, err)

	source.mu.Lock()
	source.detailErrs["mon-0025"] = errors.New("detail failed")
	source.mu.Unlock()

	view, err := session.LoadNextPage(context.Background())
	require.ErrorIs(t, err, domain.ErrPartialAggregation)
	assert.Equal(t, 20, view.Total)
	assert.Equal(t, 20, view.Offset)
	assert.False(t, view.Loading)
	assert.ErrorIs(t, view.Err, domain.ErrPartialAggregation)

	source.mu.Lock()
	delete(source.detailErrs, "mon-0025")
	source.mu.Unlock()

	view, err = session.LoadNextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, view.Total)
	assert.NoError(t, view.Err)
}

func TestSessionRejectsOverlappingPageLoads(t *testing.T) {
	source := newInMemorySource(40)
	source.block()
	session := newTestSession(source)

	done := make(chan error, 1)
	go func() {
		_, err := session.LoadNextPage(context.Background())
		done <- err
	}()
	<-source.listStarted

	view, err := session.LoadNextPage(context.Background())
	require.ErrorIs(t, err, ErrLoadInFlight)
	assert.True(t, view.Loading)
	assert.Equal(t, 0, view.Offset)

	source.release()
	require.NoError(t, <-done)

	view = session.View()
	assert.Equal(t, 20, view.Total)
	assert.Equal(t, 20, view.Offset)
	assert.Len(t, source.windows(), 1)
}

func TestSessionOffsetIsMonotonicWhileBrowsing(t *testing.T) {
	source := newInMemorySource(200)
	session := newTestSession(source)

	last := session.View().Offset
	for i := 0; i < 6; i++ {
		view, err := session.LoadNextPage(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, view.Offset, last)
		last = view.Offset
	}
	assert.Equal(t, 120, last)
}

func TestSessionSearchFindsSingleRecord(t *testing.T) {
	source := newInMemorySource(0)
	source.names = []string{"pikachu"}
	session := newTestSession(source)

	view, err := session.Search(context.Background(), "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, ModeSearching, view.Mode)
	assert.True(t, view.HasSearched)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "pikachu", view.Items[0].Name)
	assert.False(t, view.NotFound)
}

func TestSessionSearchNotFound(t *testing.T) {
	source := newInMemorySource(20)
	session := newTestSession(source)

	_, err := session.LoadNextPage(context.Background())
	require.NoError(t, err)

	view, err := session.Search(context.Background(), "notapokemon123")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Total)
	assert.True(t, view.HasSearched)
	assert.True(t, view.NotFound)
	assert.False(t, view.Loading)
	assert.Error(t, view.Err)
}

func TestSessionSearchNetworkFailureIsNotNotFound(t *testing.T) {
	source := newInMemorySource(1)
	source.detailErrs["mon-0001"] = fmt.Errorf("%w: connection reset", domain.ErrNetwork)
	session := newTestSession(source)

	view, err := session.Search(context.Background(), "mon-0001")
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.True(t, view.HasSearched)
	assert.False(t, view.NotFound)
	assert.Empty(t, view.Items)
}

func TestSessionSearchRejectsEmptyQuery(t *testing.T) {
	session := newTestSession(newInMemorySource(20))

	view, err := session.Search(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, ModeBrowsing, view.Mode)
	assert.False(t, view.HasSearched)
}

func TestSessionPaginationSuspendedWhileSearching(t *testing.T) {
	source := newInMemorySource(20)
	session := newTestSession(source)

	_, err := session.Search(context.Background(), "mon-0003")
	require.NoError(t, err)

	_, err = session.LoadNextPage(context.Background())
	require.ErrorIs(t, err, ErrPaginationSuspended)
	assert.Empty(t, source.windows())
}

func TestSessionClearSearchRestartsFromFirstPage(t *testing.T) {
	source := newInMemorySource(100)
	session := newTestSession(source)

	for i := 0; i < 3; i++ {
		_, err := session.LoadNextPage(context.Background())
		require.NoError(t, err)
	}
	_, err := session.Search(context.Background(), "mon-0042")
	require.NoError(t, err)

	view := session.ClearSearch()
	assert.Equal(t, ModeBrowsing, view.Mode)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Offset)
	assert.False(t, view.HasSearched)
	assert.Empty(t, view.Query)

	view, err = session.LoadNextPage(context.Background())
	require.NoError(t, err)
	windows := source.windows()
	assert.Equal(t, domain.PageWindow{Offset: 0, Limit: 20}, windows[len(windows)-1])
	assert.Equal(t, "mon-0001", view.Items[0].Name)
}

func TestSessionTypeFilterSelectsMatchingTypes(t *testing.T) {
	source := newInMemorySource(0)
	source.names = []string{"charmander", "squirtle", "pidgey"}
	source.types = map[string][]string{
		"charmander": {"fire"},
		"squirtle":   {"water"},
		"pidgey":     {"normal", "flying"},
	}
	session := newTestSession(source)

	_, err := session.LoadNextPage(context.Background())
	require.NoError(t, err)

	_, err = session.ToggleType("fire")
	require.NoError(t, err)
	view, err := session.ToggleType("water")
	require.NoError(t, err)

	assert.Equal(t, ModeFiltering, view.Mode)
	assert.Equal(t, []string{"charmander", "squirtle"}, summaryNames(view.Items))
	assert.Equal(t, []string{"fire", "water"}, view.SelectedTypes)
	assert.Equal(t, 3, view.Total)
}

func TestSessionNameFilterCombinesWithTypes(t *testing.T) {
	source := newInMemorySource(0)
	source.names = []string{"charmander", "charizard", "squirtle"}
	source.types = map[string][]string{
		"charmander": {"fire"},
		"charizard":  {"fire", "flying"},
		"squirtle":   {"water"},
	}
	session := newTestSession(source)
	_, err := session.LoadNextPage(context.Background())
	require.NoError(t, err)

	_, err = session.ToggleType("fire")
	require.NoError(t, err)
	view := session.SetNameFilter("IZA")
	assert.Equal(t, []string{"charizard"}, summaryNames(view.Items))
}

func TestSessionUnknownTypeIsRejected(t *testing.T) {
	session := newTestSession(newInMemorySource(0))

	view, err := session.ToggleType("shadow")
	require.ErrorIs(t, err, domain.ErrUnknownType)
	assert.Equal(t, ModeBrowsing, view.Mode)
}

func TestSessionFilteringSuspendsAndResumesWithoutRefetch(t *testing.T) {
	source := newInMemorySource(60)
	session := newTestSession(source)

	for i := 0; i < 2; i++ {
		_, err := session.LoadNextPage(context.Background())
		require.NoError(t, err)
	}

	session.SetNameFilter("mon-001")
	_, err := session.LoadNextPage(context.Background())
	require.ErrorIs(t, err, ErrPaginationSuspended)

	view := session.ClearFilters()
	assert.Equal(t, ModeBrowsing, view.Mode)
	assert.Equal(t, 40, view.Total)
	assert.Len(t, view.Items, 40)
	assert.Len(t, source.windows(), 2)

	view, err = session.LoadNextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60, view.Total)
	assert.Equal(t, domain.PageWindow{Offset: 40, Limit: 20}, source.windows()[2])
}

func TestSessionClearSearchKeepsFilteringWhenFiltersRemain(t *testing.T) {
	session := newTestSession(newInMemorySource(20))

	_, err := session.ToggleType("fire")
	require.NoError(t, err)
	_, err = session.Search(context.Background(), "mon-0001")
	require.NoError(t, err)

	view := session.ClearSearch()
	assert.Equal(t, ModeFiltering, view.Mode)
}

func TestSessionSearchSupersedesInFlightPage(t *testing.T) {
	source := newInMemorySource(40)
	source.block()
	session := newTestSession(source)

	done := make(chan error, 1)
	go func() {
		_, err := session.LoadNextPage(context.Background())
		done <- err
	}()
	<-source.listStarted

	view, err := session.Search(context.Background(), "mon-0033")
	require.NoError(t, err)
	require.Equal(t, []string{"mon-0033"}, summaryNames(view.Items))

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(5 * time.Second):
		t.Fatal("superseded page load did not return")
	}
	source.release()

	view = session.View()
	assert.Equal(t, []string{"mon-0033"}, summaryNames(view.Items))
	assert.Equal(t, 0, view.Offset)
	assert.False(t, view.Loading)
}

func TestSessionClearSearchDiscardsInFlightPage(t *testing.T) {
	source := newInMemorySource(40)
	source.block()
	session := newTestSession(source)

	done := make(chan error, 1)
	go func() {
		_, err := session.LoadNextPage(context.Background())
		done <- err
	}()
	<-source.listStarted

	view := session.ClearSearch()
	assert.False(t, view.Loading)
	require.ErrorIs(t, <-done, ErrSuperseded)
	source.release()

	assert.Equal(t, 0, session.View().Total)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "browsing", ModeBrowsing.String())
	assert.Equal(t, "searching", ModeSearching.String())
	assert.Equal(t, "filtering", ModeFiltering.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestSessionIDIsStable(t *testing.T) {
	session := newTestSession(newInMemorySource(0))
	require.NotEmpty(t, session.ID())
	assert.Equal(t, session.ID(), session.View().SessionID)
}
