package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrLoadInFlight        = errors.New("page load already in flight")
	ErrPaginationSuspended = errors.New("pagination is suspended while searching or filtering")
	ErrSuperseded          = errors.New("request superseded by a newer one")
)

type Mode int

const (
	ModeBrowsing Mode = iota
	ModeSearching
	ModeFiltering
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeSearching:
		return "searching"
	case ModeFiltering:
		return "filtering"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// View is a consistent snapshot of a Session. Items is the visible list
// after type and name filters; Total counts the accumulated list.
type View struct {
	SessionID     string
	Mode          Mode
	Offset        int
	Limit         int
	Loading       bool
	Query         string
	HasSearched   bool
	NotFound      bool
	Err           error
	Items         []domain.PokemonSummary
	Total         int
	SelectedTypes []string
	NameFilter    string
}

type searchState struct {
	query       string
	hasSearched bool
	notFound    bool
}

// Session holds the browse state of one viewer: the accumulated list, the
// pagination cursor, the active search and the filters. Network calls run
// outside the lock and commit only if no newer request started meanwhile.
type Session struct {
	id      string
	catalog *Catalog
	logger  *zap.Logger
	limit   int

	mu         sync.Mutex
	gate       requestGate
	mode       Mode
	list       []domain.PokemonSummary
	cursor     int
	loading    bool
	search     searchState
	types      domain.TypeSet
	nameFilter string
	lastErr    error
}

func NewSession(catalog *Catalog, limit int, logger *zap.Logger) *Session {
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.NewString()
	return &Session{
		id:      id,
		catalog: catalog,
		logger:  logger.With(zap.String("session_id", id)),
		limit:   limit,
		types:   domain.TypeSet{},
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// LoadNextPage fetches the window at the cursor and appends it to the list.
// It only runs in browsing mode and never overlaps another page load. The
// cursor advances only when the page is committed.
func (s *Session) LoadNextPage(ctx context.Context) (View, error) {
	s.mu.Lock()
	if s.mode != ModeBrowsing {
		view := s.viewLocked()
		s.mu.Unlock()
		return view, ErrPaginationSuspended
	}
	if s.loading {
		view := s.viewLocked()
		s.mu.Unlock()
		return view, ErrLoadInFlight
	}

	window := domain.PageWindow{Offset: s.cursor, Limit: s.limit}
	opCtx, token := s.gate.begin(ctx)
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	summaries, err := s.catalog.FetchPage(opCtx, window)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.finish(token) {
		s.logger.Debug("discarding superseded page", zap.Int("offset", window.Offset))
		return s.viewLocked(), ErrSuperseded
	}
	s.loading = false

	if err != nil {
		s.lastErr = err
		s.logger.Warn("page load failed", zap.Int("offset", window.Offset), zap.Error(err))
		return s.viewLocked(), err
	}

	next := make([]domain.PokemonSummary, 0, len(s.list)+len(summaries))
	next = append(next, s.list...)
	next = append(next, summaries...)
	s.list = next
	s.cursor = window.Next().Offset

	s.logger.Debug("page committed", zap.Int("offset", window.Offset), zap.Int("total", len(s.list)))
	return s.viewLocked(), nil
}

// Search replaces the list with the single named pokemon, or with nothing if
// the lookup fails. Any page load still in flight is superseded.
func (s *Session) Search(ctx context.Context, raw string) (View, error) {
	name := domain.NormalizeName(raw)
	if name == "" {
		return s.View(), ErrEmptyQuery
	}

	s.mu.Lock()
	opCtx, token := s.gate.begin(ctx)
	s.mode = ModeSearching
	s.search = searchState{query: name, hasSearched: true}
	s.list = nil
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	summary, err := s.catalog.Lookup(opCtx, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.finish(token) {
		s.logger.Debug("discarding superseded search", zap.String("query", name))
		return s.viewLocked(), ErrSuperseded
	}
	s.loading = false

	if err != nil {
		s.lastErr = err
		s.search.notFound = errors.Is(err, domain.ErrNotFound)
		s.logger.Info("search failed", zap.String("query", name), zap.Error(err))
		return s.viewLocked(), err
	}

	s.list = []domain.PokemonSummary{summary}
	return s.viewLocked(), nil
}

// ClearSearch drops the search, empties the list and rewinds the cursor so
// browsing restarts from the first page.
func (s *Session) ClearSearch() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gate.invalidate()
	s.search = searchState{}
	s.list = nil
	s.cursor = 0
	s.loading = false
	s.lastErr = nil
	s.mode = ModeBrowsing
	s.syncFilterModeLocked()

	return s.viewLocked()
}

func (s *Session) ToggleType(tag string) (View, error) {
	normalized := domain.NormalizeName(tag)
	if !domain.IsCanonicalType(normalized) {
		return s.View(), fmt.Errorf("%w: %q", domain.ErrUnknownType, tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.types = s.types.Toggle(normalized)
	s.syncFilterModeLocked()
	return s.viewLocked(), nil
}

func (s *Session) SetNameFilter(text string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nameFilter = domain.NormalizeName(text)
	s.syncFilterModeLocked()
	return s.viewLocked()
}

// ClearFilters drops type and name filters. Leaving filtering mode keeps the
// accumulated list, so nothing is refetched.
func (s *Session) ClearFilters() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.types = domain.TypeSet{}
	s.nameFilter = ""
	s.syncFilterModeLocked()
	return s.viewLocked()
}

func (s *Session) syncFilterModeLocked() {
	if s.mode == ModeSearching {
		return
	}
	if !s.types.IsEmpty() || s.nameFilter != "" {
		s.mode = ModeFiltering
		return
	}
	s.mode = ModeBrowsing
}

func (s *Session) viewLocked() View {
	return View{
		SessionID:     s.id,
		Mode:          s.mode,
		Offset:        s.cursor,
		Limit:         s.limit,
		Loading:       s.loading,
		Query:         s.search.query,
		HasSearched:   s.search.hasSearched,
		NotFound:      s.search.notFound,
		Err:           s.lastErr,
		Items:         domain.FilterVisible(s.list, s.types, s.nameFilter),
		Total:         len(s.list),
		SelectedTypes: s.types.Sorted(),
		NameFilter:    s.nameFilter,
	}
}
