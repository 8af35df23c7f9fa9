package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/pokedex-cli/internal/adapters/render/pokedex"
	"github.com/bnema/pokedex-cli/internal/application"
	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const defaultListRows = 15

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCompare
	screenEvolution
	screenTypes
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputFilter
)

type Deps struct {
	Session   *application.Session
	Store     *application.ComparisonStore
	Evolution *application.EvolutionLookup
	Render    pokedex.RenderOptions
	Logger    *zap.Logger
}

type pageLoadedMsg struct {
	err error
}

type searchDoneMsg struct {
	err error
}

type evolutionDoneMsg struct {
	state application.EvolutionState
	err   error
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

// Model is the interactive browser. The last visible row of the list acts as
// the pagination sentinel: reaching it requests the next page.
type Model struct {
	ctx    context.Context
	deps   Deps
	logger *zap.Logger

	spinner spinner.Model
	input   textinput.Model
	help    help.Model

	screen     screen
	mode       inputMode
	view       application.View
	cursor     int
	typeCursor int
	rows       int
	detail     domain.PokemonSummary
	evolution  application.EvolutionState
	requested  bool
	status     string
	statusErr  bool
}

func New(ctx context.Context, deps Deps) Model {
	if deps.Store == nil {
		deps.Store = application.NewComparisonStore()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	input := textinput.New()
	input.CharLimit = 64

	return Model{
		ctx:       ctx,
		deps:      deps,
		logger:    logger,
		spinner:   s,
		input:     input,
		help:      help.New(),
		view:      deps.Session.View(),
		rows:      defaultListRows,
		requested: true,
	}
}

// Init requests the first page; New has already marked it requested.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadNextPage())
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(ctx context.Context, deps Deps, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(ctx, deps), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if rows := msg.Height - 8; rows > 3 {
			m.rows = rows
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case pageLoadedMsg:
		m.requested = false
		m.refresh()
		if msg.err != nil && !isBenign(msg.err) {
			m.setError("load failed: %v (r to retry)", msg.err)
		}
		return m, nil
	case searchDoneMsg:
		m.refresh()
		m.cursor = 0
		switch {
		case msg.err == nil:
			m.setStatus("found %s", m.view.Query)
		case errors.Is(msg.err, domain.ErrNotFound):
			m.setError("no pokemon named %q", m.view.Query)
		case !isBenign(msg.err):
			m.setError("search failed: %v", msg.err)
		}
		return m, nil
	case evolutionDoneMsg:
		if errors.Is(msg.err, application.ErrSuperseded) {
			return m, nil
		}
		m.evolution = msg.state
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		mode := m.mode
		m.mode = inputNone
		m.input.Blur()
		if mode == inputSearch {
			return m.search(m.input.Value())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == inputFilter {
		m.view = m.deps.Session.SetNameFilter(m.input.Value())
		m.clampCursor()
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	switch m.screen {
	case screenTypes:
		return m.updateTypes(msg)
	case screenCompare:
		if key.Matches(msg, keys.Back, keys.Compare) {
			m.deps.Store.Clear()
			m.screen = screenList
		}
		return m, nil
	case screenDetail, screenEvolution:
		switch {
		case key.Matches(msg, keys.Back):
			m.screen = screenList
		case key.Matches(msg, keys.Evolution) && m.screen == screenDetail:
			return m.resolveEvolution(m.detail.Name)
		case key.Matches(msg, keys.Toggle) && m.screen == screenDetail:
			return m.toggleCompare(m.detail)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.view.Items)-1 {
			m.cursor++
		}
		cmd := m.maybeLoadMore()
		return m, cmd
	case key.Matches(msg, keys.Detail):
		if p, ok := m.current(); ok {
			m.detail = p
			m.screen = screenDetail
		}
		return m, nil
	case key.Matches(msg, keys.Search):
		return m.startInput(inputSearch, "name: ", m.view.Query)
	case key.Matches(msg, keys.Filter):
		return m.startInput(inputFilter, "filter: ", m.view.NameFilter)
	case key.Matches(msg, keys.ClearSearch):
		if !m.view.HasSearched {
			return m, nil
		}
		m.view = m.deps.Session.ClearSearch()
		m.cursor = 0
		m.setStatus("search cleared")
		cmd := m.maybeLoadMore()
		return m, cmd
	case key.Matches(msg, keys.ClearAll):
		m.view = m.deps.Session.ClearFilters()
		m.clampCursor()
		cmd := m.maybeLoadMore()
		return m, cmd
	case key.Matches(msg, keys.Types):
		m.screen = screenTypes
		return m, nil
	case key.Matches(msg, keys.Toggle):
		if p, ok := m.current(); ok {
			return m.toggleCompare(p)
		}
		return m, nil
	case key.Matches(msg, keys.Compare):
		m.screen = screenCompare
		return m, nil
	case key.Matches(msg, keys.Evolution):
		if p, ok := m.current(); ok {
			return m.resolveEvolution(p.Name)
		}
		return m, nil
	case key.Matches(msg, keys.Retry):
		if m.view.Mode == application.ModeBrowsing && !m.requested {
			m.requested = true
			return m, m.loadNextPage()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateTypes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tags := domain.AllTypes()
	switch {
	case key.Matches(msg, keys.Back, keys.Types):
		m.screen = screenList
		cmd := m.maybeLoadMore()
		return m, cmd
	case key.Matches(msg, keys.Up):
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.typeCursor < len(tags)-1 {
			m.typeCursor++
		}
	case key.Matches(msg, keys.Toggle, keys.Detail):
		view, err := m.deps.Session.ToggleType(tags[m.typeCursor])
		if err != nil {
			m.setError("%v", err)
			return m, nil
		}
		m.view = view
		m.clampCursor()
	case key.Matches(msg, keys.ClearAll):
		m.view = m.deps.Session.ClearFilters()
		m.clampCursor()
	}
	return m, nil
}

func (m Model) startInput(mode inputMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) search(query string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(query) == "" {
		m.setError("type a name to search")
		return m, nil
	}

	session := m.deps.Session
	ctx := m.ctx
	m.setStatus("searching %s...", domain.NormalizeName(query))
	return m, func() tea.Msg {
		_, err := session.Search(ctx, query)
		return searchDoneMsg{err: err}
	}
}

func (m Model) toggleCompare(p domain.PokemonSummary) (tea.Model, tea.Cmd) {
	m.deps.Store.Toggle(p)
	if m.deps.Store.Ready() {
		m.screen = screenCompare
	}
	return m, nil
}

func (m Model) resolveEvolution(name string) (tea.Model, tea.Cmd) {
	if m.deps.Evolution == nil {
		return m, nil
	}

	lookup := m.deps.Evolution
	ctx := m.ctx
	m.screen = screenEvolution
	m.evolution = application.EvolutionState{Name: name, Loading: true}
	return m, func() tea.Msg {
		state, err := lookup.Lookup(ctx, name)
		return evolutionDoneMsg{state: state, err: err}
	}
}

// maybeLoadMore requests the next page once the cursor sits on the sentinel
// row, or when browsing an empty list.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.requested || m.view.Mode != application.ModeBrowsing || m.view.Loading {
		return nil
	}
	if len(m.view.Items) > 0 && m.cursor < len(m.view.Items)-1 {
		return nil
	}
	m.requested = true
	return m.loadNextPage()
}

func (m Model) loadNextPage() tea.Cmd {
	session := m.deps.Session
	ctx := m.ctx
	return func() tea.Msg {
		_, err := session.LoadNextPage(ctx)
		return pageLoadedMsg{err: err}
	}
}

func (m *Model) refresh() {
	m.view = m.deps.Session.View()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() (domain.PokemonSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return domain.PokemonSummary{}, false
	}
	return m.view.Items[m.cursor], true
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = true
	m.logger.Debug("browser status", zap.String("status", m.status))
}

func (m Model) busy() bool {
	return m.requested || m.view.Loading || m.evolution.Loading
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenDetail:
		body = pokedex.View(pokedex.Detail{Pokemon: m.detail}, m.deps.Render)
	case screenCompare:
		body = pokedex.View(pokedex.Comparison{Entries: m.deps.Store.Selected()}, m.deps.Render)
	case screenEvolution:
		body = m.evolutionView()
	case screenTypes:
		body = pokedex.View(pokedex.Types{
			Selected:   m.view.SelectedTypes,
			ShowCursor: true,
			Cursor:     m.typeCursor,
		}, m.deps.Render)
	default:
		body = m.listView()
	}

	sections := []string{body}
	if m.mode != inputNone {
		sections = append(sections, m.input.View())
	}
	if m.busy() {
		sections = append(sections, fmt.Sprintf("%s %s", m.spinner.View(), "loading..."))
	} else if m.status != "" {
		if m.statusErr {
			sections = append(sections, errorStyle.Render(m.status))
		} else {
			sections = append(sections, statusStyle.Render(m.status))
		}
	}
	sections = append(sections, helpStyle.Render(m.help.View(keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) listView() string {
	start, end := visibleRange(m.cursor, len(m.view.Items), m.rows)

	selected := m.deps.Store.Selected()
	compared := make([]string, 0, len(selected))
	for _, p := range selected {
		compared = append(compared, p.Name)
	}

	return pokedex.View(pokedex.List{
		Title:      m.listTitle(),
		Items:      m.view.Items[start:end],
		ShowCursor: true,
		Cursor:     m.cursor - start,
		Compared:   compared,
		Footer:     m.listFooter(),
	}, m.deps.Render)
}

func (m Model) listTitle() string {
	switch m.view.Mode {
	case application.ModeSearching:
		return fmt.Sprintf("Search: %s", m.view.Query)
	case application.ModeFiltering:
		return "Pokédex (filtered)"
	default:
		return "Pokédex"
	}
}

func (m Model) listFooter() string {
	parts := []string{fmt.Sprintf("loaded %d", m.view.Total)}
	if len(m.view.SelectedTypes) > 0 {
		parts = append(parts, "types: "+strings.Join(m.view.SelectedTypes, ","))
	}
	if m.view.NameFilter != "" {
		parts = append(parts, "name: "+m.view.NameFilter)
	}
	if m.view.Mode != application.ModeBrowsing {
		parts = append(parts, "paging paused")
	}
	return strings.Join(parts, " | ")
}

func (m Model) evolutionView() string {
	state := m.evolution
	if state.Loading {
		return fmt.Sprintf("%s resolving evolution chain of %s", m.spinner.View(), pokedex.DisplayName(state.Name))
	}
	if state.Err != nil {
		return errorStyle.Render(fmt.Sprintf("evolution chain unavailable: %v", state.Err))
	}
	return pokedex.View(pokedex.Evolution{Name: state.Name, Chain: state.Chain}, m.deps.Render)
}

// visibleRange returns the slice bounds of a window of at most rows items
// that keeps cursor in view.
func visibleRange(cursor, total, rows int) (int, int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > total {
		end = total
		start = end - rows
	}
	return start, end
}

func isBenign(err error) bool {
	return errors.Is(err, application.ErrSuperseded) ||
		errors.Is(err, application.ErrLoadInFlight) ||
		errors.Is(err, application.ErrPaginationSuspended) ||
		errors.Is(err, context.Canceled)
}
