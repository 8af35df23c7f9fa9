package pokedex

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/pokedex-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	detailBarWidth  = 24
	compareBarWidth = 12
)

type RenderOptions struct {
	SpriteBaseURL string
}

// Document is one renderable screen.
type Document interface {
	render(s styles, opts RenderOptions) string
}

type List struct {
	Title      string
	Items      []domain.PokemonSummary
	ShowCursor bool
	Cursor     int
	Compared   []string
	Footer     string
}

type Detail struct {
	Pokemon domain.PokemonSummary
}

type Comparison struct {
	Entries []domain.PokemonSummary
}

type Evolution struct {
	Name  string
	Chain []domain.EvolutionNode
}

type Types struct {
	Selected   []string
	ShowCursor bool
	Cursor     int
}

// DisplayName turns an API name such as "mr-mime" into "Mr Mime".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func (d List) render(s styles, _ RenderOptions) string {
	title := d.Title
	if title == "" {
		title = "Pokédex"
	}
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("pokemon: %d", len(d.Items))),
	}

	if len(d.Items) == 0 {
		lines = append(lines, s.empty.Render("No pokemon to show."))
	}

	compared := make(map[string]struct{}, len(d.Compared))
	for _, name := range d.Compared {
		compared[name] = struct{}{}
	}

	for i, p := range d.Items {
		marker := "  "
		if d.ShowCursor && i == d.Cursor {
			marker = "> "
		}
		nameStyle := s.name
		check := " "
		if _, ok := compared[p.Name]; ok {
			nameStyle = s.selected
			check = "*"
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			marker,
			check,
			" ",
			s.header.Render(fmt.Sprintf("#%03d", p.ID)),
			" ",
			nameStyle.Render(DisplayName(p.Name)),
			" ",
			typeBadges(p.Types),
		))
	}

	if d.Footer != "" {
		lines = append(lines, s.section.Render(s.header.Render(d.Footer)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (d Detail) render(s styles, opts RenderOptions) string {
	p := d.Pokemon
	lines := []string{
		s.name.Render(fmt.Sprintf("#%03d %s", p.ID, DisplayName(p.Name))),
		s.detail.Render("types: ") + typeBadges(p.Types),
		s.detail.Render(fmt.Sprintf("height: %s   weight: %s", formatHeight(p.Height), formatWeight(p.Weight))),
		s.detail.Render("abilities: " + joinOrNA(p.Abilities)),
	}
	if sprite := p.Sprite(opts.SpriteBaseURL); sprite != "" {
		lines = append(lines, s.header.Render("sprite: "+sprite))
	}

	lines = append(lines, s.section.Render(s.title.Render(fmt.Sprintf("Base stats (0-%d)", domain.StatAxisMax))))
	lines = append(lines, statLines(p.Stats, detailBarWidth, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (d Comparison) render(s styles, opts RenderOptions) string {
	if len(d.Entries) < domain.MaxComparison {
		return s.empty.Render(fmt.Sprintf("Select %d pokemon to compare (%d/%d).", domain.MaxComparison, len(d.Entries), domain.MaxComparison))
	}

	cards := make([]string, 0, len(d.Entries))
	for _, p := range d.Entries {
		parts := []string{
			s.name.Render(DisplayName(p.Name)),
			s.detail.Render("types: ") + typeBadges(p.Types),
			s.detail.Render("abilities: " + joinOrNA(p.Abilities)),
		}
		if sprite := p.Sprite(opts.SpriteBaseURL); sprite != "" {
			parts = append(parts, s.header.Render(sprite))
		}
		parts = append(parts, "")
		parts = append(parts, statLines(p.Stats, compareBarWidth, s)...)
		cards = append(cards, s.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("Pokémon comparison"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1]),
	)
}

func (d Evolution) render(s styles, opts RenderOptions) string {
	lines := []string{s.title.Render("Evolution chain of " + DisplayName(d.Name))}
	if len(d.Chain) == 0 {
		lines = append(lines, s.empty.Render("No evolution data."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	stages := make([]string, 0, len(d.Chain))
	for _, node := range d.Chain {
		stages = append(stages, s.name.Render(fmt.Sprintf("%s (#%d)", DisplayName(node.SpeciesName), node.ID())))
	}
	lines = append(lines, strings.Join(stages, s.arrow.Render(" -> ")))

	if opts.SpriteBaseURL != "" {
		for _, node := range d.Chain {
			if node.ID() <= 0 {
				continue
			}
			lines = append(lines, s.header.Render(fmt.Sprintf("%s: %s", node.SpeciesName, domain.SpriteURL(opts.SpriteBaseURL, node.ID()))))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (d Types) render(s styles, _ RenderOptions) string {
	selected := make(map[string]struct{}, len(d.Selected))
	for _, tag := range d.Selected {
		selected[tag] = struct{}{}
	}

	lines := []string{s.title.Render("Types")}
	for i, tag := range domain.AllTypes() {
		marker := ""
		if d.ShowCursor {
			marker = "  "
			if i == d.Cursor {
				marker = "> "
			}
		}
		box := "[ ]"
		if _, ok := selected[tag]; ok {
			box = "[x]"
		}
		lines = append(lines, marker+box+" "+typeBadge(tag))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statLines(stats []domain.Stat, width int, s styles) []string {
	if len(stats) == 0 {
		return []string{s.empty.Render("stats: n/a")}
	}

	lines := make([]string, 0, len(stats))
	for _, stat := range stats {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.statKey.Render(domain.StatLabel(stat.Name)),
			renderStatBar(stat.Value, width, s),
			" ",
			s.statValue.Render(fmt.Sprintf("%3d", stat.Value)),
		))
	}
	return lines
}

func renderStatBar(value, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampStat(value) / domain.StatAxisMax))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampStat(v int) float64 {
	if v < 0 {
		return 0
	}
	if v > domain.StatAxisMax {
		return domain.StatAxisMax
	}
	return float64(v)
}

func typeBadges(types []string) string {
	if len(types) == 0 {
		return "n/a"
	}
	badges := make([]string, 0, len(types))
	for _, tag := range types {
		badges = append(badges, typeBadge(tag))
	}
	return strings.Join(badges, ", ")
}

// Height comes in decimetres, weight in hectograms.
func formatHeight(dm int) string {
	return fmt.Sprintf("%.1f m", float64(dm)/10)
}

func formatWeight(hg int) string {
	return fmt.Sprintf("%.1f kg", float64(hg)/10)
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "n/a"
	}
	return strings.Join(values, ", ")
}
