package pokedex

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	name       lipgloss.Style
	selected   lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	statKey    lipgloss.Style
	statValue  lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	card       lipgloss.Style
	arrow      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		statKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(8),
		statValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		arrow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("250"),
	"fire":     lipgloss.Color("202"),
	"water":    lipgloss.Color("33"),
	"electric": lipgloss.Color("220"),
	"grass":    lipgloss.Color("70"),
	"ice":      lipgloss.Color("117"),
	"fighting": lipgloss.Color("160"),
	"poison":   lipgloss.Color("128"),
	"ground":   lipgloss.Color("179"),
	"flying":   lipgloss.Color("147"),
	"psychic":  lipgloss.Color("205"),
	"bug":      lipgloss.Color("106"),
	"rock":     lipgloss.Color("137"),
	"ghost":    lipgloss.Color("97"),
	"dragon":   lipgloss.Color("63"),
	"dark":     lipgloss.Color("95"),
	"steel":    lipgloss.Color("146"),
	"fairy":    lipgloss.Color("218"),
}

func typeBadge(tag string) string {
	color, ok := typeColors[tag]
	if !ok {
		color = lipgloss.Color("245")
	}
	return lipgloss.NewStyle().Foreground(color).Render(tag)
}
