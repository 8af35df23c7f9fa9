package pokedex

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	doc    Document
	opts   RenderOptions
	styles styles
	output string
}

func newModel(doc Document, opts RenderOptions) model {
	return model{
		doc:    doc,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.doc.render(m.styles, m.opts)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws doc through a one-shot bubbletea program so that lipgloss
// picks up the terminal's color profile.
func Render(doc Document, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(doc, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// View draws doc directly, for callers already inside a bubbletea program.
func View(doc Document, opts RenderOptions) string {
	return doc.render(newStyles(), opts)
}
