package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/navflow/internal/flows/landingflow"
	"github.com/alexisbeaulieu97/navflow/internal/screens/landing"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := routing.Render[landingflow.Route, any, landing.State, any, screen](m.view, landingRenderer{view: m.view})
	top := frame.Top()

	var crumbs []string
	crumbs = append(crumbs, frame.Root.Title)
	for _, s := range frame.Stack {
		crumbs = append(crumbs, s.Title)
	}
	if frame.HasModal {
		crumbs = append(crumbs, "["+strings.Join(append(top.Trail, top.Title), " › ")+"]")
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.title.Render("navflow"),
			m.styles.crumb.Render(strings.Join(crumbs, " › ")),
		),
		m.styles.status.Render(fmt.Sprintf("phase %s · presenter depth %d", m.view.State().Navigation.PhaseString(), m.presenter.Depth())),
	}

	box := m.styles.screen
	if frame.HasModal {
		box = m.styles.sheet
	}
	sections = append(sections, box.Render(m.renderScreen(top)))

	for _, id := range m.leaving {
		if route, _, ok := m.view.Route(id); ok {
			sections = append(sections, m.styles.leaving.Render("closing "+landingflow.RouteName(route)))
		}
	}

	if m.status != "" {
		sections = append(sections, m.styles.err.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderScreen(s screen) string {
	lines := []string{m.styles.heading.Render(s.Title)}

	if s.Text != "" {
		lines = append(lines, m.styles.text.Render(fmt.Sprintf("%q", s.Text)))
	}

	cursor := m.cursor
	if s.ID != m.topID {
		cursor = 0
	}
	for i, name := range s.Actions.Names() {
		if i == cursor {
			lines = append(lines, m.styles.selected.Render(name))
			continue
		}
		lines = append(lines, m.styles.item.Render(name))
	}

	lines = append(lines, "", m.input.View())
	return strings.Join(lines, "\n")
}
