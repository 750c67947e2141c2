package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/navflow/internal/flows/landingflow"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case transitionDoneMsg:
		m.release(msg.IDs)
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top := m.top()
	names := top.Actions.Names()
	m.syncCursor(top, names)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(names)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		m.input.SetValue(top.Text)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Select):
		if len(names) == 0 {
			return m, nil
		}
		m.send(top, names[m.cursor], m.input.Value())

	case key.Matches(msg, m.keys.Back):
		m.back()
	}

	cmd := m.afterNavigation()
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		top := m.top()
		m.send(top, "set_text", m.input.Value())
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) send(top screen, name, text string) {
	action, err := top.Actions.Parse(top.Title, name, text)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.log.Debug("tui action", "screen", top.Title, "action", name)
	top.Send(action)
}

// back mirrors a platform back gesture: a presented sheet is swiped away,
// otherwise the terminal pops its own top screen and tells the flow.
func (m *Model) back() {
	if m.view.Presenting() {
		m.view.Navigate(routing.Dismiss[landingflow.Route]())
		return
	}
	if !m.presenter.back() {
		return
	}
	if path, ok := m.sync.DidShow(m.presenter); ok {
		m.store.UpdateExternalPath(path)
	}
}

// afterNavigation collects screens the presenter dropped and schedules their
// release once the transition has run.
func (m *Model) afterNavigation() tea.Cmd {
	m.releaseDismissed()

	popped := m.presenter.drainPopped()
	if len(popped) == 0 {
		return nil
	}
	if m.transition <= 0 {
		m.release(popped)
		return nil
	}
	m.leaving = append(m.leaving, popped...)
	return tea.Tick(m.transition, func(time.Time) tea.Msg {
		return transitionDoneMsg{IDs: popped}
	})
}

func (m *Model) release(ids []routing.ID) {
	for _, id := range ids {
		m.view.Release(id)
	}
	m.leaving = slices.DeleteFunc(slices.Clone(m.leaving), func(id routing.ID) bool {
		return slices.Contains(ids, id)
	})
}

// releaseDismissed forgets the retained child of a modal that is gone.
func (m *Model) releaseDismissed() {
	var current routing.ID
	if modal, ok := m.store.Modal(); ok {
		current = modal.RouteID()
	}
	if m.modalID != current && m.modalID != (routing.ID{}) {
		m.view.Release(m.modalID)
	}
	m.modalID = current
}

// syncCursor resets the cursor when a different screen comes to the front.
func (m *Model) syncCursor(top screen, names []string) {
	if top.ID != m.topID {
		m.topID = top.ID
		m.cursor = 0
		m.input.SetValue("")
	}
	m.cursor = min(m.cursor, max(len(names)-1, 0))
}
