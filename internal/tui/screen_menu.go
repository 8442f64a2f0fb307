package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/session"
)

// menuScreen is the anonymous welcome screen.
type menuScreen struct {
	items  []string
	idx    int
	notice string
}

func newMenuScreen() *menuScreen {
	return &menuScreen{items: []string{"Sign in", "Create an account"}}
}

func (m *menuScreen) requirement() session.Requirement { return session.Public() }

func (m *menuScreen) setNotice(notice string) { m.notice = notice }

func (m *menuScreen) Init() tea.Cmd { return nil }

func (m *menuScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.notice = ""
		if m.idx == 0 {
			return m, navigateTo(screenLogin)
		}
		return m, navigateTo(screenRegister)
	}

	return m, nil
}

func (m *menuScreen) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("MESS MANAGER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}

// navigateTo wraps a navigation request in a command.
func navigateTo(target screenID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{target: target} }
}
