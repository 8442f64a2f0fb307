package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/models"
)

// homeScreen is the section menu shown after sign-in. The member
// administration entry only appears for admin roles; the guard still checks
// the target on selection, so hiding it is cosmetic.
type homeScreen struct {
	ctx      context.Context
	services *service.ClientServices

	idx    int
	notice string
}

type homeSection struct {
	label  string
	target screenID
	admin  bool
}

var homeSections = []homeSection{
	{label: "Meals", target: screenMeals},
	{label: "Bazar", target: screenBazar},
	{label: "Dashboard", target: screenDashboard},
	{label: "Members", target: screenUsers, admin: true},
}

func newHomeScreen(ctx context.Context, services *service.ClientServices) *homeScreen {
	return &homeScreen{ctx: ctx, services: services}
}

func (m *homeScreen) requirement() session.Requirement { return session.Authenticated() }

func (m *homeScreen) setNotice(notice string) { m.notice = notice }

func (m *homeScreen) Init() tea.Cmd {
	if m.idx >= len(m.visibleSections()) {
		m.idx = 0
	}
	return nil
}

func (m *homeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	sections := m.visibleSections()

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(sections)-1 {
			m.idx++
		}
	case "enter":
		m.notice = ""
		return m, navigateTo(sections[m.idx].target)
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *homeScreen) View() string {
	identity := m.services.Session.Current().Identity

	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString(identity.Name)
	b.WriteString(" <")
	b.WriteString(identity.Email)
	b.WriteString(">  role: ")
	b.WriteString(string(identity.Role))
	b.WriteString("\n\n")

	for i, section := range m.visibleSections() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(section.label)
		b.WriteString("\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: move │ l: sign out")
}

func (m *homeScreen) visibleSections() []homeSection {
	role := m.services.Session.Current().Identity.Role

	sections := make([]homeSection, 0, len(homeSections))
	for _, section := range homeSections {
		if section.admin && !role.Satisfies(models.RoleAdmin) {
			continue
		}
		sections = append(sections, section)
	}
	return sections
}

func (m *homeScreen) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		auth.Logout(ctx)
		return navigateMsg{target: screenMenu, notice: "Signed out"}
	}
}
