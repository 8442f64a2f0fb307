package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/models"
)

// usersScreen is the member administration list. Reaching it requires an
// admin session; promotions past admin are rejected by the server unless
// the caller is a super admin.
type usersScreen struct {
	ctx      context.Context
	services *service.ClientServices

	users   []models.User
	idx     int
	loading bool
	spinner spinner.Model

	notice string
	errMsg string
}

func newUsersScreen(ctx context.Context, services *service.ClientServices) *usersScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &usersScreen{ctx: ctx, services: services, spinner: s}
}

func (u *usersScreen) requirement() session.Requirement {
	return session.Roles(models.RoleAdmin)
}

func (u *usersScreen) setNotice(notice string) { u.notice = notice }

func (u *usersScreen) Init() tea.Cmd {
	u.loading = true
	u.errMsg = ""
	return tea.Batch(u.spinner.Tick, u.cmdLoad())
}

func (u *usersScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		u.loading = false
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return u, cmd
			}
			u.errMsg = msg.err.Error()
			return u, nil
		}
		u.errMsg = ""
		u.users = msg.users
		if u.idx >= len(u.users) {
			u.idx = 0
		}
		return u, nil

	case userUpdatedMsg:
		if msg.err != nil {
			if cmd := expireSession(msg.err); cmd != nil {
				return u, cmd
			}
			u.errMsg = msg.err.Error()
			return u, nil
		}
		u.errMsg = ""
		return u, u.cmdLoad()

	case spinner.TickMsg:
		if !u.loading {
			return u, nil
		}
		var cmd tea.Cmd
		u.spinner, cmd = u.spinner.Update(msg)
		return u, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return u, navigateTo(screenHome)
		case "up", "k":
			if u.idx > 0 {
				u.idx--
			}
		case "down", "j":
			if u.idx < len(u.users)-1 {
				u.idx++
			}
		case "g":
			u.loading = true
			return u, tea.Batch(u.spinner.Tick, u.cmdLoad())
		case "p":
			return u, u.cmdSetRole(promoted)
		case "d":
			return u, u.cmdSetRole(demoted)
		case "t":
			return u, u.cmdToggleStatus()
		}
	}

	return u, nil
}

func (u *usersScreen) View() string {
	var b strings.Builder
	if u.notice != "" {
		b.WriteString(u.notice)
		b.WriteString("\n\n")
	}

	switch {
	case u.loading:
		b.WriteString(u.spinner.View())
		b.WriteString(" loading...")
	case len(u.users) == 0:
		b.WriteString("No members found")
	default:
		b.WriteString(fmt.Sprintf("  %-20s %-28s %-12s %s\n", "name", "email", "role", "status"))
		for i, user := range u.users {
			cursor := "  "
			if i == u.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-20s %-28s %-12s %s\n", cursor, fitText(user.Name, 20), fitText(user.Email, 28), user.Role, user.Status))
		}
	}
	b.WriteString(renderError(u.errMsg))

	return renderPage("MEMBERS", strings.TrimRight(b.String(), "\n"),
		"p: promote │ d: demote │ t: enable/disable │ g: refresh │ esc: back")
}

// promoted and demoted map a member's current role to the next one in
// either direction. Promotions past admin require a super admin; the
// server rejects the rest with a forbidden error surfaced as-is.
func promoted(role models.Role) (models.Role, bool) {
	switch role {
	case models.RoleMember:
		return models.RoleAdmin, true
	case models.RoleAdmin:
		return models.RoleSuperAdmin, true
	}
	return role, false
}

func demoted(role models.Role) (models.Role, bool) {
	switch role {
	case models.RoleSuperAdmin:
		return models.RoleAdmin, true
	case models.RoleAdmin:
		return models.RoleMember, true
	}
	return role, false
}

func (u *usersScreen) cmdSetRole(step func(models.Role) (models.Role, bool)) tea.Cmd {
	if u.idx >= len(u.users) {
		return nil
	}
	target := u.users[u.idx]
	role, ok := step(target.Role)
	if !ok {
		return nil
	}

	ctx := u.ctx
	admin := u.services.UserAdminService

	return func() tea.Msg {
		return userUpdatedMsg{err: admin.SetRole(ctx, target.ID, role)}
	}
}

func (u *usersScreen) cmdToggleStatus() tea.Cmd {
	if u.idx >= len(u.users) {
		return nil
	}
	target := u.users[u.idx]
	status := models.UserStatusInactive
	if target.Status == models.UserStatusInactive {
		status = models.UserStatusActive
	}

	ctx := u.ctx
	admin := u.services.UserAdminService

	return func() tea.Msg {
		return userUpdatedMsg{err: admin.SetStatus(ctx, target.ID, status)}
	}
}

func (u *usersScreen) cmdLoad() tea.Cmd {
	ctx := u.ctx
	admin := u.services.UserAdminService

	return func() tea.Msg {
		users, err := admin.List(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}
