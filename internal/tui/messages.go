package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/models"
)

// screenID names a registered screen.
type screenID string

const (
	screenMenu      screenID = "menu"
	screenLogin     screenID = "login"
	screenRegister  screenID = "register"
	screenHome      screenID = "home"
	screenMeals     screenID = "meals"
	screenBazar     screenID = "bazar"
	screenDashboard screenID = "dashboard"
	screenUsers     screenID = "users"
)

// navigateMsg asks the root model to switch screens. The guard decides
// whether the switch actually happens.
type navigateMsg struct {
	target screenID
	notice string
}

// bootstrapDoneMsg carries the resolved initial session state.
type bootstrapDoneMsg struct {
	snapshot session.Snapshot
}

// sessionExpiredMsg is emitted by any screen whose service call came back
// with an invalid-token error. The root model logs out and redirects.
type sessionExpiredMsg struct{}

type loginDoneMsg struct {
	user models.User
	err  error
}

type registerDoneMsg struct {
	user models.User
	err  error
}

type mealsLoadedMsg struct {
	meals []models.Meal
	err   error
}

type mealSavedMsg struct {
	meal   models.Meal
	queued bool
	err    error
}

type bazarLoadedMsg struct {
	entries []models.BazarEntry
	err     error
}

type bazarSavedMsg struct {
	entry  models.BazarEntry
	queued bool
	err    error
}

type statusChangedMsg struct {
	err error
}

type statsLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type userUpdatedMsg struct {
	err error
}

// expireSession converts an invalid-token error into the message the root
// model reacts to. Returns nil for every other error.
func expireSession(err error) tea.Cmd {
	if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return nil
	}
	return func() tea.Msg { return sessionExpiredMsg{} }
}
