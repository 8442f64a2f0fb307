package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/session"
)

// screen is one registered page. Its requirement is what the route guard
// checks before the root model opens it.
type screen interface {
	tea.Model
	requirement() session.Requirement
	setNotice(notice string)
}

// rootModel is the TUI router. It owns the screen registry, runs every
// navigation through the route guard, and turns an expired session into a
// logout plus redirect to the login screen.
type rootModel struct {
	ctx      context.Context
	services *service.ClientServices

	screens map[screenID]screen
	current screenID

	// pending is the navigation target held back while the session is
	// still uninitialized.
	pending screenID

	quitByUser bool
}

func newRootModel(ctx context.Context, services *service.ClientServices) *rootModel {
	screens := map[screenID]screen{
		screenMenu:      newMenuScreen(),
		screenLogin:     newLoginScreen(ctx, services.AuthService),
		screenRegister:  newRegisterScreen(ctx, services.AuthService),
		screenHome:      newHomeScreen(ctx, services),
		screenMeals:     newMealsScreen(ctx, services),
		screenBazar:     newBazarScreen(ctx, services),
		screenDashboard: newDashboardScreen(ctx, services),
		screenUsers:     newUsersScreen(ctx, services),
	}

	return &rootModel{
		ctx:      ctx,
		services: services,
		screens:  screens,
		current:  screenHome,
		pending:  screenHome,
	}
}

// Init resolves the session before anything else; the guard holds the first
// navigation until the bootstrap result lands.
func (r *rootModel) Init() tea.Cmd {
	ctx := r.ctx
	auth := r.services.AuthService
	return func() tea.Msg {
		return bootstrapDoneMsg{snapshot: auth.Bootstrap(ctx)}
	}
}

func (r *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

	case bootstrapDoneMsg:
		target := r.pending
		if target == "" {
			target = r.current
		}
		return r.navigate(target, "")

	case navigateMsg:
		return r.navigate(msg.target, msg.notice)

	case sessionExpiredMsg:
		r.services.AuthService.Logout(r.ctx)
		return r.open(screenLogin, "Session expired, please sign in again")

	case loginDoneMsg:
		if msg.err == nil {
			return r.navigate(screenHome, "Welcome, "+msg.user.Name)
		}

	case registerDoneMsg:
		if msg.err == nil {
			return r.navigate(screenLogin, "Account created, sign in to continue")
		}
	}

	active, ok := r.screens[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := active.Update(msg)
	if s, ok := updated.(screen); ok {
		r.screens[r.current] = s
	}
	return r, cmd
}

func (r *rootModel) View() string {
	if !r.resolved() {
		return renderPage("MESS MANAGER", "Loading...", "")
	}
	return r.screens[r.current].View()
}

// navigate runs the guard for the target screen and opens whatever the
// decision points at.
func (r *rootModel) navigate(target screenID, notice string) (tea.Model, tea.Cmd) {
	s, ok := r.screens[target]
	if !ok {
		return r, nil
	}

	switch session.Decide(r.services.Session.Current(), s.requirement()) {
	case session.Hold:
		r.pending = target
		return r, nil

	case session.RedirectToLogin:
		return r.open(screenLogin, notice)

	case session.RedirectToHome:
		return r.open(screenHome, "That section is not available to your role")
	}

	return r.open(target, notice)
}

// open switches to a screen the guard has already cleared.
func (r *rootModel) open(target screenID, notice string) (tea.Model, tea.Cmd) {
	r.current = target
	r.pending = ""

	s := r.screens[target]
	if notice != "" {
		s.setNotice(notice)
	}
	return r, s.Init()
}

func (r *rootModel) resolved() bool {
	return r.services.Session.Current().State != session.StateUninitialized
}
