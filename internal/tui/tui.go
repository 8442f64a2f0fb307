// Package tui is the terminal front end of the mess manager. Every screen
// declares what it requires from the session; the root model consults the
// route guard on each navigation and renders a neutral loading view while
// the session is still resolving.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/service"
)

// ErrUserQuit reports that the user closed the program deliberately.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run drives the whole session: it starts on the home screen, which the
// guard holds until bootstrap resolves, and exits when the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(ctx, t.services)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*rootModel)
	if ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
