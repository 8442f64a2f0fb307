package client

import (
	"context"
	"errors"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/tui"
	"github.com/bachelormess/mess-manager/internal/workers"
)

// App ties the client services, background workers and terminal UI into a
// single process lifecycle.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and a ui")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services.FlushJob),
		logger:   logger,
	}, nil
}

// Run blocks in the terminal UI until the user exits. The flush job keeps
// draining the offline queue in the background the whole time; session
// bootstrap happens inside the UI so that the first screen can show a
// loading state instead of a blank terminal.
func (a *App) Run() error {
	a.workers.Run()
	defer a.services.FlushJob.Stop()

	err := a.ui.Run(context.Background())
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client closed by user")
		return nil
	}
	return err
}
