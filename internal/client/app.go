package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/traduzo/traduzo/internal/config"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/service"
	"github.com/traduzo/traduzo/internal/tui"
)

// App ties the session lifecycle to the two TUI programs: the anonymous login
// flow and the authenticated main loop. Logging out from the main loop runs
// the whole cycle again.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		tui:      ui,
		workers:  workers,
		logger:   log.Component("app"),
	}, nil
}

// Run implements Client. It first tries to restore the persisted session; if
// nothing restorable is found the login flow takes over. Once a user is
// signed in the background history refresh is started and the main loop runs
// until quit or logout.
func (a *App) Run() error {
	ctx := context.Background()

	session := a.services.SessionService
	if err := session.Hydrate(ctx); err != nil {
		// A dead token is not fatal, the user simply signs in again.
		a.logger.Warn().Err(err).Msg("session restore failed")
	}

	if session.Phase() != service.PhaseAuthenticated {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
	}

	a.services.HistoryJob.Start(ctx, a.workers.HistoryRefreshInterval)
	defer a.services.HistoryJob.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.services.HistoryJob.Stop()
		session.Logout()
		return a.Run()
	}

	return nil
}
