package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, workers: workers, logger: log}, nil
}

// Run drives the session lifecycle: restore the persisted session, fall back
// to the interactive auth flow, then browse with the refresh job running.
// Logging out loops back to the auth flow.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.SessionService.CheckSession(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("could not restore previous session")
	}

	for {
		if a.services.SessionService.State() != service.StateAuthenticated {
			if err := a.ui.AuthFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		a.services.SessionJob.Start(ctx, a.workers.SessionRefreshInterval)
		logout, err := a.ui.MainLoop(ctx)
		a.services.SessionJob.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
