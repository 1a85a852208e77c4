package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: log}, nil
}

// AuthFlow runs the welcome/login/register screens and returns once a session
// is established or the user quits.
func (t *TUI) AuthFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.SessionService),
		"register": NewRegisterModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the authenticated browsing UI. It returns logout=true when
// the user signed out and the auth flow should run again.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
