package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-member-auth/internal/adapter"
	"github.com/MKhiriev/go-member-auth/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	if server == nil {
		return nil, errors.New("tui needs a server adapter")
	}
	return &TUI{server: server, logger: logger}, nil
}

// Run shows the login form, then the home page, until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.server),
		pageHome:  NewHomeModel(ctx, t.server, clipboard.WriteAll),
	}, pageLogin)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
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
