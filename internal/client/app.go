package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-member-auth/internal/adapter"
	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/tui"
)

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	server adapter.ServerAdapter
	ui     runner
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	ui, err := tui.New(server, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{server: server, ui: ui, logger: logger}, nil
}

// Run implements [Client]. Quitting the UI with ctrl+c or stopping the
// process with a signal is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if version, err := a.server.Version(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version check failed")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Msg("client stopped by signal")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
