package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/env-setup/internal/config"
	"github.com/eugenenazirov/env-setup/internal/greeting"
)

// App holds the dependencies for one invocation.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
}

// New initializes the application from the provided configuration. Assignments
// are written to stdout; diagnostics go through logger.
func New(cfg config.Config, logger *zap.Logger, stdout io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		stdout: stdout,
	}
}

// Run resolves the greeting and emits the assignment line followed by the
// diagnostic line. Malformed arguments never fail the run; only a failed
// write to stdout is returned.
func (a *App) Run() error {
	inv, err := greeting.Resolve(a.cfg.GlobalCommandArgs)
	if err != nil {
		a.logger.Debug("falling back to default greeting", zap.Error(err))
	}
	a.logger.Debug("resolved invocation", zap.Bool("name_set", inv.HasName()))

	if _, err := fmt.Fprintln(a.stdout, inv.Assignment()); err != nil {
		return fmt.Errorf("write assignment: %w", err)
	}

	a.logger.Info(greeting.DiagnosticMessage)
	return nil
}
