package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/env-setup/internal/application"
	"github.com/eugenenazirov/env-setup/internal/config"
	"github.com/eugenenazirov/env-setup/internal/logging"
)

// Set by the linker during release builds.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	run(os.Args[1:], os.Stdout, os.Stderr)
}

// run performs one invocation. It has no failure path: bad argv, bad
// configuration and write errors are reported at debug level and the
// process still exits 0.
func run(args []string, stdout, stderr io.Writer) {
	kingpinApp := kingpin.New("env-setup", "Derives DEMO_GREETING from $UBER_GLOBAL_COMMAND_ARGS and prints it as a KEY=\"VALUE\" assignment")
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	// Help and version must not end the process before the assignment is written.
	kingpinApp.Terminate(nil)
	kingpinApp.Version(fmt.Sprintf("env-setup version %s\ncommit: %s\ndate: %s", version, commit, date))
	globalArgs := kingpinApp.Flag("global-args", "Argument string to use instead of $UBER_GLOBAL_COMMAND_ARGS").String()
	logLevel := kingpinApp.Flag("log-level", "Diagnostic log level (debug, info, warn, error)").String()

	_, parseErr := kingpinApp.Parse(args)

	overrides := &config.CLIOverrides{}
	if parseErr == nil {
		overrides.GlobalArgs = globalArgs
		overrides.LogLevel = logLevel
	}

	cfg, cfgErr := loadConfig(overrides)

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		logger, _ = logging.New(config.Defaults().LogLevel, stderr)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if parseErr != nil {
		logger.Debug("ignoring command line", zap.Strings("args", args), zap.Error(parseErr))
	}
	if cfgErr != nil {
		logger.Debug("configuration degraded", zap.Error(cfgErr))
	}

	if err := application.New(cfg, logger, stdout).Run(); err != nil {
		logger.Debug("run incomplete", zap.Error(err))
	}
}

// loadConfig retries without the log level override, the only one Load can
// reject, so a bad --log-level does not discard --global-args. Defaults are the
// last resort.
func loadConfig(overrides *config.CLIOverrides) (config.Config, error) {
	cfg, err := config.Load(overrides)
	if err == nil {
		return cfg, nil
	}
	retry := &config.CLIOverrides{}
	if overrides != nil {
		retry.GlobalArgs = overrides.GlobalArgs
	}
	if fallback, fallbackErr := config.Load(retry); fallbackErr == nil {
		return fallback, err
	}
	return config.Defaults(), err
}
