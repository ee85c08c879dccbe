package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/adapter/cli/insights"
	"github.com/felixgeelhaar/paretofocus/adapter/cli/task"
	"github.com/felixgeelhaar/paretofocus/internal/app"
	"github.com/felixgeelhaar/paretofocus/pkg/config"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		observability.LoggerFromEnv().Error("failed to load configuration", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	logCfg.Level = observability.LogLevel(strings.ToLower(cfg.LogLevel))
	if cfg.LogFormat != "" {
		logCfg.Format = observability.LogFormat(cfg.LogFormat)
	}
	logCfg.ServiceVersion = cli.Version
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(cli.NewApp(container))

	// Register commands
	cli.AddCommand(task.Cmd)
	cli.AddCommand(insights.Commands()...)

	// Execute CLI
	if err := cli.ExecuteContext(ctx); err != nil {
		container.Close()
		os.Exit(1)
	}
}
