package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/table-reservation/internal/bootstrap"
	"github.com/m04kA/table-reservation/internal/config"
	"github.com/m04kA/table-reservation/pkg/logger"
)

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "reservectl",
		Short:         "Inspect restaurant availability against the configured calendar backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.toml", "path to service config")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newCheckConfigCmd(opts))
	root.AddCommand(newSlotsCmd(opts))
	root.AddCommand(newMonthCmd(opts))

	return root
}

// openEngine загружает конфигурацию и собирает движок; логи идут в stderr
func openEngine(ctx context.Context, opts *options) (*config.Config, *bootstrap.Engine, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewWithWriter(os.Stderr, opts.logLevel)
	if err != nil {
		return nil, nil, err
	}

	startCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Calendar.Timeout)*time.Second)
	defer cancel()

	engine, err := bootstrap.New(startCtx, cfg, log, nil)
	if err != nil {
		return nil, nil, err
	}
	return cfg, engine, nil
}
