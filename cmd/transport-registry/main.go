package main

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/citytransit/transport-registry/internal/cli"
	"github.com/citytransit/transport-registry/internal/config"
	"github.com/citytransit/transport-registry/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	lggrCfg := logger.Config{Level: level}
	lggr, err := lggrCfg.New()
	if err != nil {
		return err
	}
	defer func() { _ = lggr.Sync() }()

	return cli.NewRootCmd(lggr).Execute()
}
