package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/migrations"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("stargate-migrate", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	migrationsDir := flagSet.String("dir", "", "directory containing migration files (defaults to the embedded set for the configured driver)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	action := "up"
	if flagSet.NArg() > 0 {
		action = flagSet.Arg(0)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := runMigration(context.Background(), cfg.Database, action, *migrationsDir, logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	logger.Info("migration completed", zap.String("action", action), zap.String("driver", cfg.Database.Driver))
	return nil
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func runMigration(ctx context.Context, cfg config.DatabaseConfig, action, dir string, logger *zap.Logger) (err error) {
	db, err := migrations.Open(ctx, cfg)
	if err != nil {
		return err
	}

	m, err := migrations.New(db, cfg.Driver, dir, logger)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Info("no migration applied")
				return nil
			}
			return err
		}
		logger.Info("current schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
