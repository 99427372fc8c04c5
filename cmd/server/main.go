package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	pgrepo "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/repository/postgres"
	sqliterepo "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/migrations"
	pg "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/postgres"
	sqlitedb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/sqlite"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/logging"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/otel"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/server"
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

type storage struct {
	people   person.Repository
	finder   duty.PersonFinder
	timeline duty.TimelineRepository
	statuses duty.StatusRepository
	tx       interface {
		person.TransactionManager
		duty.TransactionManager
	}
	close func()
}

func run() error {
	flagSet := pflag.NewFlagSet("stargate-server", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, cfg.Database, logger); err != nil {
			return err
		}
	}

	store, err := openStorage(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.close()

	personSvc := person.NewService(store.people, nil, store.tx)
	dutySvc := duty.NewService(store.finder, store.timeline, store.statuses, store.tx,
		duty.WithLogger(logger.Named("duty")),
		duty.WithRetirementTitle(cfg.Duty.RetirementTitle),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, personSvc, dutySvc,
		server.WithLogger(logger.Named("grpc")),
		server.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)

	logger.Info("starting stargate",
		zap.String("listen_addr", cfg.Server.ListenAddr),
		zap.String("driver", cfg.Database.Driver),
		zap.String("retirement_title", cfg.Duty.RetirementTitle),
	)

	if err := grpcServer.Run(ctx); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	logger.Info("stargate stopped")
	return nil
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig) (*storage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlitedb.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		people := sqliterepo.NewPersonRepository(db)
		return &storage{
			people:   people,
			finder:   people,
			timeline: sqliterepo.NewTimelineRepository(db),
			statuses: sqliterepo.NewStatusRepository(db),
			tx:       sqlitedb.NewTransactionManager(db),
			close:    func() { _ = db.Close() },
		}, nil
	default:
		pool, err := pg.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initialize database pool: %w", err)
		}
		people := pgrepo.NewPersonRepository(pool)
		return &storage{
			people:   people,
			finder:   people,
			timeline: pgrepo.NewTimelineRepository(pool),
			statuses: pgrepo.NewStatusRepository(pool),
			tx:       pg.NewTransactionManager(pool),
			close:    pool.Close,
		}, nil
	}
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
