// Package migrations はスキーマ定義を埋め込み、golang-migrate で適用します。
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Open はマイグレーション専用の *sql.DB を開きます。Migrate.Close で閉じられます。
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.OpenSQLDB(ctx, cfg)
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg)
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", cfg.Driver)
	}
}

// Source はドライバに対応する埋め込みマイグレーションを返します。
func Source(driver string) (source.Driver, error) {
	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", driver)
	}
	src, err := iofs.New(files, driver)
	if err != nil {
		return nil, fmt.Errorf("migrations: load embedded %s: %w", driver, err)
	}
	return src, nil
}

// New は db に対する Migrate を生成します。dir が空なら埋め込みの定義を使い、
// 指定されていればそのディレクトリのファイルを使います。
func New(db *sql.DB, driver, dir string, logger *zap.Logger) (*migrate.Migrate, error) {
	instance, err := databaseInstance(db, driver)
	if err != nil {
		return nil, err
	}

	var m *migrate.Migrate
	if strings.TrimSpace(dir) == "" {
		src, err := Source(driver)
		if err != nil {
			return nil, err
		}
		m, err = migrate.NewWithInstance("iofs", src, driver, instance)
		if err != nil {
			return nil, fmt.Errorf("migrations: create migrate instance: %w", err)
		}
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("migrations: resolve path for %s: %w", dir, err)
		}
		m, err = migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(absDir), driver, instance)
		if err != nil {
			return nil, fmt.Errorf("migrations: create migrate instance: %w", err)
		}
	}

	if logger != nil {
		m.Log = &zapLogger{logger: logger.Named("migrate")}
	}
	return m, nil
}

func databaseInstance(db *sql.DB, driver string) (database.Driver, error) {
	var (
		instance database.Driver
		err      error
	)
	switch driver {
	case config.DriverPostgres:
		instance, err = migratepg.WithInstance(db, &migratepg.Config{})
	case config.DriverSQLite:
		instance, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("migrations: open %s driver: %w", driver, err)
	}
	return instance, nil
}

// Up は未適用のマイグレーションをすべて適用し、開いた接続を閉じます。
func Up(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := Open(ctx, cfg)
	if err != nil {
		return err
	}

	m, err := New(db, cfg.Driver, "", logger)
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

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations: up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migrations: version: %w", err)
	}
	logger.Info("schema is up to date",
		zap.String("driver", cfg.Driver),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

type zapLogger struct {
	logger *zap.Logger
}

func (l *zapLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *zapLogger) Verbose() bool {
	return l.logger.Core().Enabled(zap.DebugLevel)
}
