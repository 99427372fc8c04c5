package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// database/sql に "sqlite" ドライバを登録します。
	_ "modernc.org/sqlite"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
)

// Open は SQLite データベースを開き疎通確認を行います。
// 書き込みの直列化は SQLite に任せるため、接続は一本に制限します。
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite: database path is required")
	}

	db, err := sql.Open("sqlite", cfg.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	return db, nil
}
