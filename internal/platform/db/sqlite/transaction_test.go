package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
)

func openTestDB(t *testing.T) *TransactionManager {
	t.Helper()

	db, err := Open(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "stargate.db"),
	})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return NewTransactionManager(db)
}

func countItems(t *testing.T, tm *TransactionManager) int {
	t.Helper()

	var n int
	if err := tm.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("count items: %v", err)
	}
	return n
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), config.DatabaseConfig{Driver: config.DriverSQLite}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpen_EnablesForeignKeys(t *testing.T) {
	t.Parallel()

	tm := openTestDB(t)

	var enabled int
	if err := tm.db.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled); err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign keys enabled, got %d", enabled)
	}
}

func TestTransactionManager_ReadWriteCommit(t *testing.T) {
	t.Parallel()

	tm := openTestDB(t)

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatal("transaction not injected into context")
		}
		_, err := QueryerFromContext(ctx, tm.db).ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
		return err
	})
	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}
	if got := countItems(t, tm); got != 1 {
		t.Fatalf("expected 1 committed row, got %d", got)
	}
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	t.Parallel()

	tm := openTestDB(t)

	expectedErr := errors.New("usecase error")
	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, err := QueryerFromContext(ctx, tm.db).ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a"); err != nil {
			return err
		}
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if got := countItems(t, tm); got != 0 {
		t.Fatalf("expected rollback, got %d rows", got)
	}
}

func TestTransactionManager_ReadOnlyDiscardsWrites(t *testing.T) {
	t.Parallel()

	tm := openTestDB(t)

	err := tm.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		_, err := QueryerFromContext(ctx, tm.db).ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
		return err
	})
	if err != nil {
		t.Fatalf("WithinReadOnly returned error: %v", err)
	}
	if got := countItems(t, tm); got != 0 {
		t.Fatalf("read-only transaction must not commit, got %d rows", got)
	}
}

func TestTransactionManager_NestedReuse(t *testing.T) {
	t.Parallel()

	tm := openTestDB(t)

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		outer, _ := txFromContext(ctx)
		return tm.WithinReadOnly(ctx, func(inner context.Context) error {
			tx, ok := txFromContext(inner)
			if !ok || tx != outer {
				t.Fatal("nested call must reuse the outer transaction")
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("nested transaction returned error: %v", err)
	}
}
