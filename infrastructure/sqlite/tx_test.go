package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func countTokens(t *testing.T, db *DB, name string) int {
	t.Helper()
	var count int
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM stored_tokens WHERE name = ?`, name).Scan(ctx, &count)
	})
	if err != nil {
		t.Fatalf("count tokens: %v", err)
	}
	return count
}

func TestWithWriteTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	boom := errors.New("boom")
	err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO stored_tokens (name, value) VALUES (?, ?)`, "rollback", "tok"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got: %v", err)
	}
	if n := countTokens(t, db, "rollback"); n != 0 {
		t.Fatalf("expected rollback to remove insert, count=%d", n)
	}
}

func TestWithWriteTxCommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)

	err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO stored_tokens (name, value) VALUES (?, ?)`, "commit", "tok")
		return err
	})
	if err != nil {
		t.Fatalf("write tx failed: %v", err)
	}
	if n := countTokens(t, db, "commit"); n != 1 {
		t.Fatalf("expected committed insert, count=%d", n)
	}
}

func TestWithReadTxRejectsWrite(t *testing.T) {
	db := openTestDB(t)

	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO stored_tokens (name, value) VALUES (?, ?)`, "read-only", "tok")
		return err
	})
	if err == nil && countTokens(t, db, "read-only") > 0 {
		t.Fatalf("expected write in read tx to be blocked; write succeeded")
	}
}
