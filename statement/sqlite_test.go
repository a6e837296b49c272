package statement_test

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/sqlforge/sqlforge/resolve"
	"github.com/sqlforge/sqlforge/statement"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 1
		)
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func seedUsers(t *testing.T, runner *statement.Runner) {
	t.Helper()
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		ins := statement.Insert(resolve.SQLite).Table("users").
			Set("name", "?").
			Set("active", "1")
		if _, err := runner.Exec(ctx, ins, name); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
}

func TestSQLite_UpdateRoundTrip(t *testing.T) {
	db := openSQLite(t)
	runner := statement.NewRunner(db)
	seedUsers(t, runner)
	ctx := context.Background()

	b := statement.Update(resolve.SQLite).Table("users").Set("name", "?")
	if err := b.Where(statement.Raw(`"id" = ?`)); err != nil {
		t.Fatalf("Where: %v", err)
	}
	res, err := runner.Exec(ctx, b, "carol", 1)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		t.Fatalf("RowsAffected: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 row affected, got %d", affected)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM users WHERE id = 1").Scan(&name); err != nil {
		t.Fatalf("query row 1: %v", err)
	}
	if name != "carol" {
		t.Errorf("row 1 name = %q, want %q", name, "carol")
	}

	// The other row stays untouched.
	if err := db.QueryRow("SELECT name FROM users WHERE id = 2").Scan(&name); err != nil {
		t.Fatalf("query row 2: %v", err)
	}
	if name != "bob" {
		t.Errorf("row 2 name = %q, want %q", name, "bob")
	}
}

func TestSQLite_DeleteRoundTrip(t *testing.T) {
	db := openSQLite(t)
	runner := statement.NewRunner(db)
	seedUsers(t, runner)
	ctx := context.Background()

	b := statement.Delete(resolve.SQLite).Table("users")
	if err := b.Where(statement.Raw(`"name" = ?`)); err != nil {
		t.Fatalf("Where: %v", err)
	}
	if _, err := runner.Exec(ctx, b, "alice"); err != nil {
		t.Fatalf("Exec: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row left, got %d", count)
	}
}

func TestSQLite_RunnerWithTx(t *testing.T) {
	db := openSQLite(t)
	runner := statement.NewRunner(db)
	seedUsers(t, runner)
	ctx := context.Background()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	b := statement.Update(resolve.SQLite).Table("users").Set("active", "0")
	if _, err := runner.WithTx(tx).Exec(ctx, b); err != nil {
		tx.Rollback()
		t.Fatalf("Exec in tx: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	// The rollback discards the update.
	var active int
	if err := db.QueryRow("SELECT active FROM users WHERE id = 1").Scan(&active); err != nil {
		t.Fatalf("query: %v", err)
	}
	if active != 1 {
		t.Errorf("active = %d after rollback, want 1", active)
	}
}
