//go:build integration

// Package dbtest runs the statement builders against live databases.
// Each backend is optional: a target whose connection cannot be
// established is skipped, so the suite degrades to whatever engines the
// environment provides.
package dbtest

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/sqlforge/sqlforge/resolve"
	"github.com/sqlforge/sqlforge/statement"
)

// Target couples a live connection with the matching resolver and
// placeholder scheme.
type Target struct {
	Name        string
	DB          *sql.DB
	Resolver    statement.Resolver
	Placeholder func(index int) string
}

func questionMark(int) string { return "?" }

func dollar(index int) string { return fmt.Sprintf("$%d", index) }

// SetupTargets opens connections to all reachable backends.
// Postgres and MySQL are configured through SQLFORGE_POSTGRES_DSN and
// SQLFORGE_MYSQL_DSN; SQLite always runs in-memory.
func SetupTargets(t *testing.T) []Target {
	t.Helper()

	var targets []Target

	if db := open(t, "pgx", os.Getenv("SQLFORGE_POSTGRES_DSN")); db != nil {
		targets = append(targets, Target{
			Name:        "postgres",
			DB:          db,
			Resolver:    resolve.Postgres,
			Placeholder: dollar,
		})
	}

	if db := open(t, "mysql", os.Getenv("SQLFORGE_MYSQL_DSN")); db != nil {
		targets = append(targets, Target{
			Name:        "mysql",
			DB:          db,
			Resolver:    resolve.MySQL,
			Placeholder: questionMark,
		})
	}

	if db := open(t, "sqlite", ":memory:"); db != nil {
		targets = append(targets, Target{
			Name:        "sqlite",
			DB:          db,
			Resolver:    resolve.SQLite,
			Placeholder: questionMark,
		})
	}

	if len(targets) == 0 {
		t.Skip("no databases available for integration testing")
	}
	return targets
}

// open connects to a backend, returning nil if the DSN is unset or the
// database is unreachable.
func open(t *testing.T, driver, dsn string) *sql.DB {
	t.Helper()

	if dsn == "" {
		t.Logf("%s unavailable: no DSN configured", driver)
		return nil
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		t.Logf("%s unavailable: %v", driver, err)
		return nil
	}
	db.SetConnMaxLifetime(time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		t.Logf("%s unavailable: %v", driver, err)
		return nil
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// CreateAccountsTable creates the shared test schema on a target,
// dropping any previous copy.
func CreateAccountsTable(t *testing.T, target Target) {
	t.Helper()

	if _, err := target.DB.Exec("DROP TABLE IF EXISTS sqlforge_accounts"); err != nil {
		t.Fatalf("%s drop table: %v", target.Name, err)
	}

	var schema string
	switch target.Name {
	case "postgres":
		schema = `
			CREATE TABLE sqlforge_accounts (
				id BIGSERIAL PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				balance BIGINT NOT NULL DEFAULT 0
			)
		`
	case "mysql":
		schema = `
			CREATE TABLE sqlforge_accounts (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				balance BIGINT NOT NULL DEFAULT 0
			)
		`
	case "sqlite":
		schema = `
			CREATE TABLE sqlforge_accounts (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				balance INTEGER NOT NULL DEFAULT 0
			)
		`
	default:
		t.Fatalf("unknown target %q", target.Name)
	}

	if _, err := target.DB.Exec(schema); err != nil {
		t.Fatalf("%s create table: %v", target.Name, err)
	}
}
