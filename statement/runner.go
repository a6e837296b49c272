package statement

import (
	"context"
	"database/sql"
)

// Querier is the interface for executing statements.
// Both *sql.DB and *sql.Tx implement this interface.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time checks that *sql.DB and *sql.Tx implement Querier
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Statement is any builder that renders to SQL text.
type Statement interface {
	SQL() (string, error)
}

var (
	_ Statement = (*UpdateBuilder)(nil)
	_ Statement = (*DeleteBuilder)(nil)
	_ Statement = (*InsertBuilder)(nil)
)

// Runner executes rendered statements against a database connection.
// The builders themselves never touch a connection; Runner is the
// boundary where text meets the driver.
type Runner struct {
	db Querier
}

// NewRunner creates a runner over db.
func NewRunner(db Querier) *Runner {
	return &Runner{db: db}
}

// DB returns the runner's database connection.
func (r *Runner) DB() Querier {
	return r.db
}

// WithTx returns a new Runner using the given transaction.
func (r *Runner) WithTx(tx *sql.Tx) *Runner {
	return &Runner{db: tx}
}

// WithDB returns a new Runner using the given connection.
func (r *Runner) WithDB(db Querier) *Runner {
	return &Runner{db: db}
}

// Exec renders stmt and executes it with the given placeholder args.
// A render failure is returned before the driver is touched.
func (r *Runner) Exec(ctx context.Context, stmt Statement, args ...any) (sql.Result, error) {
	text, err := stmt.SQL()
	if err != nil {
		return nil, err
	}
	return r.db.ExecContext(ctx, text, args...)
}
