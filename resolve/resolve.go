// Package resolve provides dialect-specific identifier resolvers for
// the statement builders. A resolver validates a raw table or column
// name and returns it quoted for the target database. Dotted references
// such as "users.id" are resolved part-wise, so each part is validated
// and quoted on its own.
package resolve

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sqlforge/sqlforge/statement"
)

// identifierRegex matches valid SQL identifiers.
// Identifiers must start with a letter or underscore, followed by letters, digits, or underscores.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateIdentifier checks that a name is a valid SQL identifier.
// Returns an error if the identifier is invalid.
// Valid identifiers match: ^[a-zA-Z_][a-zA-Z0-9_]*$
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("invalid identifier %q: must start with a letter or underscore and contain only letters, digits, and underscores", name)
	}
	return nil
}

// resolveParts splits a possibly dotted reference, validates each part,
// and quotes each part with quote.
func resolveParts(name string, quote func(string) string) (string, error) {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if err := ValidateIdentifier(part); err != nil {
			return "", err
		}
		parts[i] = quote(part)
	}
	return strings.Join(parts, "."), nil
}

// PostgresResolver resolves identifiers for PostgreSQL using double
// quotes.
type PostgresResolver struct{}

func (r *PostgresResolver) ResolveIdentifier(name string) (string, error) {
	return resolveParts(name, func(part string) string {
		return `"` + part + `"`
	})
}

// MySQLResolver resolves identifiers for MySQL using backticks.
type MySQLResolver struct{}

func (r *MySQLResolver) ResolveIdentifier(name string) (string, error) {
	return resolveParts(name, func(part string) string {
		return "`" + part + "`"
	})
}

// SQLiteResolver resolves identifiers for SQLite using double quotes.
type SQLiteResolver struct{}

func (r *SQLiteResolver) ResolveIdentifier(name string) (string, error) {
	return resolveParts(name, func(part string) string {
		return `"` + part + `"`
	})
}

// =============================================================================
// Resolver Singletons
// =============================================================================

var (
	// Postgres is the singleton PostgreSQL resolver.
	Postgres statement.Resolver = &PostgresResolver{}

	// MySQL is the singleton MySQL resolver.
	MySQL statement.Resolver = &MySQLResolver{}

	// SQLite is the singleton SQLite resolver.
	SQLite statement.Resolver = &SQLiteResolver{}
)
