package statement

import (
	"fmt"
	"strings"
)

// InsertBuilder assembles a single SQL INSERT statement. Columns follow
// the same ordered-unique semantics as the UPDATE builder's SET list:
// first assignment fixes the position, reassignment overwrites the
// value in place.
type InsertBuilder struct {
	resolver Resolver
	table    *string
	values   assignments
	err      error
}

// Insert returns an empty INSERT builder using r for identifier
// resolution.
func Insert(r Resolver) *InsertBuilder {
	return &InsertBuilder{resolver: r}
}

// Table resolves name and stores it as the target table, replacing any
// prior value.
func (b *InsertBuilder) Table(name string) *InsertBuilder {
	resolved, err := b.resolver.ResolveIdentifier(name)
	if err != nil {
		b.fail(fmt.Errorf("resolve table %q: %w", name, err))
		return b
	}
	b.table = &resolved
	return b
}

// Set resolves column and pairs it with expr in the column and VALUES
// lists. The expression string is emitted verbatim.
func (b *InsertBuilder) Set(column, expr string) *InsertBuilder {
	resolved, err := b.resolver.ResolveIdentifier(column)
	if err != nil {
		b.fail(fmt.Errorf("resolve column %q: %w", column, err))
		return b
	}
	b.values.set(resolved, expr)
	return b
}

// SQL renders the accumulated state as
//
//	INSERT INTO <table> (<col>, ...) VALUES (<expr>, ...)
//
// It returns ErrMissingTable if no table was set, then ErrNoAssignments
// if no column was assigned.
func (b *InsertBuilder) SQL() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == nil {
		return "", ErrMissingTable
	}
	if b.values.empty() {
		return "", ErrNoAssignments
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(*b.table)
	sb.WriteString(" (")
	for i, set := range b.values.clauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(set.Column)
	}
	sb.WriteString(") VALUES (")
	for i, set := range b.values.clauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(set.Value)
	}
	sb.WriteString(")")
	return sb.String(), nil
}

func (b *InsertBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
