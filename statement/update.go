package statement

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles a single SQL UPDATE statement. Obtain one with
// Update, chain Table and Set, optionally add Where predicates, then
// render with SQL.
//
// A builder is confined to one construction sequence; it is not safe for
// concurrent mutation.
type UpdateBuilder struct {
	resolver Resolver
	table    *string
	sets     assignments
	where    predicate
	err      error
}

// Update returns an empty UPDATE builder using r for identifier
// resolution.
func Update(r Resolver) *UpdateBuilder {
	return &UpdateBuilder{resolver: r}
}

// Table resolves name and stores it as the target table, replacing any
// prior value.
func (b *UpdateBuilder) Table(name string) *UpdateBuilder {
	resolved, err := b.resolver.ResolveIdentifier(name)
	if err != nil {
		b.fail(fmt.Errorf("resolve table %q: %w", name, err))
		return b
	}
	b.table = &resolved
	return b
}

// Set resolves column and assigns expr to it. A column assigned for the
// first time is appended after all prior assignments; reassigning an
// existing column overwrites its expression without moving its position.
// The expression string is emitted verbatim.
func (b *UpdateBuilder) Set(column, expr string) *UpdateBuilder {
	resolved, err := b.resolver.ResolveIdentifier(column)
	if err != nil {
		b.fail(fmt.Errorf("resolve column %q: %w", column, err))
		return b
	}
	b.sets.set(resolved, expr)
	return b
}

// Where conjoins the given expressions onto the WHERE predicate. Nested
// groups are flattened depth-first, left-to-right; the resulting leaves
// are joined with " AND ", as are successive Where calls. Returns
// ErrEmptyPredicate, without mutating the accumulator, if the flattened
// sequence is empty.
func (b *UpdateBuilder) Where(exprs ...Expr) error {
	return b.where.add(exprs)
}

// SQL renders the accumulated state as
//
//	UPDATE <table> SET <col> = <expr>, ... [WHERE <predicate>]
//
// It returns ErrMissingTable if no table was set, then ErrNoAssignments
// if nothing was assigned. Rendering does not mutate the builder and
// returns identical text on repeated calls.
func (b *UpdateBuilder) SQL() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == nil {
		return "", ErrMissingTable
	}
	if b.sets.empty() {
		return "", ErrNoAssignments
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(*b.table)
	sb.WriteString(" SET ")
	for i, set := range b.sets.clauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(set.Column)
		sb.WriteString(" = ")
		sb.WriteString(set.Value)
	}
	b.where.writeTo(&sb)
	return sb.String(), nil
}

// fail latches the first resolver failure; SQL reports it.
func (b *UpdateBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
