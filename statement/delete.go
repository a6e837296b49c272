package statement

import (
	"fmt"
	"strings"
)

// DeleteBuilder assembles a single SQL DELETE statement. It shares the
// UPDATE builder's predicate semantics; there is no assignment list.
type DeleteBuilder struct {
	resolver Resolver
	table    *string
	where    predicate
	err      error
}

// Delete returns an empty DELETE builder using r for identifier
// resolution.
func Delete(r Resolver) *DeleteBuilder {
	return &DeleteBuilder{resolver: r}
}

// Table resolves name and stores it as the target table, replacing any
// prior value.
func (b *DeleteBuilder) Table(name string) *DeleteBuilder {
	resolved, err := b.resolver.ResolveIdentifier(name)
	if err != nil {
		b.fail(fmt.Errorf("resolve table %q: %w", name, err))
		return b
	}
	b.table = &resolved
	return b
}

// Where conjoins the given expressions onto the WHERE predicate, with
// the same flattening and ErrEmptyPredicate behavior as
// UpdateBuilder.Where.
func (b *DeleteBuilder) Where(exprs ...Expr) error {
	return b.where.add(exprs)
}

// SQL renders the accumulated state as
//
//	DELETE FROM <table> [WHERE <predicate>]
//
// It returns ErrMissingTable if no table was set.
func (b *DeleteBuilder) SQL() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == nil {
		return "", ErrMissingTable
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(*b.table)
	b.where.writeTo(&sb)
	return sb.String(), nil
}

func (b *DeleteBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
