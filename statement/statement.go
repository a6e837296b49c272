// Package statement builds SQL92 DML statements incrementally.
//
// Each builder accumulates a target table, column assignments, and an
// optional WHERE predicate through chainable mutators, then renders the
// final statement text with SQL. Builders hold no database connection;
// the rendered text is handed to an execution layer such as Runner.
//
// Table and column names pass through a Resolver, which owns quoting and
// rejection of malformed identifiers. Value and predicate expressions are
// opaque strings produced by the caller (literals, placeholders, or
// fragments from an expression layer) and are emitted verbatim.
package statement

// Resolver resolves a raw table or column name into a quoted,
// dialect-safe identifier. Implementations reject malformed names;
// builders latch the first resolution failure and surface it from SQL.
type Resolver interface {
	ResolveIdentifier(name string) (string, error)
}

// SetClause is one resolved column assignment in a SET or VALUES list.
type SetClause struct {
	Column string
	Value  string
}

// assignments is an ordered column-to-expression mapping. Columns keep
// the position of their first assignment; reassigning overwrites the
// value in place.
type assignments struct {
	clauses []SetClause
	index   map[string]int
}

func (a *assignments) set(column, value string) {
	if i, ok := a.index[column]; ok {
		a.clauses[i].Value = value
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	a.index[column] = len(a.clauses)
	a.clauses = append(a.clauses, SetClause{Column: column, Value: value})
}

func (a *assignments) empty() bool {
	return len(a.clauses) == 0
}
