package statement

import "errors"

// Error kinds reported by the builders. Callers branch with errors.Is.
var (
	// ErrEmptyPredicate is returned by Where when the flattened
	// argument sequence contains no expressions.
	ErrEmptyPredicate = errors.New("predicate requires at least one expression")

	// ErrMissingTable is returned by SQL when no target table was set.
	ErrMissingTable = errors.New("statement has no target table")

	// ErrNoAssignments is returned by SQL when no column assignment
	// was made.
	ErrNoAssignments = errors.New("statement requires at least one column assignment")
)
