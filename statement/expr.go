package statement

import "strings"

// Expr is a fragment of a WHERE predicate: either a single raw
// expression string or an ordered group of nested expressions.
type Expr interface {
	appendLeaves(dst []string) []string
}

type rawExpr string

type groupExpr []Expr

// Raw wraps an expression string produced by the caller's expression
// layer, e.g. "id = $1" or "deleted_at IS NULL".
func Raw(expr string) Expr {
	return rawExpr(expr)
}

// Group nests expressions so a whole sequence can be passed as one
// argument. Groups may nest to arbitrary depth; flattening preserves
// depth-first, left-to-right order.
func Group(exprs ...Expr) Expr {
	return groupExpr(exprs)
}

func (e rawExpr) appendLeaves(dst []string) []string {
	return append(dst, string(e))
}

func (e groupExpr) appendLeaves(dst []string) []string {
	for _, child := range e {
		if child != nil {
			dst = child.appendLeaves(dst)
		}
	}
	return dst
}

// flatten expands exprs into the depth-first, left-to-right sequence of
// leaf expression strings. Empty groups contribute nothing.
func flatten(exprs []Expr) []string {
	var leaves []string
	for _, e := range exprs {
		if e != nil {
			leaves = e.appendLeaves(leaves)
		}
	}
	return leaves
}

// predicate accumulates an AND-joined conjunction across Where calls.
// The zero value is an absent predicate.
type predicate struct {
	text *string
}

// add flattens exprs and conjoins them onto the accumulator. It checks
// for an empty flattened sequence before touching any state, so a
// failed call leaves the accumulator usable.
func (p *predicate) add(exprs []Expr) error {
	leaves := flatten(exprs)
	if len(leaves) == 0 {
		return ErrEmptyPredicate
	}
	joined := strings.Join(leaves, " AND ")
	if p.text != nil {
		joined = *p.text + " AND " + joined
	}
	p.text = &joined
	return nil
}

func (p *predicate) writeTo(b *strings.Builder) {
	if p.text != nil {
		b.WriteString(" WHERE ")
		b.WriteString(*p.text)
	}
}
