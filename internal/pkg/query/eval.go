package query

import (
	"strings"
)

// Row is what a filter is evaluated against.
// Lookup returns the text of a named column and whether the row has it.
type Row interface {
	Lookup(column string) (string, bool)
	Texts() []string
}

// Match reports whether row satisfies node. A nil node matches everything.
func Match(node Node, row Row) bool {
	switch n := node.(type) {
	case nil:
		return true
	case Binary:
		if n.Op == OpOr {
			return Match(n.Left, row) || Match(n.Right, row)
		}
		return Match(n.Left, row) && Match(n.Right, row)
	case Not:
		return !Match(n.Operand, row)
	case Term:
		return matchTerm(n, row)
	default:
		return false
	}
}

func matchTerm(t Term, row Row) bool {
	if t.Column == "" {
		needle := strings.ToLower(t.Value)
		for _, f := range row.Texts() {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}

	text, ok := row.Lookup(t.Column)
	switch t.Op {
	case OpNeq:
		return !ok || !strings.EqualFold(text, t.Value)
	case OpContains:
		return ok && strings.Contains(strings.ToLower(text), strings.ToLower(t.Value))
	default:
		return ok && strings.EqualFold(text, t.Value)
	}
}

// Columns returns every column name referenced by node, in order of appearance.
func Columns(node Node) []string {
	var out []string
	var walk func(Node)
	walk = func(n Node) {
		switch x := n.(type) {
		case Binary:
			walk(x.Left)
			walk(x.Right)
		case Not:
			walk(x.Operand)
		case Term:
			if x.Column != "" {
				out = append(out, x.Column)
			}
		}
	}
	walk(node)
	return out
}
