package engine

import (
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/pkg/query"
)

// RowFilter selects the records that take part in an analysis.
type RowFilter struct {
	expr    string
	node    query.Node
	columns Columns
}

// CompileFilter parses expr and checks that every referenced column name is known.
// An empty expression yields a filter that keeps every row.
func CompileFilter(expr string, cols Columns) (*RowFilter, error) {
	node, err := query.Parse(expr)
	if err != nil {
		return nil, &FilterError{Expr: expr, Err: err}
	}
	for _, name := range query.Columns(node) {
		if _, err := ResolveColumn(cols, name); err != nil {
			return nil, &FilterError{Expr: expr, Err: err}
		}
	}
	return &RowFilter{expr: expr, node: node, columns: cols}, nil
}

// Empty reports whether the filter keeps every row.
func (f *RowFilter) Empty() bool {
	return f == nil || f.node == nil
}

func (f *RowFilter) String() string {
	if f == nil {
		return ""
	}
	return f.expr
}

// Apply returns the matching records in their original order.
func (f *RowFilter) Apply(rows []model.LogRecord) []model.LogRecord {
	if f.Empty() {
		return rows
	}
	kept := make([]model.LogRecord, 0, len(rows))
	for _, r := range rows {
		if query.Match(f.node, filterRow{rec: r, columns: f.columns}) {
			kept = append(kept, r)
		}
	}
	return kept
}

// filterRow adapts a LogRecord to query.Row.
type filterRow struct {
	rec     model.LogRecord
	columns Columns
}

func (r filterRow) Lookup(column string) (string, bool) {
	idx, err := ResolveColumn(r.columns, column)
	if err != nil {
		return "", false
	}
	v, ok := r.rec.Field(idx)
	if !ok {
		return "", false
	}
	return v.Text(), true
}

func (r filterRow) Texts() []string {
	out := make([]string, len(r.rec))
	for i, v := range r.rec {
		out[i] = v.Text()
	}
	return out
}
