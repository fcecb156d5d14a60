package engine

import (
	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
)

// TabularView is a read-only, column-indexed view over a fixed set of rows.
// The rows are owned by the view and must not be modified after construction.
type TabularView struct {
	rows    []model.LogRecord
	columns int
}

// ViewOption configures a TabularView at construction time.
type ViewOption func(*viewOptions)

type viewOptions struct {
	strictWidth bool
}

// WithStrictWidth makes the constructor reject any row whose width differs
// from the first row instead of failing lazily on column access.
func WithStrictWidth() ViewOption {
	return func(o *viewOptions) {
		o.strictWidth = true
	}
}

// NewTabularView wraps rows without copying them.
func NewTabularView(rows []model.LogRecord, opts ...ViewOption) (*TabularView, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	var o viewOptions
	for _, opt := range opts {
		opt(&o)
	}

	width := rows[0].Width()
	if o.strictWidth {
		for i, r := range rows {
			if r.Width() != width {
				return nil, &MalformedRowError{Row: i, Width: r.Width(), Expected: width}
			}
		}
	}

	return &TabularView{
		rows:    rows,
		columns: width,
	}, nil
}

// Size returns the row count and the column count.
// The column count is the width of the first row.
func (v *TabularView) Size() (int, int) {
	return len(v.rows), v.columns
}

// Column returns the index-th field of every row, in row order.
func (v *TabularView) Column(index int) ([]model.Value, error) {
	if index < 0 || index >= v.columns {
		return nil, &IndexOutOfRangeError{Index: index, Width: v.columns, Row: -1}
	}
	col := make([]model.Value, len(v.rows))
	for i, r := range v.rows {
		f, ok := r.Field(index)
		if !ok {
			return nil, &IndexOutOfRangeError{Index: index, Width: r.Width(), Row: i}
		}
		col[i] = f
	}
	return col, nil
}
