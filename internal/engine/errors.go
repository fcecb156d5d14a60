package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
)

// ErrEmptyInput is returned when a dataset has zero rows.
var ErrEmptyInput = errors.New("dataset contains no rows")

// LoadErrorKind tells apart the ways a dataset can fail to load.
type LoadErrorKind int

const (
	LoadNotFound LoadErrorKind = iota
	LoadMalformed
	LoadEmpty
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadNotFound:
		return "missing"
	case LoadMalformed:
		return "malformed"
	case LoadEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// LoadError is produced by loaders.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadNotFound:
		return fmt.Sprintf("input file '%s' does not exist", e.Path)
	case LoadEmpty:
		return fmt.Sprintf("input file '%s' contains no log rows", e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("input file '%s' is not valid: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("input file '%s' is not valid", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets an empty-dataset load error match ErrEmptyInput.
func (e *LoadError) Is(target error) bool {
	return e.Kind == LoadEmpty && target == ErrEmptyInput
}

// IndexOutOfRangeError reports a column index beyond a row's width.
// Row is -1 when the index was rejected against the view's column count.
type IndexOutOfRangeError struct {
	Index int
	Width int
	Row   int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("column index %d out of range (columns: %d)", e.Index, e.Width)
	}
	return fmt.Sprintf("column index %d out of range at row %d (row width: %d)", e.Index, e.Row, e.Width)
}

// MalformedRowError is returned by strict views for rows whose width differs
// from the first row.
type MalformedRowError struct {
	Row      int
	Width    int
	Expected int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d has %d fields, expected %d", e.Row, e.Width, e.Expected)
}

// ComparisonError is returned when a column cannot be ordered because it mixes
// value kinds.
type ComparisonError struct {
	Index int
	Kinds []model.Kind
}

func (e *ComparisonError) Error() string {
	names := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		names[i] = k.String()
	}
	return fmt.Sprintf("column %d mixes incomparable kinds: %s", e.Index, strings.Join(names, ", "))
}

// PersistError wraps any failure while writing a result.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("cannot write '%s': %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// FilterError reports an invalid row filter expression.
type FilterError struct {
	Expr string
	Err  error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %v", e.Expr, e.Err)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}
