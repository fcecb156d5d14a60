package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns names the positions of the fields the analysis consumes.
type Columns interface {
	UserColumn() int
	EventColumn() int
}

// ColumnMapping is the plain implementation of Columns.
type ColumnMapping struct {
	User  int `yaml:"user"`
	Event int `yaml:"event"`
}

// DefaultColumns matches the anonymized log export: user at 1, event at 4.
var DefaultColumns = ColumnMapping{User: 1, Event: 4}

func (m ColumnMapping) UserColumn() int  { return m.User }
func (m ColumnMapping) EventColumn() int { return m.Event }

// ResolveColumn turns a column name into an index.
// Accepted names: "user", "event", "colN" and "cN".
func ResolveColumn(cols Columns, name string) (int, error) {
	key := strings.ToLower(name)
	switch key {
	case "user", "utente":
		return cols.UserColumn(), nil
	case "event", "evento":
		return cols.EventColumn(), nil
	}
	var digits string
	switch {
	case strings.HasPrefix(key, "col"):
		digits = key[3:]
	case strings.HasPrefix(key, "c"):
		digits = key[1:]
	default:
		return 0, fmt.Errorf("unknown column %q", name)
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("unknown column %q", name)
	}
	return idx, nil
}
