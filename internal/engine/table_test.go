package engine

import (
	"errors"
	"testing"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []model.LogRecord {
	return []model.LogRecord{
		model.Strings("r1", "alice", "d1", "h1", "login"),
		model.Strings("r2", "bob", "d2", "h2", "logout"),
		model.Strings("r3", "alice", "d3", "h3", "login"),
	}
}

func TestNewTabularViewEmpty(t *testing.T) {
	_, err := NewTabularView(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = NewTabularView([]model.LogRecord{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSize(t *testing.T) {
	rows := sampleRows()
	view, err := NewTabularView(rows)
	require.NoError(t, err)

	r, c := view.Size()
	assert.Equal(t, len(rows), r)
	assert.Equal(t, len(rows[0]), c)
}

func TestSizeUsesFirstRowWidth(t *testing.T) {
	rows := []model.LogRecord{
		model.Strings("a", "b"),
		model.Strings("a", "b", "c", "d"),
	}
	view, err := NewTabularView(rows)
	require.NoError(t, err)
	_, c := view.Size()
	assert.Equal(t, 2, c)
}

func TestColumn(t *testing.T) {
	view, err := NewTabularView(sampleRows())
	require.NoError(t, err)

	col, err := view.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Value{
		model.String("alice"), model.String("bob"), model.String("alice"),
	}, col)
}

func TestColumnOutOfRange(t *testing.T) {
	view, err := NewTabularView(sampleRows())
	require.NoError(t, err)

	for _, idx := range []int{5, 17, -1} {
		_, err := view.Column(idx)
		var ie *IndexOutOfRangeError
		require.True(t, errors.As(err, &ie), "index %d", idx)
		assert.Equal(t, idx, ie.Index)
		assert.Equal(t, 5, ie.Width)
		assert.Equal(t, -1, ie.Row)
	}
}

func TestNarrowRowFailsOnAccess(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, model.Strings("r4", "carol", "d4"))

	view, err := NewTabularView(rows)
	require.NoError(t, err, "lazy view must accept the narrow row")

	// columns that the narrow row still has are fine
	col, err := view.Column(1)
	require.NoError(t, err)
	assert.Len(t, col, 4)

	_, err = view.Column(4)
	var ie *IndexOutOfRangeError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 3, ie.Row)
	assert.Equal(t, 3, ie.Width)
	assert.Equal(t, 4, ie.Index)
}

func TestStrictWidth(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, model.Strings("r4", "carol", "d4"))

	_, err := NewTabularView(rows, WithStrictWidth())
	var me *MalformedRowError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 3, me.Row)
	assert.Equal(t, 3, me.Width)
	assert.Equal(t, 5, me.Expected)

	_, err = NewTabularView(sampleRows(), WithStrictWidth())
	assert.NoError(t, err)
}
