package engine

import (
	"errors"
	"testing"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(values ...string) []model.Value {
	out := make([]model.Value, len(values))
	for i, v := range values {
		out[i] = model.String(v)
	}
	return out
}

func TestUniqueColumnScenario(t *testing.T) {
	view, err := NewTabularView(sampleRows())
	require.NoError(t, err)

	users, err := UniqueColumn(view, DefaultColumns.UserColumn())
	require.NoError(t, err)
	assert.Equal(t, strs("alice", "bob"), users)

	events, err := UniqueColumn(view, DefaultColumns.EventColumn())
	require.NoError(t, err)
	assert.Equal(t, strs("login", "logout"), events)

	counts, err := CountColumn(view, DefaultColumns.EventColumn())
	require.NoError(t, err)
	assert.Equal(t, map[model.Value]int{
		model.String("login"):  2,
		model.String("logout"): 1,
	}, counts)
}

func TestUniqueColumnSortedAndIdempotent(t *testing.T) {
	rows := []model.LogRecord{
		model.Strings("x", "zoe"),
		model.Strings("x", "Ada"),
		model.Strings("x", "élodie"),
		model.Strings("x", "bob"),
		model.Strings("x", "zoe"),
		model.Strings("x", "Ada"),
	}
	view, err := NewTabularView(rows)
	require.NoError(t, err)

	first, err := UniqueColumn(view, 1)
	require.NoError(t, err)
	second, err := UniqueColumn(view, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, strs("Ada", "bob", "zoe", "élodie"), first)
	for i := 1; i < len(first); i++ {
		c, ok := first[i-1].Compare(first[i])
		require.True(t, ok)
		assert.Equal(t, -1, c, "result must be strictly increasing at %d", i)
	}
}

func TestUniqueColumnNumbers(t *testing.T) {
	rows := []model.LogRecord{
		{model.Number(10)},
		{model.Number(2)},
		{model.Number(10)},
		{model.Number(-1.5)},
	}
	view, err := NewTabularView(rows)
	require.NoError(t, err)

	got, err := UniqueColumn(view, 0)
	require.NoError(t, err)
	assert.Equal(t, []model.Value{model.Number(-1.5), model.Number(2), model.Number(10)}, got)
}

func TestUniqueColumnMixedKinds(t *testing.T) {
	rows := []model.LogRecord{
		{model.String("a")},
		{model.Number(1)},
		{model.String("b")},
		{model.Null()},
	}
	view, err := NewTabularView(rows)
	require.NoError(t, err)

	_, err = UniqueColumn(view, 0)
	var ce *ComparisonError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 0, ce.Index)
	assert.Equal(t, []model.Kind{model.KindNull, model.KindNumber, model.KindString}, ce.Kinds)

	// counting does not need an order
	counts, err := CountColumn(view, 0)
	require.NoError(t, err)
	assert.Len(t, counts, 4)
}

func TestCountColumnProperties(t *testing.T) {
	datasets := [][]model.LogRecord{
		sampleRows(),
		{model.Strings("r", "u", "d", "h", "only")},
		{
			model.Strings("r", "u1", "d", "h", "a"),
			model.Strings("r", "u2", "d", "h", "b"),
			model.Strings("r", "u1", "d", "h", "c"),
			model.Strings("r", "u3", "d", "h", "a"),
			model.Strings("r", "u2", "d", "h", "a"),
		},
	}

	for i, rows := range datasets {
		view, err := NewTabularView(rows)
		require.NoError(t, err)
		rowCount, _ := view.Size()

		for _, idx := range []int{1, 4} {
			counts, err := CountColumn(view, idx)
			require.NoError(t, err)
			unique, err := UniqueColumn(view, idx)
			require.NoError(t, err)

			sum := 0
			for _, c := range counts {
				sum += c
			}
			assert.Equal(t, rowCount, sum, "dataset %d column %d", i, idx)

			keys := make(map[model.Value]struct{}, len(counts))
			for k := range counts {
				keys[k] = struct{}{}
			}
			assert.Len(t, unique, len(keys))
			for _, u := range unique {
				assert.Contains(t, keys, u)
			}
		}
	}
}

func TestAggregatorsPropagateIndexErrors(t *testing.T) {
	view, err := NewTabularView(sampleRows())
	require.NoError(t, err)

	_, err = UniqueColumn(view, 9)
	var ie *IndexOutOfRangeError
	assert.True(t, errors.As(err, &ie))

	_, err = CountColumn(view, 9)
	assert.True(t, errors.As(err, &ie))
}
