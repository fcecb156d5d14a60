package engine

import (
	"sort"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
)

// UniqueColumn returns the distinct values of a column sorted ascending.
// A column must hold a single value kind to be ordered.
func UniqueColumn(view *TabularView, index int) ([]model.Value, error) {
	col, err := view.Column(index)
	if err != nil {
		return nil, err
	}
	if err := checkSingleKind(index, col); err != nil {
		return nil, err
	}

	seen := make(map[model.Value]struct{}, len(col))
	unique := make([]model.Value, 0, len(col))
	for _, v := range col {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}

	sort.Slice(unique, func(i, j int) bool {
		c, _ := unique[i].Compare(unique[j])
		return c < 0
	})
	return unique, nil
}

// CountColumn tallies the occurrences of every distinct value in a column.
// Map iteration order carries no meaning.
func CountColumn(view *TabularView, index int) (map[model.Value]int, error) {
	col, err := view.Column(index)
	if err != nil {
		return nil, err
	}
	counts := make(map[model.Value]int)
	for _, v := range col {
		counts[v]++
	}
	return counts, nil
}

func checkSingleKind(index int, col []model.Value) error {
	if len(col) == 0 {
		return nil
	}
	first := col[0].Kind()
	var kinds []model.Kind
	for _, v := range col[1:] {
		if v.Kind() == first {
			continue
		}
		if kinds == nil {
			kinds = []model.Kind{first}
		}
		if !containsKind(kinds, v.Kind()) {
			kinds = append(kinds, v.Kind())
		}
	}
	if kinds != nil {
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
		return &ComparisonError{Index: index, Kinds: kinds}
	}
	return nil
}

func containsKind(kinds []model.Kind, k model.Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}
