package jsonvalue

import (
	"bytes"
	"sort"
)

// SortBy reorders an object's members according to mode, updating
// sortMode. ByInsertionIndex restores original_index order; ByKey
// orders by byte-wise lexicographic key comparison (NUL-safe, stable);
// ByKeyValue breaks key ties by comparing the member's value bytes
// after formatting it with DEFAULT options, which is what the
// structural-equality algorithm in Equal relies on to get a total
// order over duplicate keys. Unsorted is a no-op: callers that pass it
// are asking to leave current order alone.
func (v *Value) SortBy(mode SortMode) {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	switch mode {
	case Unsorted:
		return
	case ByInsertionIndex:
		sort.SliceStable(v.members, func(i, j int) bool {
			return v.members[i].originalIndex < v.members[j].originalIndex
		})
	case ByKey:
		sort.SliceStable(v.members, func(i, j int) bool {
			return compareKeyBytes(v.members[i].key.str, v.members[j].key.str) < 0
		})
	case ByKeyValue:
		sort.SliceStable(v.members, func(i, j int) bool {
			c := compareKeyBytes(v.members[i].key.str, v.members[j].key.str)
			if c != 0 {
				return c < 0
			}
			vi, _ := Format(v.members[i].value, FormatDefault)
			vj, _ := Format(v.members[j].value, FormatDefault)
			return bytes.Compare(vi, vj) < 0
		})
	}
	v.sortMode = mode

	// Sorting descends into nested objects too, since the equality
	// algorithm needs a canonical order at every depth.
	for _, m := range v.members {
		if m.value != nil && m.value.kind == Object {
			m.value.SortBy(mode)
		} else if m.value != nil && m.value.kind == Array {
			sortArrayObjects(m.value, mode)
		}
	}
}

func sortArrayObjects(v *Value, mode SortMode) {
	for _, e := range v.elements {
		if e == nil {
			continue
		}
		switch e.kind {
		case Object:
			e.SortBy(mode)
		case Array:
			sortArrayObjects(e, mode)
		}
	}
}

// compareKeyBytes is a byte-wise lexicographic compare, NUL-safe: a
// shorter string that is a prefix of the longer one sorts first.
func compareKeyBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// SortObjectsByIndex walks the whole tree and restores every object to
// insertion order, which the formatter relies on for stable output
// (spec §4.2 "sort_objects_by_index").
func SortObjectsByIndex(v *Value) {
	if v == nil {
		return
	}
	switch v.kind {
	case Object:
		// SortBy already recurses into nested objects/arrays.
		v.SortBy(ByInsertionIndex)
	case Array:
		for _, e := range v.elements {
			SortObjectsByIndex(e)
		}
	}
}
