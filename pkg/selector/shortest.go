// Package selector holds the row-selection predicates and rankings shared by
// the shortest and pairs tools.
package selector

import (
	"sort"
	"unicode/utf8"
)

// ColumnLength returns the ranking length for a record: the character count
// of field 0, untrimmed. A record with no fields ranks as length 0.
func ColumnLength(rec []string) int {
	if len(rec) == 0 {
		return 0
	}
	return utf8.RuneCountInString(rec[0])
}

// ShortestHalf returns the indices of the shortest half of the dataset,
// `len(lengths) / 2` entries rounded down.
//
// Indices are ranked by (length, original index) ascending. The index
// tie-break keeps the cut line deterministic when several rows share the
// length at the boundary: earlier rows win.
func ShortestHalf(lengths []int) map[int]bool {
	order := make([]int, len(lengths))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if lengths[ia] != lengths[ib] {
			return lengths[ia] < lengths[ib]
		}
		return ia < ib
	})

	nKeep := len(lengths) / 2
	selected := make(map[int]bool, nKeep)
	for _, idx := range order[:nKeep] {
		selected[idx] = true
	}
	return selected
}
