package selector_test

import (
	"testing"

	"github.com/shpitdev/csv-row-select/pkg/selector"
)

func TestColumnLength(t *testing.T) {
	t.Run("counts characters of field 0", func(t *testing.T) {
		if got := selector.ColumnLength([]string{"ccc", "ignored"}); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		if got := selector.ColumnLength([]string{"héllo"}); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	})

	t.Run("does not trim", func(t *testing.T) {
		if got := selector.ColumnLength([]string{" a "}); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("empty record ranks as zero", func(t *testing.T) {
		if got := selector.ColumnLength(nil); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestShortestHalf(t *testing.T) {
	t.Run("keeps the two shortest of four", func(t *testing.T) {
		// Column-0 values "a", "bb", "ccc", "d".
		got := selector.ShortestHalf([]int{1, 2, 3, 1})
		want := map[int]bool{0: true, 3: true}
		if len(got) != len(want) || !got[0] || !got[3] {
			t.Fatalf("unexpected selection: %#v", got)
		}
	})

	t.Run("ties at the cut go to earlier rows", func(t *testing.T) {
		got := selector.ShortestHalf([]int{2, 1, 2, 1, 2})
		if len(got) != 2 || !got[1] || !got[3] {
			t.Fatalf("unexpected selection: %#v", got)
		}
	})

	t.Run("all-equal lengths keep the first half", func(t *testing.T) {
		got := selector.ShortestHalf([]int{5, 5, 5, 5})
		if len(got) != 2 || !got[0] || !got[1] {
			t.Fatalf("unexpected selection: %#v", got)
		}
	})

	t.Run("empty input selects nothing", func(t *testing.T) {
		if got := selector.ShortestHalf(nil); len(got) != 0 {
			t.Fatalf("unexpected selection: %#v", got)
		}
	})

	t.Run("single row selects nothing", func(t *testing.T) {
		if got := selector.ShortestHalf([]int{7}); len(got) != 0 {
			t.Fatalf("unexpected selection: %#v", got)
		}
	})

	t.Run("odd count drops the extra row", func(t *testing.T) {
		got := selector.ShortestHalf([]int{1, 2, 3})
		if len(got) != 1 || !got[0] {
			t.Fatalf("unexpected selection: %#v", got)
		}
	})
}

func TestShortestHalf_NoKeptRowLongerThanDiscarded(t *testing.T) {
	lengths := []int{4, 0, 9, 2, 2, 7, 1, 2}
	got := selector.ShortestHalf(lengths)

	maxKept := -1
	minDropped := -1
	for i, l := range lengths {
		if got[i] {
			if l > maxKept {
				maxKept = l
			}
			continue
		}
		if minDropped == -1 || l < minDropped {
			minDropped = l
		}
	}
	if maxKept > minDropped {
		t.Fatalf("kept a row of length %d while dropping one of length %d", maxKept, minDropped)
	}
}
