package service

import (
	"sort"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
)

// CategoryTotal is one slice of the per-category time breakdown.
type CategoryTotal struct {
	Category models.Category
	Seconds  int64
}

// TotalsByCategory aggregates activity durations per embedded category,
// largest first. Activities are grouped by the category id they carry, so a
// log holding stale copies (possible after a hand-edited import) still sums
// under one entry per id.
func TotalsByCategory(activities []models.Activity) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var order []string

	for _, a := range activities {
		t, ok := totals[a.Category.ID]
		if !ok {
			t = &CategoryTotal{Category: a.Category}
			totals[a.Category.ID] = t
			order = append(order, a.Category.ID)
		}
		t.Seconds += a.Duration
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Seconds > out[j].Seconds
	})
	return out
}

// TotalSeconds sums all activity durations.
func TotalSeconds(activities []models.Activity) int64 {
	var total int64
	for _, a := range activities {
		total += a.Duration
	}
	return total
}
