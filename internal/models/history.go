package models

import (
	"fmt"
	"sort"
	"time"
)

var monthNames = [12]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

type OrderGroup struct {
	// Key is "<year>-<zero-based month>".
	Key    string  `json:"key"`
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Orders []Order `json:"orders"`
}

func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// GroupOrdersByMonth buckets orders by the calendar month of created_at in loc.
// Groups are newest first, and so are the orders inside each group.
func GroupOrdersByMonth(orders []Order, loc *time.Location) []OrderGroup {
	if loc == nil {
		loc = time.UTC
	}

	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})

	byKey := make(map[int]*OrderGroup)
	var ordinals []int

	for _, o := range sorted {
		t := o.CreatedAt.In(loc)
		ordinal := t.Year()*12 + int(t.Month()) - 1

		g, ok := byKey[ordinal]
		if !ok {
			g = &OrderGroup{
				Key:   fmt.Sprintf("%d-%d", t.Year(), int(t.Month())-1),
				Year:  t.Year(),
				Month: int(t.Month()) - 1,
				Label: MonthLabel(t.Year(), t.Month()),
			}
			byKey[ordinal] = g
			ordinals = append(ordinals, ordinal)
		}

		g.Orders = append(g.Orders, o)
		g.Count++
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ordinals)))

	groups := make([]OrderGroup, 0, len(ordinals))
	for _, ordinal := range ordinals {
		groups = append(groups, *byKey[ordinal])
	}

	return groups
}

// OrderHistoryView is what the history screen renders: month groups for the
// local variant, a flat list for the remote one.
type OrderHistoryView struct {
	Mode   HistoryMode  `json:"mode"`
	Groups []OrderGroup `json:"groups,omitempty"`
	Orders []Order      `json:"orders,omitempty"`
}
