package query

import (
	"sort"
	"strings"

	"restaurant-dashboard/internal/domain"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortRestaurants returns a sorted copy. Sorting is stable: equal keys keep
// their snapshot order. An unknown key returns the copy unsorted.
func SortRestaurants(restaurants []domain.Restaurant, key, dir string) []domain.Restaurant {
	out := append([]domain.Restaurant(nil), restaurants...)
	less := restaurantLess(key)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func restaurantLess(key string) func(a, b domain.Restaurant) bool {
	switch key {
	case "id":
		return func(a, b domain.Restaurant) bool { return a.ID < b.ID }
	case "name":
		return func(a, b domain.Restaurant) bool { return a.Name < b.Name }
	case "location":
		return func(a, b domain.Restaurant) bool { return a.Location < b.Location }
	case "cuisine":
		return func(a, b domain.Restaurant) bool { return a.Cuisine < b.Cuisine }
	}
	return nil
}

// SortOrders returns a stably sorted copy by "date" or "amount". Records
// missing the keyed field sort as zero, so they group at the low end of an
// ascending sort instead of faulting.
func SortOrders(orders []domain.Order, key, dir string) []domain.Order {
	out := append([]domain.Order(nil), orders...)
	less := orderLess(key)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func orderLess(key string) func(a, b domain.Order) bool {
	switch key {
	case "date":
		return func(a, b domain.Order) bool {
			at, _ := a.Time()
			bt, _ := b.Time()
			return at.Before(bt.Time)
		}
	case "amount":
		return func(a, b domain.Order) bool { return a.Amount() < b.Amount() }
	}
	return nil
}

// NextSort implements header-click toggling for browsing UIs: clicking the
// active ascending key flips to descending, anything else resets to
// ascending on the clicked key.
func NextSort(activeKey, activeDir, clicked string) (key, dir string) {
	if clicked == activeKey && activeDir == SortAsc {
		return clicked, SortDesc
	}
	return clicked, SortAsc
}

// splitSort normalizes the two accepted sort spellings: a separate
// key + direction pair, or the combined "date_desc" style the details view
// uses. Direction defaults to ascending.
func splitSort(sortBy, sortDir string) (key, dir string) {
	if k, ok := strings.CutSuffix(sortBy, "_desc"); ok {
		return k, SortDesc
	}
	if k, ok := strings.CutSuffix(sortBy, "_asc"); ok {
		return k, SortAsc
	}
	if sortDir != SortDesc {
		sortDir = SortAsc
	}
	return sortBy, sortDir
}
