package query

import (
	"strings"

	"restaurant-dashboard/internal/domain"
)

// FilterOrders returns the orders matching every present option. The result
// preserves the input's relative order.
func FilterOrders(orders []domain.Order, opts Options) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if matchesOrder(o, opts) {
			out = append(out, o)
		}
	}
	return out
}

func matchesOrder(o domain.Order, opts Options) bool {
	if opts.RestaurantID != nil && o.RestaurantID != *opts.RestaurantID {
		return false
	}
	if opts.StartDate != nil || opts.EndDate != nil || opts.MinHour != nil || opts.MaxHour != nil {
		t, ok := o.Time()
		if !ok {
			// A record with no timestamp cannot satisfy a time constraint.
			return false
		}
		if opts.StartDate != nil && t.Before(opts.StartDate.Time) {
			return false
		}
		if opts.EndDate != nil && t.After(opts.EndDate.Time) {
			return false
		}
		hour := t.Hour()
		if opts.MinHour != nil && hour < *opts.MinHour {
			return false
		}
		if opts.MaxHour != nil && hour > *opts.MaxHour {
			return false
		}
	}
	if opts.MinAmount != nil || opts.MaxAmount != nil {
		if o.OrderAmount == nil {
			return false
		}
		if opts.MinAmount != nil && *o.OrderAmount < *opts.MinAmount {
			return false
		}
		if opts.MaxAmount != nil && *o.OrderAmount > *opts.MaxAmount {
			return false
		}
	}
	return true
}

// FilterRestaurants keeps restaurants whose name, location or cuisine
// contains the search term, case-insensitively. An empty term matches all.
func FilterRestaurants(restaurants []domain.Restaurant, search string) []domain.Restaurant {
	if search == "" {
		return append([]domain.Restaurant(nil), restaurants...)
	}
	term := strings.ToLower(search)
	out := make([]domain.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Location), term) ||
			strings.Contains(strings.ToLower(r.Cuisine), term) {
			out = append(out, r)
		}
	}
	return out
}
