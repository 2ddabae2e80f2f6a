package query

import (
	"github.com/shopspring/decimal"

	"restaurant-dashboard/internal/domain"
	"restaurant-dashboard/internal/store"
)

// Facade composes the filter, sort and aggregation engines into the named
// queries the dashboard needs. A Facade is bound to one snapshot, so every
// query it answers is a pure computation over the same immutable input;
// hosted endpoints and client-side recomputation call the same code and
// cannot drift.
type Facade struct {
	snap *store.Snapshot
}

func New(snap *store.Snapshot) Facade { return Facade{snap: snap} }

// ListRestaurants filters by search term and sorts by the requested key.
// With no sort key the snapshot order is preserved.
func (f Facade) ListRestaurants(search, sortBy, sortDir string) []domain.Restaurant {
	restaurants := FilterRestaurants(f.snap.Restaurants, search)
	if sortBy == "" {
		return restaurants
	}
	key, dir := splitSort(sortBy, sortDir)
	return SortRestaurants(restaurants, key, dir)
}

// ListOrders applies the filter options; when a sort key is requested the
// result is sorted, otherwise snapshot order is preserved.
func (f Facade) ListOrders(opts Options) []domain.Order {
	orders := FilterOrders(f.snap.Orders, opts)
	if opts.SortBy == "" {
		return orders
	}
	key, dir := splitSort(opts.SortBy, opts.SortDir)
	return SortOrders(orders, key, dir)
}

// ComputeAnalytics aggregates the filtered order set.
func (f Facade) ComputeAnalytics(opts Options) domain.AnalyticsResult {
	return Aggregate(FilterOrders(f.snap.Orders, opts))
}

// TopRevenue ranks restaurants by revenue over the full order collection.
func (f Facade) TopRevenue(n int) ([]domain.RankingEntry, error) {
	return TopRevenue(f.snap.Orders, f.snap.Restaurants, n)
}

// RestaurantDetail returns one restaurant with its filtered order history
// and summary stats. The history defaults to most-recent-first. A missing
// restaurant record degrades to display placeholders; its stats are simply
// those of an empty order set.
func (f Facade) RestaurantDetail(id int64, opts Options) domain.RestaurantDetail {
	restaurant := domain.UnknownRestaurant(id)
	for _, r := range f.snap.Restaurants {
		if r.ID == id {
			restaurant = r
			break
		}
	}

	scoped := opts
	scoped.RestaurantID = &id
	orders := FilterOrders(f.snap.Orders, scoped)

	key, dir := splitSort(opts.SortBy, opts.SortDir)
	if key == "" {
		key, dir = "date", SortDesc
	}
	orders = SortOrders(orders, key, dir)

	return domain.RestaurantDetail{
		Restaurant: restaurant,
		Orders:     orders,
		Stats:      restaurantStats(orders),
	}
}

func restaurantStats(orders []domain.Order) domain.RestaurantStats {
	stats := domain.RestaurantStats{TotalOrders: len(orders)}
	if len(orders) == 0 {
		return stats
	}

	total := decimal.Zero
	min, max := orders[0].Amount(), orders[0].Amount()
	var first, last *domain.LocalTime
	for _, o := range orders {
		a := o.Amount()
		total = total.Add(decimal.NewFromFloat(a))
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
		t, ok := o.Time()
		if !ok {
			continue
		}
		if first == nil || t.Before(first.Time) {
			tt := t
			first = &tt
		}
		if last == nil || t.After(last.Time) {
			tt := t
			last = &tt
		}
	}

	stats.TotalRevenue = round2(total)
	stats.AverageOrderValue = round2(total.Div(decimal.NewFromInt(int64(len(orders)))))
	stats.MinOrder = min
	stats.MaxOrder = max
	stats.FirstOrderDate = first
	stats.LastOrderDate = last
	return stats
}
