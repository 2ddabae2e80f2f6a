package domain

// Derived analytics shapes. All of these are recomputed per query from the
// active snapshot and are a pure function of their inputs. Revenue values
// are rounded to 2 decimal places exactly once, when these structs are
// built; intermediate sums keep full precision.

// DailyCount is the number of orders placed on one calendar date.
type DailyCount struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

// DailyRevenue is the summed order amount for one calendar date.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// PeakHour is the busiest ordering hour (0-23) of one calendar date and the
// number of orders placed during it. Ties resolve to the lowest hour.
type PeakHour struct {
	Date   string `json:"date"`
	Hour   int    `json:"peak_hour"`
	Orders int    `json:"orders"`
}

// AnalyticsResult is the full aggregation over a filtered order set.
type AnalyticsResult struct {
	DailyOrders       []DailyCount   `json:"daily_orders"`
	DailyRevenue      []DailyRevenue `json:"daily_revenue"`
	PeakHours         []PeakHour     `json:"peak_hours"`
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      float64        `json:"total_revenue"`
	AverageOrderValue float64        `json:"average_order_value"`
}

// RankingEntry is one row of the top-N revenue ranking, joined against the
// restaurant collection.
type RankingEntry struct {
	RestaurantID int64   `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Revenue      float64 `json:"revenue"`
}

// RestaurantStats summarizes one restaurant's filtered orders. When the
// filtered set is empty every numeric field is 0 and the date bounds are
// nil, serialized as JSON null — an explicit no-data marker, never the
// current wall-clock time.
type RestaurantStats struct {
	TotalOrders       int        `json:"total_orders"`
	TotalRevenue      float64    `json:"total_revenue"`
	AverageOrderValue float64    `json:"average_order_value"`
	MinOrder          float64    `json:"min_order"`
	MaxOrder          float64    `json:"max_order"`
	FirstOrderDate    *LocalTime `json:"first_order_date"`
	LastOrderDate     *LocalTime `json:"last_order_date"`
}

// RestaurantDetail is the details-view payload for one restaurant.
type RestaurantDetail struct {
	Restaurant Restaurant      `json:"restaurant"`
	Orders     []Order         `json:"orders"`
	Stats      RestaurantStats `json:"stats"`
}
