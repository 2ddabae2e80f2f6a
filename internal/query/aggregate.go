package query

import (
	"sort"

	"github.com/shopspring/decimal"

	"restaurant-dashboard/internal/domain"
)

// Aggregate derives the daily and total statistics from an already-filtered
// order set. It is a pure function: the same input always produces the same
// output. Sums are accumulated in decimal and rounded to 2 places only when
// the result struct is built.
//
// Orders with no timestamp count toward the totals but cannot be assigned a
// daily bucket.
func Aggregate(orders []domain.Order) domain.AnalyticsResult {
	res := domain.AnalyticsResult{
		DailyOrders:  []domain.DailyCount{},
		DailyRevenue: []domain.DailyRevenue{},
		PeakHours:    []domain.PeakHour{},
		TotalOrders:  len(orders),
	}
	if len(orders) == 0 {
		return res
	}

	counts := make(map[string]int)
	revenue := make(map[string]decimal.Decimal)
	hourly := make(map[string]*[24]int)
	total := decimal.Zero

	for _, o := range orders {
		amount := decimal.NewFromFloat(o.Amount())
		total = total.Add(amount)

		t, ok := o.Time()
		if !ok {
			continue
		}
		date := t.Date()
		counts[date]++
		revenue[date] = revenue[date].Add(amount)
		h := hourly[date]
		if h == nil {
			h = new([24]int)
			hourly[date] = h
		}
		h[t.Hour()]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		res.DailyOrders = append(res.DailyOrders, domain.DailyCount{Date: date, Orders: counts[date]})
		res.DailyRevenue = append(res.DailyRevenue, domain.DailyRevenue{
			Date:    date,
			Revenue: round2(revenue[date]),
		})
		res.PeakHours = append(res.PeakHours, peakHour(date, hourly[date]))
	}

	res.TotalRevenue = round2(total)
	res.AverageOrderValue = round2(total.Div(decimal.NewFromInt(int64(len(orders)))))
	return res
}

// peakHour scans hours in ascending order and requires a strictly greater
// count to displace the current peak, so ties resolve to the lowest hour no
// matter how the counts were accumulated.
func peakHour(date string, counts *[24]int) domain.PeakHour {
	peak := domain.PeakHour{Date: date}
	for hour, n := range counts {
		if n > peak.Orders {
			peak.Hour = hour
			peak.Orders = n
		}
	}
	return peak
}

// TopRevenue ranks restaurants by total revenue across the full order set —
// the ranking is global, never scoped to the active filters. Ties keep the
// order of first appearance in the order collection. An order referencing a
// restaurant id with no record makes that entry a DataConsistencyError: a
// ranking row with no name would silently mislead the consumer.
func TopRevenue(orders []domain.Order, restaurants []domain.Restaurant, n int) ([]domain.RankingEntry, error) {
	if n <= 0 {
		n = 3
	}

	totals := make(map[int64]decimal.Decimal)
	seen := make([]int64, 0)
	for _, o := range orders {
		if _, ok := totals[o.RestaurantID]; !ok {
			seen = append(seen, o.RestaurantID)
		}
		totals[o.RestaurantID] = totals[o.RestaurantID].Add(decimal.NewFromFloat(o.Amount()))
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return totals[seen[i]].GreaterThan(totals[seen[j]])
	})
	if len(seen) > n {
		seen = seen[:n]
	}

	byID := make(map[int64]domain.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}

	entries := make([]domain.RankingEntry, 0, len(seen))
	for _, id := range seen {
		r, ok := byID[id]
		if !ok {
			return nil, &domain.DataConsistencyError{RestaurantID: id}
		}
		entries = append(entries, domain.RankingEntry{
			RestaurantID: id,
			Name:         r.Name,
			Location:     r.Location,
			Revenue:      round2(totals[id]),
		})
	}
	return entries, nil
}

func round2(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }
