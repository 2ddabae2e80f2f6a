// Package query implements the filtering, sorting and aggregation core and
// the façade composing them into the queries the dashboard serves.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"restaurant-dashboard/internal/domain"
)

// Options is the recognized filter configuration. Every field is optional;
// present fields combine with AND, absent fields impose no constraint.
type Options struct {
	RestaurantID *int64
	StartDate    *domain.LocalTime // inclusive, start of day
	EndDate      *domain.LocalTime // inclusive through 23:59:59
	MinAmount    *float64
	MaxAmount    *float64
	MinHour      *int
	MaxHour      *int
	Search       string
	SortBy       string
	SortDir      string
}

// ParseOptions reads the recognized query parameters. A value that fails to
// parse leaves its option unset, so one malformed parameter never fails the
// whole query.
func ParseOptions(values url.Values) Options {
	var opts Options
	if v := values.Get("restaurant_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			opts.RestaurantID = &id
		}
	}
	if v := values.Get("start_date"); v != "" {
		if t, err := domain.ParseLocalDate(v); err == nil {
			opts.StartDate = &t
		}
	}
	if v := values.Get("end_date"); v != "" {
		if t, err := domain.ParseLocalDate(v); err == nil {
			end := t.EndOfDay()
			opts.EndDate = &end
		}
	}
	if v := values.Get("min_amount"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MinAmount = &f
		}
	}
	if v := values.Get("max_amount"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MaxAmount = &f
		}
	}
	if v := values.Get("min_hour"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			opts.MinHour = &h
		}
	}
	if v := values.Get("max_hour"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			opts.MaxHour = &h
		}
	}
	opts.Search = strings.TrimSpace(values.Get("search"))
	opts.SortBy = values.Get("sort_by")
	opts.SortDir = values.Get("sort_dir")
	return opts
}
