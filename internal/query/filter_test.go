package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-dashboard/internal/domain"
	"restaurant-dashboard/internal/query"
)

func order(id, restaurantID int64, ts string, amount float64) domain.Order {
	t, err := domain.ParseLocalTime(ts)
	if err != nil {
		panic(err)
	}
	return domain.Order{ID: &id, RestaurantID: restaurantID, OrderTime: &t, OrderAmount: &amount}
}

func int64p(v int64) *int64     { return &v }
func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

var testOrders = []domain.Order{
	order(1, 1, "2024-01-01T10:00:00", 100),
	order(2, 1, "2024-01-01T10:30:00", 50),
	order(3, 2, "2024-01-02T09:00:00", 200),
	order(4, 3, "2024-01-02T13:15:00", 340.50),
	order(5, 2, "2024-01-03T19:45:00", 120.25),
}

var testRestaurants = []domain.Restaurant{
	{ID: 1, Name: "Indian Spice", Location: "Chennai", Cuisine: "Indian"},
	{ID: 2, Name: "Pizza Hub", Location: "Mumbai", Cuisine: "Italian"},
	{ID: 3, Name: "Dragon Wok", Location: "Bangalore", Cuisine: "Chinese"},
}

func TestFilterOrdersOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    query.Options
		wantIDs []int64
	}{
		{"no options keeps everything", query.Options{}, []int64{1, 2, 3, 4, 5}},
		{"restaurant id", query.Options{RestaurantID: int64p(2)}, []int64{3, 5}},
		{"min amount inclusive", query.Options{MinAmount: floatp(100)}, []int64{1, 3, 4, 5}},
		{"max amount inclusive", query.Options{MaxAmount: floatp(100)}, []int64{1, 2}},
		{"hour window", query.Options{MinHour: intp(10), MaxHour: intp(10)}, []int64{1, 2}},
		{"start date", query.Options{StartDate: mustDate(t, "2024-01-02")}, []int64{3, 4, 5}},
		{"combined AND", query.Options{RestaurantID: int64p(1), MinAmount: floatp(60)}, []int64{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := query.FilterOrders(testOrders, tc.opts)
			ids := make([]int64, 0, len(got))
			for _, o := range got {
				ids = append(ids, *o.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func mustDate(t *testing.T, s string) *domain.LocalTime {
	t.Helper()
	d, err := domain.ParseLocalDate(s)
	require.NoError(t, err)
	return &d
}

func TestFilterOrdersEndDateIsInclusiveThroughEndOfDay(t *testing.T) {
	end := mustDate(t, "2024-01-01").EndOfDay()
	got := query.FilterOrders(testOrders, query.Options{EndDate: &end})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), *got[0].ID)
	assert.Equal(t, int64(2), *got[1].ID)
}

func TestFilterOrdersMissingFields(t *testing.T) {
	noAmount := domain.Order{ID: int64p(10), RestaurantID: 1}
	ts, _ := domain.ParseLocalTime("2024-01-01T08:00:00")
	noAmount.OrderTime = &ts
	noTime := domain.Order{ID: int64p(11), RestaurantID: 1, OrderAmount: floatp(25)}
	orders := []domain.Order{noAmount, noTime}

	// No constraints: degraded records still pass.
	assert.Len(t, query.FilterOrders(orders, query.Options{}), 2)

	// An amount constraint cannot match a record with no amount.
	got := query.FilterOrders(orders, query.Options{MinAmount: floatp(0)})
	require.Len(t, got, 1)
	assert.Equal(t, int64(11), *got[0].ID)

	// A time constraint cannot match a record with no timestamp.
	got = query.FilterOrders(orders, query.Options{MinHour: intp(0)})
	require.Len(t, got, 1)
	assert.Equal(t, int64(10), *got[0].ID)
}

func TestFilterRestaurantsSearchesAllTextFields(t *testing.T) {
	byName := query.FilterRestaurants(testRestaurants, "IND")
	require.Len(t, byName, 1)
	assert.Equal(t, "Indian Spice", byName[0].Name)

	byLocation := query.FilterRestaurants(testRestaurants, "mumbai")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Pizza Hub", byLocation[0].Name)

	byCuisine := query.FilterRestaurants(testRestaurants, "chin")
	require.Len(t, byCuisine, 1)
	assert.Equal(t, "Dragon Wok", byCuisine[0].Name)

	assert.Len(t, query.FilterRestaurants(testRestaurants, ""), 3)
	assert.Empty(t, query.FilterRestaurants(testRestaurants, "sushi"))
}

func TestParseOptionsFallsBackPerOption(t *testing.T) {
	values := url.Values{
		"restaurant_id": {"2"},
		"min_amount":    {"not-a-number"},
		"max_amount":    {"150"},
		"start_date":    {"garbage"},
		"end_date":      {"2024-01-03"},
		"min_hour":      {"nine"},
		"max_hour":      {"23"},
		"search":        {"  pizza "},
	}
	opts := query.ParseOptions(values)

	require.NotNil(t, opts.RestaurantID)
	assert.Equal(t, int64(2), *opts.RestaurantID)
	assert.Nil(t, opts.MinAmount, "malformed min_amount falls back to unconstrained")
	require.NotNil(t, opts.MaxAmount)
	assert.Equal(t, 150.0, *opts.MaxAmount)
	assert.Nil(t, opts.StartDate, "malformed start_date falls back to unconstrained")
	require.NotNil(t, opts.EndDate)
	assert.Equal(t, "2024-01-03T23:59:59", opts.EndDate.String())
	assert.Nil(t, opts.MinHour)
	require.NotNil(t, opts.MaxHour)
	assert.Equal(t, 23, *opts.MaxHour)
	assert.Equal(t, "pizza", opts.Search)
}
