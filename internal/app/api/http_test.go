package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"restaurant-dashboard/internal/app/api"
	"restaurant-dashboard/internal/domain"
	"restaurant-dashboard/internal/store"
)

type stubSource struct{ snap *store.Snapshot }

func (s stubSource) Load(context.Context) (*store.Snapshot, error) { return s.snap, nil }

func order(id, restaurantID int64, ts string, amount float64) domain.Order {
	t, err := domain.ParseLocalTime(ts)
	if err != nil {
		panic(err)
	}
	return domain.Order{ID: &id, RestaurantID: restaurantID, OrderTime: &t, OrderAmount: &amount}
}

func newRouter(t *testing.T, snap *store.Snapshot) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.New(stubSource{snap: snap}, zap.NewNop())
	require.NoError(t, st.Reload(context.Background()))
	return api.NewServer(st, zap.NewNop()).Router()
}

func defaultSnapshot() *store.Snapshot {
	return &store.Snapshot{
		Restaurants: []domain.Restaurant{
			{ID: 1, Name: "Indian Spice", Location: "Chennai", Cuisine: "Indian"},
			{ID: 2, Name: "Pizza Hub", Location: "Mumbai", Cuisine: "Italian"},
		},
		Orders: []domain.Order{
			order(1, 1, "2024-01-01T10:00:00", 100),
			order(2, 1, "2024-01-01T10:30:00", 50),
			order(3, 2, "2024-01-02T09:00:00", 200),
		},
	}
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, newRouter(t, defaultSnapshot()), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestListRestaurantsEndpoint(t *testing.T) {
	router := newRouter(t, defaultSnapshot())

	w := get(t, router, "/api/restaurants?search=ind")
	require.Equal(t, http.StatusOK, w.Code)
	var restaurants []domain.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Indian Spice", restaurants[0].Name)

	w = get(t, router, "/api/restaurants?sort_by=name&sort_dir=desc")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Pizza Hub", restaurants[0].Name)
}

func TestListOrdersMalformedOptionFallsBack(t *testing.T) {
	router := newRouter(t, defaultSnapshot())
	w := get(t, router, "/api/orders?min_amount=not-a-number")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 3, "malformed min_amount must not constrain the result")
}

func TestAnalyticsEndpoint(t *testing.T) {
	router := newRouter(t, defaultSnapshot())
	w := get(t, router, "/api/orders/analytics?min_hour=10&max_hour=10")
	require.Equal(t, http.StatusOK, w.Code)

	var res domain.AnalyticsResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.TotalOrders)
	assert.Equal(t, 150.0, res.TotalRevenue)
	assert.Equal(t, 75.0, res.AverageOrderValue)
}

func TestTopEndpoints(t *testing.T) {
	router := newRouter(t, defaultSnapshot())

	w := get(t, router, "/api/top3")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []domain.RankingEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].RestaurantID)
	assert.Equal(t, 200.0, entries[0].Revenue)

	w = get(t, router, "/api/top?n=1")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestTopEndpointReportsOrphans(t *testing.T) {
	snap := defaultSnapshot()
	snap.Orders = append(snap.Orders, order(4, 77, "2024-01-05T12:00:00", 999))
	router := newRouter(t, snap)

	w := get(t, router, "/api/top3")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "DATA_CONSISTENCY", body["error"])
}

func TestRestaurantDetailEndpoint(t *testing.T) {
	router := newRouter(t, defaultSnapshot())

	w := get(t, router, "/api/restaurants/1")
	require.Equal(t, http.StatusOK, w.Code)
	var detail domain.RestaurantDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Indian Spice", detail.Restaurant.Name)
	require.Len(t, detail.Orders, 2)
	assert.Equal(t, int64(2), *detail.Orders[0].ID, "history defaults to most-recent-first")

	w = get(t, router, "/api/restaurants/99")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Unknown Restaurant", detail.Restaurant.Name)
	assert.Nil(t, detail.Stats.FirstOrderDate)

	w = get(t, router, "/api/restaurants/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
