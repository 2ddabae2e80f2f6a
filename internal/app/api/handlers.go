package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-dashboard/internal/domain"
	"restaurant-dashboard/internal/query"
)

// facade binds a fresh façade to the snapshot that is current when the
// request starts; a concurrent reload cannot change the data mid-request.
func (s *Server) facade() query.Facade {
	return query.New(s.store.Snapshot())
}

func (s *Server) handleListRestaurants(c *gin.Context) {
	opts := query.ParseOptions(c.Request.URL.Query())
	c.JSON(http.StatusOK, s.facade().ListRestaurants(opts.Search, opts.SortBy, opts.SortDir))
}

func (s *Server) handleListOrders(c *gin.Context) {
	opts := query.ParseOptions(c.Request.URL.Query())
	c.JSON(http.StatusOK, s.facade().ListOrders(opts))
}

func (s *Server) handleAnalytics(c *gin.Context) {
	opts := query.ParseOptions(c.Request.URL.Query())
	c.JSON(http.StatusOK, s.facade().ComputeAnalytics(opts))
}

func (s *Server) handleTop3(c *gin.Context) {
	s.writeRanking(c, 3)
}

func (s *Server) handleTopN(c *gin.Context) {
	n := 3
	if v := c.Query("n"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}
	s.writeRanking(c, n)
}

func (s *Server) writeRanking(c *gin.Context, n int) {
	entries, err := s.facade().TopRevenue(n)
	if err != nil {
		var dce *domain.DataConsistencyError
		if errors.As(err, &dce) {
			s.lg.Error("ranking_consistency_failure",
				zap.Int64("restaurant_id", dce.RestaurantID),
				zap.String("trace_id", c.GetString("trace_id")),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "DATA_CONSISTENCY",
				"message":  err.Error(),
				"trace_id": c.GetString("trace_id"),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "RANKING_FAILED",
			"trace_id": c.GetString("trace_id"),
		})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleRestaurantDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "INVALID_ID",
			"message":  "restaurant id must be an integer",
			"trace_id": c.GetString("trace_id"),
		})
		return
	}
	opts := query.ParseOptions(c.Request.URL.Query())
	c.JSON(http.StatusOK, s.facade().RestaurantDetail(id, opts))
}
