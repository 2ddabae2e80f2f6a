package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"restaurant-dashboard/internal/common/httpx"
	"restaurant-dashboard/internal/store"
)

// Server exposes the dashboard queries over HTTP.
type Server struct {
	store *store.Store
	lg    *zap.Logger
}

func NewServer(st *store.Store, lg *zap.Logger) *Server {
	return &Server{store: st, lg: lg}
}

// Run serves the router until ctx is cancelled.
func Run(ctx context.Context, port int, st *store.Store, lg *zap.Logger) error {
	gin.SetMode(gin.ReleaseMode)
	srv := httpx.New(":"+strconv.Itoa(port), NewServer(st, lg).Router())
	return srv.Run(ctx)
}

// Router builds the gin engine with the API routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(ginzap.Ginzap(s.lg, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(s.lg, true))
	// The SPA is served from a different origin; mirror the upstream
	// allow-all policy.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Trace-ID"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(traceMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/restaurants", s.handleListRestaurants)
		api.GET("/restaurants/:id", s.handleRestaurantDetail)
		api.GET("/orders", s.handleListOrders)
		api.GET("/orders/analytics", s.handleAnalytics)
		api.GET("/top3", s.handleTop3)
		api.GET("/top", s.handleTopN)
	}
	return router
}

func traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Header("X-Trace-ID", traceID)
		c.Next()
	}
}
