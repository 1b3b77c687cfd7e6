package router // package router defines how HTTP routes are registered for the API

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/DevXSoni021/GreenStitch-Assignment/internal/config"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/handler"
	"github.com/DevXSoni021/GreenStitch-Assignment/internal/middleware"
)

// Register wires every route of the API onto the Echo instance.
//
// Read endpoints (grid, selection validation) take optional auth: an
// anonymous caller sees the pristine layout.  Mutations (book, reset,
// booking history) require a valid token.  Operational endpoints
// (/healthz, /readyz, /metrics) are open and sit outside the rate
// limiter so probes never get throttled.
func Register(e *echo.Echo, cfg config.Config, db *sql.DB, rdb *redis.Client,
	seats *handler.SeatHandler, bookings *handler.BookingHandler) {

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Ready(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	s := api.Group("/seats")
	s.GET("/grid", seats.GetGrid, middleware.OptionalAuth(cfg.JWTSecret))
	s.POST("/select", seats.ValidateSelection, middleware.OptionalAuth(cfg.JWTSecret))
	s.POST("/book", seats.Book, middleware.JWTAuth(cfg.JWTSecret))
	s.POST("/reset", seats.Reset, middleware.JWTAuth(cfg.JWTSecret))

	b := api.Group("/bookings", middleware.JWTAuth(cfg.JWTSecret))
	b.GET("", bookings.List)
	b.GET("/:id", bookings.Get)
	b.DELETE("/:id", bookings.Delete)
}
