// Package router registers the HTTP routes of the seat-assignment API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/eduvision/seat-assignment/internal/config"
	"github.com/eduvision/seat-assignment/internal/handler"
	"github.com/eduvision/seat-assignment/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication: the health
// check and the static venue/department catalog. The catalog never changes at
// runtime, so it is served through the response cache.
func RegisterRoutes(e *echo.Echo, sm *handler.SeatMapHandler, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/venues", sm.Venues, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
}

// RegisterSeating registers the protected seating endpoints. All routes
// require a valid access token; mutations additionally require the FACULTY
// role, while the seat map is open to both roles and redacted per viewer.
// The seat map is deliberately not response-cached: its payload depends on
// the viewer's claims, and the cache key is built from route and query only.
func RegisterSeating(e *echo.Echo, a *handler.AssignmentHandler, sm *handler.SeatMapHandler, jwtSecret string, rdb *redis.Client) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Faculty-only allocator operations.
	faculty := v1.Group("", middleware.RequireRole(handler.RoleFaculty))
	faculty.POST("/events/:id/assignments", a.Create)
	faculty.GET("/events/:id/assignments", a.List)
	faculty.PUT("/assignments/:id/seats", a.UpdateSeats)
	faculty.DELETE("/assignments/:id", a.Delete)

	// Seat map for both roles; students get the redacted view.
	seatmap := v1.Group("", middleware.RequireRole(handler.RoleFaculty, handler.RoleStudent))
	seatmap.GET("/events/:id/seatmap", sm.Get)
}
