package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eduvision/seat-assignment/internal/repository"
	"github.com/eduvision/seat-assignment/internal/seating"
	"github.com/eduvision/seat-assignment/internal/venue"
)

// SeatMapHandler serves the resolved per-seat grid. Faculty see full
// assignment detail; students see only their own eligibility, with foreign
// assignments rendered as restricted and their holder hidden.
type SeatMapHandler struct {
	Store repository.AssignmentStore
}

// NewSeatMapHandler constructs a SeatMapHandler.
func NewSeatMapHandler(store repository.AssignmentStore) *SeatMapHandler {
	if store == nil {
		panic("nil store passed to NewSeatMapHandler")
	}
	return &SeatMapHandler{Store: store}
}

// seatEntry is one seat of the rendered grid.
type seatEntry struct {
	Seat int `json:"seat"`
	Row  int `json:"row"`
	seating.Resolved
}

// Get handles GET /v1/events/:id/seatmap?venue_type=... and returns every
// seat's state for the caller plus aggregate stats. The viewer context is
// derived from the token's profile claims for students and nil for faculty;
// it is threaded explicitly into the resolver, never read from ambient state.
func (h *SeatMapHandler) Get(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	venueType := c.QueryParam("venue_type")
	cfg, ok := venue.Get(venueType)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown venue type"})
	}

	viewer := viewerFromContext(c)
	if viewer != nil && (viewer.Department == "" || viewer.Year == "") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "student profile incomplete"})
	}

	assignments, err := h.Store.ListByEvent(c.Request().Context(), eventID, venueType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	resolved := seating.ResolveGrid(cfg.TotalSeats, assignments, nil, viewer)
	grid := make([]seatEntry, len(resolved))
	for i, r := range resolved {
		grid[i] = seatEntry{
			Seat:     i + 1,
			Row:      venue.RowOf(i+1, cfg.SeatsPerRow),
			Resolved: r,
		}
	}

	resp := echo.Map{
		"venue": cfg,
		"seats": grid,
		"stats": seating.Stats(assignments, cfg),
	}
	if viewer != nil {
		resp["viewer"] = echo.Map{
			"department": viewer.Department,
			"year":       viewer.Year,
			"gender":     viewer.Gender,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Venues handles GET /v1/venues and lists the known venue configurations and
// the department catalog so clients can render pickers and legends.
func (h *SeatMapHandler) Venues(c echo.Context) error {
	types := venue.Types()
	venues := make([]echo.Map, 0, len(types))
	for _, t := range types {
		cfg, _ := venue.Get(t)
		venues = append(venues, echo.Map{"type": t, "config": cfg})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venues":      venues,
		"departments": venue.Departments,
		"years":       venue.Years,
		"genders":     venue.Genders,
	})
}
