package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/queue"
	"github.com/eduvision/seat-assignment/internal/repository"
	"github.com/eduvision/seat-assignment/internal/seating"
	"github.com/eduvision/seat-assignment/internal/venue"
)

// Publisher pushes assignment-change events to the message broker for the
// external realtime fan-out to consume. Publish failures never fail the
// request; the store is the source of truth.
type Publisher interface {
	PublishAssignmentChanged(ctx context.Context, ev queue.AssignmentChangedEvent)
}

// AssignmentHandler implements the faculty-facing allocator operations:
// create, seat replacement, delete and listing. Every mutation is confirmed
// by the store before anything else observes it; on failure no state changes,
// so resubmitting is always safe.
type AssignmentHandler struct {
	Store     repository.AssignmentStore
	Publisher Publisher // optional
}

// NewAssignmentHandler constructs an AssignmentHandler. The publisher may be
// nil when no broker is configured.
func NewAssignmentHandler(store repository.AssignmentStore, pub Publisher) *AssignmentHandler {
	if store == nil {
		panic("nil store passed to NewAssignmentHandler")
	}
	return &AssignmentHandler{Store: store, Publisher: pub}
}

// Create handles POST /v1/events/:id/assignments. The request is validated
// against the venue geometry and catalogs, then checked for overlap against
// the current assignment list, and finally persisted. A partial overlap
// rejects the entire request; the store's unique key backstops races.
func (h *AssignmentHandler) Create(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var body struct {
		VenueType   string `json:"venue_type"`
		Department  string `json:"department"`
		Year        string `json:"year"`
		Gender      string `json:"gender"`
		SeatNumbers []int  `json:"seat_numbers"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	req := seating.Request{
		EventID:     eventID,
		VenueType:   body.VenueType,
		Department:  body.Department,
		Year:        body.Year,
		Gender:      body.Gender,
		SeatNumbers: body.SeatNumbers,
	}
	if err := seating.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	existing, err := h.Store.ListByEvent(ctx, eventID, req.VenueType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if conflicts := seating.Conflicts(req.SeatNumbers, existing, 0); len(conflicts) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":          "seat already assigned",
			"conflict_seats": conflicts,
		})
	}

	seats, rows := seating.Normalize(req)
	a := &model.SeatAssignment{
		EventID:     eventID,
		VenueType:   req.VenueType,
		Department:  req.Department,
		Year:        req.Year,
		Gender:      req.Gender,
		SeatNumbers: seats,
		RowNumbers:  rows,
	}
	if err := h.Store.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			// Lost a race with another session; the unique key caught it.
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already assigned"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}

	h.publish(c, "created", a)
	return c.JSON(http.StatusCreated, a)
}

// UpdateSeats handles PUT /v1/assignments/:id/seats and replaces the seat set
// of an existing assignment. The assignment's own prior seats are excluded
// from the conflict check.
func (h *AssignmentHandler) UpdateSeats(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		SeatNumbers []int `json:"seat_numbers"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	cur, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	req := seating.Request{
		EventID:     cur.EventID,
		VenueType:   cur.VenueType,
		Department:  cur.Department,
		Year:        cur.Year,
		Gender:      cur.Gender,
		SeatNumbers: body.SeatNumbers,
	}
	if err := seating.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	existing, err := h.Store.ListByEvent(ctx, cur.EventID, cur.VenueType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if conflicts := seating.Conflicts(body.SeatNumbers, existing, id); len(conflicts) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":          "seat already assigned",
			"conflict_seats": conflicts,
		})
	}

	seats, _ := seating.Normalize(req)
	if err := h.Store.UpdateSeats(ctx, id, seats); err != nil {
		switch {
		case errors.Is(err, repository.ErrAssignmentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		case errors.Is(err, repository.ErrSeatTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already assigned"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	fresh, err := h.Store.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	h.publish(c, "updated", fresh)
	return c.JSON(http.StatusOK, fresh)
}

// Delete handles DELETE /v1/assignments/:id. The assignment's seats become
// available immediately. Deleting a missing id is a soft not-found, not a
// fatal error.
func (h *AssignmentHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	cur, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.publish(c, "deleted", cur)
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/events/:id/assignments and returns the full assignment
// list plus aggregate stats for the requested venue. Faculty only; students
// use the seat map endpoint which redacts foreign detail.
func (h *AssignmentHandler) List(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	venueType := c.QueryParam("venue_type")
	cfg, ok := venue.Get(venueType)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown venue type"})
	}
	assignments, err := h.Store.ListByEvent(c.Request().Context(), eventID, venueType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if assignments == nil {
		assignments = []model.SeatAssignment{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"venue":       cfg,
		"assignments": assignments,
		"stats":       seating.Stats(assignments, cfg),
	})
}

func (h *AssignmentHandler) publish(c echo.Context, action string, a *model.SeatAssignment) {
	if h.Publisher == nil {
		return
	}
	h.Publisher.PublishAssignmentChanged(c.Request().Context(), queue.AssignmentChangedEvent{
		Action:       action,
		AssignmentID: a.ID,
		EventID:      a.EventID,
		VenueType:    a.VenueType,
		Department:   a.Department,
		Year:         a.Year,
		Gender:       a.Gender,
		SeatNumbers:  a.SeatNumbers,
		RowNumbers:   a.RowNumbers,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
}
