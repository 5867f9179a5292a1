package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/repository"
	"github.com/eduvision/seat-assignment/internal/venue"
)

func newContext(t *testing.T, e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createBody(dept, year string, seats []int) map[string]interface{} {
	return map[string]interface{}{
		"venue_type":   venue.SeminarHall,
		"department":   dept,
		"year":         year,
		"seat_numbers": seats,
	}
}

func seedAssignment(t *testing.T, store *repository.MemoryStore, dept string, seats ...int) *model.SeatAssignment {
	t.Helper()
	a := &model.SeatAssignment{
		EventID:     1,
		VenueType:   venue.SeminarHall,
		Department:  dept,
		Year:        "2nd Year",
		SeatNumbers: seats,
		RowNumbers:  venue.RowsFor(seats, 16),
	}
	require.NoError(t, store.Create(context.Background(), a))
	return a
}

func TestCreateAssignment(t *testing.T) {
	e := echo.New()
	store := repository.NewMemoryStore()
	h := NewAssignmentHandler(store, nil)

	seats := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	c, rec := newContext(t, e, http.MethodPost, "/v1/events/1/assignments", createBody("CSE", "2nd Year", seats))
	c.SetPath("/v1/events/:id/assignments")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotZero(t, body["id"])
	assert.Equal(t, []interface{}{float64(1)}, body["row_numbers"], "seats 1..10 all sit in row 1")
}

func TestCreateAssignmentValidation(t *testing.T) {
	e := echo.New()
	h := NewAssignmentHandler(repository.NewMemoryStore(), nil)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing department", createBody("", "2nd Year", []int{1})},
		{"missing year", createBody("CSE", "", []int{1})},
		{"empty selection", createBody("CSE", "2nd Year", nil)},
		{"seat out of range", createBody("CSE", "2nd Year", []int{161})},
		{"unknown department", createBody("EEE", "2nd Year", []int{1})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(t, e, http.MethodPost, "/v1/events/1/assignments", tc.body)
			c.SetPath("/v1/events/:id/assignments")
			c.SetParamNames("id")
			c.SetParamValues("1")
			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateAssignmentConflict(t *testing.T) {
	e := echo.New()
	store := repository.NewMemoryStore()
	h := NewAssignmentHandler(store, nil)
	seedAssignment(t, store, "CSE", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	// Partial overlap: the whole request is rejected and the conflicting
	// seats are reported.
	c, rec := newContext(t, e, http.MethodPost, "/v1/events/1/assignments", createBody("ECE", "2nd Year", []int{8, 9, 20}))
	c.SetPath("/v1/events/:id/assignments")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []interface{}{float64(8), float64(9)}, body["conflict_seats"])

	// Seat 20 stays unassigned: the non-overlapping remainder succeeds.
	c, rec = newContext(t, e, http.MethodPost, "/v1/events/1/assignments", createBody("ECE", "2nd Year", []int{20, 21}))
	c.SetPath("/v1/events/:id/assignments")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateAssignmentSeats(t *testing.T) {
	e := echo.New()
	store := repository.NewMemoryStore()
	h := NewAssignmentHandler(store, nil)
	seedAssignment(t, store, "CSE", 1, 2)
	seedAssignment(t, store, "ECE", 30)

	// Keeping one of its own seats is not a conflict.
	c, rec := newContext(t, e, http.MethodPut, "/v1/assignments/1/seats", map[string]interface{}{"seat_numbers": []int{2, 17}})
	c.SetPath("/v1/assignments/:id/seats")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateSeats(c))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []interface{}{float64(2), float64(17)}, body["seat_numbers"])
	assert.Equal(t, []interface{}{float64(1), float64(2)}, body["row_numbers"])

	// Overlapping another assignment fails with 409.
	c, rec = newContext(t, e, http.MethodPut, "/v1/assignments/1/seats", map[string]interface{}{"seat_numbers": []int{30}})
	c.SetPath("/v1/assignments/:id/seats")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateSeats(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteAssignment(t *testing.T) {
	e := echo.New()
	store := repository.NewMemoryStore()
	h := NewAssignmentHandler(store, nil)
	seedAssignment(t, store, "CSE", 10, 11)

	c, rec := newContext(t, e, http.MethodDelete, "/v1/assignments/1", nil)
	c.SetPath("/v1/assignments/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Freed seats are assignable immediately.
	c, rec = newContext(t, e, http.MethodPost, "/v1/events/1/assignments", createBody("ECE", "2nd Year", []int{10, 11}))
	c.SetPath("/v1/events/:id/assignments")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Deleting the missing id again reports not-found, not a fatal error.
	c, rec = newContext(t, e, http.MethodDelete, "/v1/assignments/1", nil)
	c.SetPath("/v1/assignments/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAssignments(t *testing.T) {
	e := echo.New()
	store := repository.NewMemoryStore()
	h := NewAssignmentHandler(store, nil)
	seedAssignment(t, store, "CSE", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	seedAssignment(t, store, "ECE", 20, 21)

	c, rec := newContext(t, e, http.MethodGet, "/v1/events/1/assignments?venue_type=seminar-hall", nil)
	c.SetPath("/v1/events/:id/assignments")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(148), stats["available"])
	assert.Equal(t, float64(12), stats["assigned"])
	assert.Len(t, body["assignments"], 2)
}
