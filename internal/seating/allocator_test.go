package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/venue"
)

func validRequest() Request {
	return Request{
		EventID:     1,
		VenueType:   venue.SeminarHall,
		Department:  "CSE",
		Year:        "2nd Year",
		SeatNumbers: []int{1, 2, 3},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validRequest()))

	r := validRequest()
	r.Department = ""
	assert.ErrorIs(t, Validate(r), ErrMissingDepartment)

	r = validRequest()
	r.Year = ""
	assert.ErrorIs(t, Validate(r), ErrMissingYear)

	r = validRequest()
	r.SeatNumbers = nil
	assert.ErrorIs(t, Validate(r), ErrEmptySelection)

	r = validRequest()
	r.Department = "EEE"
	assert.ErrorIs(t, Validate(r), ErrUnknownDepartment)

	r = validRequest()
	r.Year = "5th Year"
	assert.ErrorIs(t, Validate(r), ErrUnknownYear)

	r = validRequest()
	r.Gender = "Other"
	assert.ErrorIs(t, Validate(r), ErrUnknownGender)

	r = validRequest()
	r.VenueType = "open-air"
	assert.ErrorIs(t, Validate(r), ErrUnknownVenue)
}

func TestValidateSeatRange(t *testing.T) {
	r := validRequest()
	r.SeatNumbers = []int{0, 80, 161}
	err := Validate(r)
	var rangeErr *SeatRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, []int{0, 161}, rangeErr.Seats)
	assert.Equal(t, 160, rangeErr.TotalSeats)
}

func TestConflicts(t *testing.T) {
	existing := []model.SeatAssignment{
		{ID: 1, Department: "CSE", SeatNumbers: []int{5, 6}},
		{ID: 2, Department: "ECE", SeatNumbers: []int{10}},
	}

	assert.Empty(t, Conflicts([]int{1, 2, 3}, existing, 0))
	assert.Equal(t, []int{5, 6}, Conflicts([]int{4, 5, 6, 7}, existing, 0))
	assert.Equal(t, []int{10}, Conflicts([]int{10}, existing, 0))

	// An update ignores the assignment's own prior seats.
	assert.Empty(t, Conflicts([]int{5, 6, 7}, existing, 1))
	assert.Equal(t, []int{10}, Conflicts([]int{5, 10}, existing, 1))
}

func TestNormalize(t *testing.T) {
	r := validRequest()
	r.SeatNumbers = []int{17, 3, 3, 1, 16}
	seats, rows := Normalize(r)
	assert.Equal(t, []int{1, 3, 16, 17}, seats)
	assert.Equal(t, []int{1, 2}, rows)
}
