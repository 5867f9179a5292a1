package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eduvision/seat-assignment/internal/model"
)

func sampleAssignments() []model.SeatAssignment {
	return []model.SeatAssignment{
		{ID: 1, Department: "CSE", Year: "2nd Year", SeatNumbers: []int{1, 2, 3}},
		{ID: 2, Department: "ECE", Year: "2nd Year", Gender: "Girls", SeatNumbers: []int{10, 11}},
	}
}

func TestResolveFacultyMode(t *testing.T) {
	as := sampleAssignments()

	r := Resolve(1, as, nil, nil)
	assert.Equal(t, AssignedVisible, r.State)
	assert.Equal(t, "CSE", r.Department)

	r = Resolve(50, as, nil, nil)
	assert.Equal(t, Available, r.State)
	assert.Empty(t, r.Department)
}

func TestResolveSelectedPrecedence(t *testing.T) {
	as := sampleAssignments()
	sel := NewSelection("CSE", "2nd Year")
	sel.seats[50] = struct{}{}
	sel.seats[1] = struct{}{}

	// A selected seat is always shown as selected, even over an assignment.
	assert.Equal(t, Selected, Resolve(50, as, sel, nil).State)
	assert.Equal(t, Selected, Resolve(1, as, sel, nil).State)
}

func TestResolveStudentEligibility(t *testing.T) {
	as := sampleAssignments()

	// Gender-unset assignment is eligible for any gender in the group.
	boys := &ViewerContext{Department: "CSE", Year: "2nd Year", Gender: "Boys"}
	girls := &ViewerContext{Department: "CSE", Year: "2nd Year", Gender: "Girls"}
	assert.Equal(t, AssignedEligible, Resolve(1, as, nil, boys).State)
	assert.Equal(t, AssignedEligible, Resolve(1, as, nil, girls).State)

	// Gender-restricted assignment excludes non-matching viewers even when
	// department and year match.
	eceBoys := &ViewerContext{Department: "ECE", Year: "2nd Year", Gender: "Boys"}
	eceGirls := &ViewerContext{Department: "ECE", Year: "2nd Year", Gender: "Girls"}
	assert.Equal(t, AssignedRestricted, Resolve(10, as, nil, eceBoys).State)
	assert.Equal(t, AssignedEligible, Resolve(10, as, nil, eceGirls).State)

	// Wrong department or year restricts regardless of gender.
	wrongYear := &ViewerContext{Department: "CSE", Year: "3rd Year", Gender: "Boys"}
	assert.Equal(t, AssignedRestricted, Resolve(1, as, nil, wrongYear).State)
}

func TestResolveRestrictedHidesDepartment(t *testing.T) {
	as := sampleAssignments()
	viewer := &ViewerContext{Department: "AIDS", Year: "1st Year", Gender: "Boys"}
	r := Resolve(1, as, nil, viewer)
	assert.Equal(t, AssignedRestricted, r.State)
	assert.Empty(t, r.Department, "restricted seats must not reveal the holder")
}

func TestResolveGrid(t *testing.T) {
	as := sampleAssignments()
	grid := ResolveGrid(20, as, nil, nil)
	assert.Len(t, grid, 20)
	assert.Equal(t, AssignedVisible, grid[0].State)  // seat 1
	assert.Equal(t, Available, grid[4].State)        // seat 5
	assert.Equal(t, AssignedVisible, grid[10].State) // seat 11
}
