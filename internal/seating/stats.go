package seating

import (
	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/venue"
)

// DepartmentCount reports how many seats one department holds.
type DepartmentCount struct {
	Department string `json:"department"`
	Assigned   int    `json:"assigned"`
	Hex        string `json:"hex"`
}

// GridStats aggregates seat usage across a venue.
type GridStats struct {
	PerDepartment []DepartmentCount `json:"per_department"`
	Assigned      int               `json:"assigned"`
	Available     int               `json:"available"`
	TotalSeats    int               `json:"total_seats"`
}

// Stats sums assigned seats per department and derives the remaining
// availability. Every cataloged department appears in the result, zero-valued
// when it holds nothing. As long as the no-overlap invariant holds, Available
// never goes negative.
func Stats(assignments []model.SeatAssignment, cfg venue.Config) GridStats {
	counts := make(map[string]int, len(venue.Departments))
	total := 0
	for i := range assignments {
		n := len(assignments[i].SeatNumbers)
		counts[assignments[i].Department] += n
		total += n
	}
	per := make([]DepartmentCount, 0, len(venue.Departments))
	for _, d := range venue.Departments {
		per = append(per, DepartmentCount{Department: d.Code, Assigned: counts[d.Code], Hex: d.Hex})
	}
	return GridStats{
		PerDepartment: per,
		Assigned:      total,
		Available:     cfg.TotalSeats - total,
		TotalSeats:    cfg.TotalSeats,
	}
}
