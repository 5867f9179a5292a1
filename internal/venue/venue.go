// Package venue holds the static geometry of the supported venues and the
// catalogs used to validate assignment requests. All data here is immutable
// lookup material; nothing in this package touches the database.
package venue

import "sort"

// Config describes the fixed seat grid of one venue. Seats are numbered
// 1..TotalSeats left to right, front to back. TotalSeats may be smaller than
// Rows*SeatsPerRow, in which case the trailing positions of the last row do
// not exist.
type Config struct {
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	TotalSeats  int    `json:"total_seats"`
}

// Venue type keys. These are the only values accepted for venue_type.
const (
	SeminarHall = "seminar-hall"
	SolarShade  = "solar-shade"
)

// configs maps a venue type key to its geometry.
var configs = map[string]Config{
	SeminarHall: {Name: "Seminar Hall", Rows: 10, SeatsPerRow: 16, TotalSeats: 160},
	SolarShade:  {Name: "Solar Shade", Rows: 20, SeatsPerRow: 13, TotalSeats: 250},
}

// Get returns the configuration for a venue type. The second return value is
// false when the venue type is unknown; callers must guard it.
func Get(venueType string) (Config, bool) {
	cfg, ok := configs[venueType]
	return cfg, ok
}

// Types returns the list of known venue type keys in stable order.
func Types() []string {
	out := make([]string, 0, len(configs))
	for k := range configs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RowOf converts a 1-based seat number into its 1-based row number for a grid
// with the given seats per row.
func RowOf(seatNumber, seatsPerRow int) int {
	return (seatNumber-1)/seatsPerRow + 1
}

// RowsFor returns the distinct, ascending row numbers covered by the given
// seat numbers. The result is recomputed from scratch so it is always exactly
// the row set implied by the seats.
func RowsFor(seatNumbers []int, seatsPerRow int) []int {
	seen := make(map[int]struct{}, len(seatNumbers))
	for _, s := range seatNumbers {
		seen[RowOf(s, seatsPerRow)] = struct{}{}
	}
	rows := make([]int, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// InBounds reports whether a seat number exists in the venue.
func (c Config) InBounds(seatNumber int) bool {
	return seatNumber >= 1 && seatNumber <= c.TotalSeats
}
