package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/eduvision/seat-assignment/internal/model"
	"github.com/eduvision/seat-assignment/internal/seating"
	"github.com/eduvision/seat-assignment/internal/venue"
)

// AssignmentRepo provides CRUD operations for seat assignments over MySQL.
// Assignments are stored normalized: a seat_assignments header row plus one
// assignment_seats row per claimed seat. The assignment_seats table carries
// UNIQUE KEY (event_id, venue_type, seat_number), so seat uniqueness is
// enforced transactionally by the database and holds under concurrent
// sessions, not just within a single session's optimistic check.
//
// Expected schema:
//
//	CREATE TABLE seat_assignments (
//	  id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
//	  event_id    BIGINT UNSIGNED NOT NULL,
//	  venue_type  VARCHAR(32)  NOT NULL,
//	  department  VARCHAR(16)  NOT NULL,
//	  year        VARCHAR(16)  NOT NULL,
//	  gender      VARCHAR(16)  NULL,
//	  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	  updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
//	  KEY idx_event_venue (event_id, venue_type)
//	);
//
//	CREATE TABLE assignment_seats (
//	  assignment_id BIGINT UNSIGNED NOT NULL,
//	  event_id      BIGINT UNSIGNED NOT NULL,
//	  venue_type    VARCHAR(32) NOT NULL,
//	  seat_number   INT NOT NULL,
//	  row_number    INT NOT NULL,
//	  UNIQUE KEY uq_event_venue_seat (event_id, venue_type, seat_number),
//	  KEY idx_assignment (assignment_id),
//	  CONSTRAINT fk_assignment FOREIGN KEY (assignment_id)
//	    REFERENCES seat_assignments (id) ON DELETE CASCADE
//	);
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// DB exposes the underlying handle for callers that need transactions.
func (r *AssignmentRepo) DB() *sql.DB { return r.db }

// ListByEvent retrieves all assignments of an event/venue pair, oldest first,
// with their seat and row sets populated.
func (r *AssignmentRepo) ListByEvent(ctx context.Context, eventID uint64, venueType string) ([]model.SeatAssignment, error) {
	const q = `SELECT id, event_id, venue_type, department, year, gender, created_at, updated_at
	           FROM seat_assignments
	           WHERE event_id = ? AND venue_type = ?
	           ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, eventID, venueType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatAssignment
	byID := make(map[uint64]int)
	for rows.Next() {
		var a model.SeatAssignment
		var gender sql.NullString
		if err := rows.Scan(
			&a.ID, &a.EventID, &a.VenueType, &a.Department, &a.Year,
			&gender, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if gender.Valid {
			a.Gender = gender.String
		}
		byID[a.ID] = len(result)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	const seatQ = `SELECT s.assignment_id, s.seat_number, s.row_number
	               FROM assignment_seats s
	               JOIN seat_assignments a ON a.id = s.assignment_id
	               WHERE a.event_id = ? AND a.venue_type = ?
	               ORDER BY s.seat_number`
	srows, err := r.db.QueryContext(ctx, seatQ, eventID, venueType)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var id uint64
		var seat, row int
		if err := srows.Scan(&id, &seat, &row); err != nil {
			return nil, err
		}
		if i, ok := byID[id]; ok {
			result[i].SeatNumbers = append(result[i].SeatNumbers, seat)
			result[i].RowNumbers = appendRow(result[i].RowNumbers, row)
		}
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single assignment with its seats, or
// ErrAssignmentNotFound.
func (r *AssignmentRepo) GetByID(ctx context.Context, id uint64) (*model.SeatAssignment, error) {
	const q = `SELECT id, event_id, venue_type, department, year, gender, created_at, updated_at
	           FROM seat_assignments WHERE id = ?`
	var a model.SeatAssignment
	var gender sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.EventID, &a.VenueType, &a.Department, &a.Year,
		&gender, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if gender.Valid {
		a.Gender = gender.String
	}

	const seatQ = `SELECT seat_number, row_number FROM assignment_seats
	               WHERE assignment_id = ? ORDER BY seat_number`
	rows, err := r.db.QueryContext(ctx, seatQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var seat, row int
		if err := rows.Scan(&seat, &row); err != nil {
			return nil, err
		}
		a.SeatNumbers = append(a.SeatNumbers, seat)
		a.RowNumbers = appendRow(a.RowNumbers, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the header row and all seat rows in one transaction. When
// any seat collides with the unique key the transaction rolls back and
// ErrSeatTaken is returned, so a partial overlap never leaves partial state.
func (r *AssignmentRepo) Create(ctx context.Context, a *model.SeatAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO seat_assignments (event_id, venue_type, department, year, gender)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, a.EventID, a.VenueType, a.Department, a.Year, nullable(a.Gender))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	if err := insertSeatsTx(ctx, tx, a.ID, a.EventID, a.VenueType, a.SeatNumbers); err != nil {
		return err
	}

	// Read back timestamps populated by the database.
	const sel = `SELECT created_at, updated_at FROM seat_assignments WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateSeats replaces the seat set of an existing assignment. The old seat
// rows are deleted first inside the transaction, so the assignment's own
// prior seats never conflict with the new set.
func (r *AssignmentRepo) UpdateSeats(ctx context.Context, id uint64, seatNumbers []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const sel = `SELECT event_id, venue_type FROM seat_assignments WHERE id = ? FOR UPDATE`
	var eventID uint64
	var venueType string
	if err := tx.QueryRowContext(ctx, sel, id).Scan(&eventID, &venueType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAssignmentNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM assignment_seats WHERE assignment_id = ?`, id); err != nil {
		return err
	}
	if err := insertSeatsTx(ctx, tx, id, eventID, venueType, seatNumbers); err != nil {
		return err
	}
	const touch = `UPDATE seat_assignments SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := tx.ExecContext(ctx, touch, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Delete removes an assignment; its seat rows go with it via ON DELETE
// CASCADE, freeing the seats for reassignment immediately.
func (r *AssignmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM seat_assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// insertSeatsTx bulk-inserts seat rows for one assignment. The per-seat row
// number is always recomputed from the venue geometry.
func insertSeatsTx(ctx context.Context, tx *sql.Tx, assignmentID, eventID uint64, venueType string, seats []int) error {
	if len(seats) == 0 {
		return nil
	}
	cfg, ok := venue.Get(venueType)
	if !ok {
		return seating.ErrUnknownVenue
	}
	query := `INSERT INTO assignment_seats (assignment_id, event_id, venue_type, seat_number, row_number) VALUES `
	args := make([]interface{}, 0, len(seats)*5)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, assignmentID, eventID, venueType, s, venue.RowOf(s, cfg.SeatsPerRow))
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isDuplicate(err) {
			return ErrSeatTaken
		}
		return err
	}
	return nil
}

// isDuplicate reports whether err is a MySQL duplicate-key violation (1062).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return strings.Contains(strings.ToLower(err.Error()), "1062")
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func appendRow(rows []int, row int) []int {
	for _, r := range rows {
		if r == row {
			return rows
		}
	}
	return append(rows, row)
}
