package handler // handler defines http handlers for the seat-assignment API

import (
	"github.com/labstack/echo/v4"

	"github.com/eduvision/seat-assignment/internal/seating"
)

// Roles accepted on protected routes. Tokens are issued by the external auth
// provider; this service only reads the role claim.
const (
	RoleFaculty = "FACULTY"
	RoleStudent = "STUDENT"
)

// getRole returns the role claim stored by the JWT middleware, or "".
func getRole(c echo.Context) string {
	if s, ok := c.Get("role").(string); ok {
		return s
	}
	return ""
}

// viewerFromContext builds the student viewer context from profile claims
// stored by the JWT middleware. Faculty get a nil viewer (unredacted mode).
// Students with an incomplete profile are rejected by the caller.
func viewerFromContext(c echo.Context) *seating.ViewerContext {
	if getRole(c) != RoleStudent {
		return nil
	}
	v := &seating.ViewerContext{}
	if s, ok := c.Get("department").(string); ok {
		v.Department = s
	}
	if s, ok := c.Get("year").(string); ok {
		v.Year = s
	}
	if s, ok := c.Get("gender").(string); ok {
		v.Gender = s
	}
	return v
}
