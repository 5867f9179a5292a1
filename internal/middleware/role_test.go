package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRole(t *testing.T, role interface{}, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	require.NoError(t, RequireRole(allowed...)(next)(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	assert.Equal(t, http.StatusOK, runRole(t, "FACULTY", "FACULTY").Code)
	assert.Equal(t, http.StatusOK, runRole(t, "STUDENT", "FACULTY", "STUDENT").Code)
	assert.Equal(t, http.StatusForbidden, runRole(t, "STUDENT", "FACULTY").Code)
	assert.Equal(t, http.StatusForbidden, runRole(t, nil, "FACULTY").Code)
	assert.Equal(t, http.StatusForbidden, runRole(t, 123, "FACULTY").Code)
}
