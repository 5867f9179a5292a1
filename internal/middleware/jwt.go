// Package middleware provides the HTTP request plumbing shared by all
// routes: bearer-token verification, role enforcement, Redis-backed rate
// limiting and response caching.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// signed with HS256 and injects its claims into the request context. Tokens
// are issued by the campus auth provider; this service only verifies them.
//
// Claims stored on the context:
//
//	user_id    – subject claim (sub)
//	role       – FACULTY or STUDENT
//	department – student's department code (students only)
//	year       – student's year label (students only)
//	gender     – student's gender label (students only)
//
// The profile claims become the viewer context for seat-map resolution; they
// are threaded explicitly into handlers rather than read from global state.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])
			for _, key := range []string{"department", "year", "gender"} {
				if v, ok := claims[key].(string); ok && v != "" {
					c.Set(key, v)
				}
			}
			return next(c)
		}
	}
}
