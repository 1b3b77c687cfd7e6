package middleware

// identity.go defines helpers shared across middleware files: the sentinel
// errors surfaced by token parsing and the user-id accessor other layers use
// to read what JWTAuth / OptionalAuth stored in the context.

import (
	"errors"

	"github.com/labstack/echo/v4"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// UserID returns the authenticated user's id from the Echo context, or ""
// when the request is anonymous.
func UserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}

// rateKeyUserID is the identity used in rate-limit keys; anonymous callers
// share one bucket per strategy dimension.
func rateKeyUserID(c echo.Context) string {
	if id := UserID(c); id != "" {
		return id
	}
	return "anon"
}
