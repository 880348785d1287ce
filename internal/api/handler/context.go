package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermanagement/user-service/internal/api/middleware"
)

// callerUsername extracts the authenticated username injected by the Auth
// middleware. An empty value means the middleware did not run (or the route
// is misconfigured); reject with 401 before any service call.
func callerUsername(c echo.Context) (string, error) {
	username, _ := c.Get(middleware.ContextUsernameKey).(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
