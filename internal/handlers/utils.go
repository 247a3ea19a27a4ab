package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrMissingUserID is returned when a request carries no usable user id
var ErrMissingUserID = fmt.Errorf("missing or invalid user id")

// getUserIDParam extracts and parses the user_id query parameter.
// Returns ErrMissingUserID if the parameter is absent or not a UUID.
func getUserIDParam(c echo.Context) (uuid.UUID, error) {
	raw := c.QueryParam("user_id")
	if raw == "" {
		return uuid.UUID{}, ErrMissingUserID
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, ErrMissingUserID
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
