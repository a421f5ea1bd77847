// Package binding decodes request bodies for the desk handlers.
package binding

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Bind decodes the request into dst. Errors that already carry a status,
// such as a 413 raised while the body is read, are returned unchanged; any
// other failure becomes a 400.
func Bind(c echo.Context, dst interface{}) error {
	err := c.Bind(dst)
	if err == nil {
		return nil
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
