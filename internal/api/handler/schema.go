package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// pageResponse wraps every listing with its total match count so clients can
// paginate without a second query.
type pageResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"total_count"`
}

// statusResponse acknowledges mutations that return no entity.
type statusResponse struct {
	Status string `json:"status"`
}

// listFilter reads the shared listing query parameters:
// all, order_created, limit, offset.
func listFilter(c echo.Context) ports.ListFilter {
	var f ports.ListFilter
	f.All, _ = strconv.ParseBool(c.QueryParam("all"))
	f.OrderCreated, _ = strconv.ParseBool(c.QueryParam("order_created"))
	f.Limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	f.Offset, _ = strconv.ParseInt(c.QueryParam("offset"), 10, 64)
	return f
}
