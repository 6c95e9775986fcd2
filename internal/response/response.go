package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the standard error response shape. The same shape serves
// 400 (bad query parameters) and 404 (unmatched route).
type ErrorBody struct {
	Message    string `json:"message"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
	Server     string `json:"server"`
}

// Health is the body returned by the health endpoint.
type Health struct {
	Status            string `json:"status"`
	Timestamp         string `json:"timestamp"`
	ActiveConnections int64  `json:"activeConnections"`
	Server            string `json:"server"`
}

// requestLine returns "<METHOD> <path>" for the current request.
func requestLine(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Method + " " + c.Request().URL.Path
}

// Error sends a JSON error response using ErrorBody.
func Error(c echo.Context, status int, message, errDetail, server string) error {
	return c.JSON(status, ErrorBody{
		Message:    message,
		Error:      errDetail,
		StatusCode: status,
		Server:     server,
	})
}

// BadRequest sends 400 with the given message.
func BadRequest(c echo.Context, message, server string) error {
	return Error(c, http.StatusBadRequest, message, "Bad Request", server)
}

// NotFound sends 404 for an unmatched route, e.g. {"message":"Cannot GET /x"}.
func NotFound(c echo.Context, server string) error {
	return Error(c, http.StatusNotFound, "Cannot "+requestLine(c), "Not Found", server)
}

// Healthy sends the 200 health body with the current stream count.
func Healthy(c echo.Context, activeConnections int64, server string) error {
	return c.JSON(http.StatusOK, Health{
		Status:            "healthy",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		ActiveConnections: activeConnections,
		Server:            server,
	})
}
