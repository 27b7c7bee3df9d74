package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error codes. Clients key off these; the message is
// for humans and may change.
const (
	CodeValidation   = "validation_error"
	CodeAlreadyLiked = "already_liked"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeUnauthorized = "unauthorized"
	CodeRateLimited  = "rate_limited"
	CodeInternal     = "internal_error"
)

// Response is the JSON body returned for every failed request.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Code: code, Message: message})
}

// Internal logs the underlying error server-side and returns a generic 500
// body. Store errors are never echoed to clients.
func Internal(c *gin.Context, err error, message string) {
	slog.Error(message, "error", err, "path", c.Request.URL.Path)
	JSON(c, http.StatusInternalServerError, CodeInternal, message)
}
