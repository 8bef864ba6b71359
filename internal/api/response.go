package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisxo/ita-api/internal/errors"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondError renders err with the status its code maps to. Internal
// failures are reported generically; the cause goes to the access log.
func respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	_ = c.Error(err)

	detail := "Internal server error"
	if status < http.StatusInternalServerError {
		if appErr, ok := errors.As(err); ok {
			detail = appErr.Message
		}
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}
