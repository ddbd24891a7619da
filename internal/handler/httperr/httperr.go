package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkspot/internal/pkg/errs"
)

const stackLines = 12

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError writes {"error": msg} and keeps err on the gin context for logging.
// Server-side failures are logged with a trimmed stack; the client only sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	} else if status >= http.StatusInternalServerError {
		slog.Error(msg,
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines))
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
