package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkspot/internal/handler/httperr"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
