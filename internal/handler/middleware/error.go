package middleware

import (
	"log/slog"
	"net/http"

	"stadium-scheduler/internal/handler/httperr"
	"stadium-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached when nothing was written.
// Public errors carry a ready httperr.Response; private ones are classified here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			if !c.Writer.Written() && c.Writer.Status() != http.StatusOK {
				c.Status(c.Writer.Status())
				c.Writer.WriteHeaderNow()
			}
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status, msg := httperr.Classify(last.Err)
		if status >= http.StatusInternalServerError {
			slog.Error("unhandled request error",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, 12))
		}
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"user_id", c.GetHeader(UserIDHeader))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
