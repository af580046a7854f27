package middleware

import (
	"errors"
	"net/http"

	"stadium-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader is set by the upstream gateway after it authenticated the caller.
const UserIDHeader = "X-User-ID"

const ctxUserIDKey = "user_id"

var errMissingUserHeader = errors.New("missing " + UserIDHeader + " header")

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserHeader, "Unauthorized", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			if err == nil {
				err = errMissingUserHeader
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+UserIDHeader+" header", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
