package api

import (
	"net/http"

	"stadium-scheduler/internal/handler/httperr"
	"stadium-scheduler/internal/handler/middleware"
	"stadium-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FollowHandler struct {
	cmds commands.FollowCommands
}

func NewFollowHandler(cmds commands.FollowCommands) *FollowHandler {
	return &FollowHandler{cmds: cmds}
}

// @Summary Follow club
// @Description Subscribe the acting user to cancellation notices of the club's stadiums
// @Tags clubs
// @Param X-User-ID header string true "Acting user id"
// @Param id path string true "Club ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/clubs/{id}/followers [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, clubID, ok := h.parse(c)
	if !ok {
		return
	}
	if err := h.cmds.FollowClub(c.Request.Context(), userID, clubID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Unfollow club
// @Description Unsubscribe the acting user. Unfollowing a club that is not followed succeeds.
// @Tags clubs
// @Param X-User-ID header string true "Acting user id"
// @Param id path string true "Club ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clubs/{id}/followers [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, clubID, ok := h.parse(c)
	if !ok {
		return
	}
	if err := h.cmds.UnfollowClub(c.Request.Context(), userID, clubID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FollowHandler) parse(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid club id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, clubID, true
}
