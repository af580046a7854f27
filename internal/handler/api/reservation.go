package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	reqdto "stadium-scheduler/internal/handler/dto/request"
	resdto "stadium-scheduler/internal/handler/dto/response"
	"stadium-scheduler/internal/handler/httperr"
	"stadium-scheduler/internal/handler/middleware"
	"stadium-scheduler/internal/usecase/commands"
	"stadium-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// set when a route is registered without middleware.RequireUser
var errNoUser = errors.New("acting user missing from context")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	loc  *time.Location
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, loc *time.Location) *ReservationHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary Create reservation
// @Description Book a one-hour slot. A canceled booking in the same hour does not block.
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	h.create(c, h.cmds.CreateReservation)
}

// @Summary Create pinned reservation
// @Description Book a weekly slot. Writes this week and next week in one transaction. Any existing booking, canceled or not, blocks.
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/pinned [post]
func (h *ReservationHandler) CreatePinnedReservation(c *gin.Context) {
	h.create(c, h.cmds.CreatePinnedReservation)
}

type createFunc func(ctx context.Context, req commands.CreateReservationRequest) (*commands.ReservationResult, error)

func (h *ReservationHandler) create(c *gin.Context, fn createFunc) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validationDetail(err))
		return
	}

	result, err := fn(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+result.ID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary Cancel reservation
// @Description Cancel a reservation and notify the club's followers. Canceling a pinned booking also cancels next week's instance.
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "Acting user id"
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	canceled, err := h.cmds.CancelReservation(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CancelReservationResponse{Canceled: canceled})
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List stadium reservations
// @Description List one day's reservations (date) or the next N days (days, default 14, max 90)
// @Tags reservations
// @Produce json
// @Param id path string true "Stadium ID"
// @Param date query string false "Day in YYYY-MM-DD"
// @Param days query int false "Number of days from now"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/stadiums/{id}/reservations [get]
func (h *ReservationHandler) ListStadiumReservations(c *gin.Context) {
	stadiumID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stadium id", nil)
		return
	}

	var query reqdto.StadiumReservationsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", validationDetail(bindErr))
		return
	}

	var views []*queries.ReservationView
	if query.HasDate() {
		date, parseErr := query.ParseDate(h.loc)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid date", nil)
			return
		}
		views, err = h.q.ListByStadiumAndDate(c.Request.Context(), stadiumID, date)
	} else {
		views, err = h.q.ListUpcoming(c.Request.Context(), stadiumID, query.Days)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// keeps a nil slice from rendering as "detail": null
func validationDetail(err error) any {
	if fields := httperr.ValidationDetail(err); len(fields) > 0 {
		return fields
	}
	return nil
}
