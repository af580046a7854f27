package httperr

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"stadium-scheduler/internal/domain/club"
	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation errors name fields the way clients send them.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError is one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationDetail lists the failed rules of a binding error, nil for any other error.
func ValidationDetail(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}
	return out
}

// SlotConflictDetail tells the client which slot was refused and under which rule.
type SlotConflictDetail struct {
	Policy    string    `json:"policy"`
	SlotStart time.Time `json:"slotStart"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its HTTP status and aborts the request.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)

	var detail any
	var conflict *commands.SlotConflictError
	if errors.As(err, &conflict) {
		detail = SlotConflictDetail{Policy: conflict.Policy.String(), SlotStart: conflict.SlotStart}
	}

	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrStadiumNotFound):
		return http.StatusNotFound, "Stadium not found"
	case errs.Is(err, errs.ErrClubNotFound):
		return http.StatusNotFound, "Club not found"
	case errs.Is(err, errs.ErrReservationNotFound):
		return http.StatusNotFound, "Reservation not found"
	case errs.Is(err, errs.ErrSlotConflict):
		return http.StatusConflict, "Time slot is already taken"
	case errs.Is(err, errs.ErrAlreadyFollowing):
		return http.StatusConflict, "Already following this club"
	case errs.Is(err, errs.ErrInvalidRange),
		errs.Is(err, reservation.ErrMissingStadium),
		errs.Is(err, reservation.ErrMissingUser),
		errs.Is(err, reservation.ErrMissingTime),
		errs.Is(err, club.ErrMissingClub),
		errs.Is(err, club.ErrMissingFollower):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
