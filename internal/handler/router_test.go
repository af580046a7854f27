//go:build unit

package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stadium-scheduler/internal/handler"
	"stadium-scheduler/internal/handler/api"
	"stadium-scheduler/internal/handler/middleware"
	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/tests/common/builder"
	commandsmock "stadium-scheduler/tests/mock/commands"
	queriesmock "stadium-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *commandsmock.MockReservationCommands, *commandsmock.MockFollowCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	resCmds := commandsmock.NewMockReservationCommands(ctrl)
	followCmds := commandsmock.NewMockFollowCommands(ctrl)
	q := queriesmock.NewMockReservationQueries(ctrl)

	cfg := config.NewTestConfig()
	cfg.Server.RateLimitRPS = 0.001
	cfg.Server.RateLimitBurst = 1

	engine := gin.New()
	handler.NewRouter(engine, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		api.NewReservationHandler(resCmds, q, builder.Tokyo()),
		api.NewFollowHandler(followCmds))
	return engine, resCmds, followCmds
}

func serve(engine *gin.Engine, method, path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if user != "" {
		req.Header.Set(middleware.UserIDHeader, user)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	t.Run("health and metrics are public", func(t *testing.T) {
		engine, _, _ := newTestRouter(t)

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health", "").Code)
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/metrics", "").Code)
	})

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		engine, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", middleware.UserIDHeader)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Less(t, w.Code, http.StatusMultipleChoices)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("write routes need the acting user", func(t *testing.T) {
		engine, _, _ := newTestRouter(t)

		paths := []struct{ method, path string }{
			{http.MethodPost, "/api/reservations"},
			{http.MethodPost, "/api/reservations/pinned"},
			{http.MethodDelete, "/api/reservations/" + uuid.NewString()},
			{http.MethodPost, "/api/clubs/" + uuid.NewString() + "/followers"},
			{http.MethodDelete, "/api/clubs/" + uuid.NewString() + "/followers"},
		}
		for _, p := range paths {
			w := serve(engine, p.method, p.path, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		}
	})

	t.Run("write routes are rate limited per user", func(t *testing.T) {
		engine, _, followCmds := newTestRouter(t)
		user := uuid.NewString()
		clubID := uuid.New()
		followCmds.EXPECT().FollowClub(gomock.Any(), gomock.Any(), clubID).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) error { return nil }).Times(1)

		path := "/api/clubs/" + clubID.String() + "/followers"
		assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodPost, path, user).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, path, user).Code)
	})
}
