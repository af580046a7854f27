package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"stadium-scheduler/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows the acting-user header and exposes Location,
// whatever the configured lists say; the reservation API does not work without them.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withAll(cfg.AllowMethods, http.MethodGet, http.MethodPost, http.MethodDelete),
		AllowHeaders:     withAll(cfg.AllowHeaders, UserIDHeader, "Content-Type"),
		ExposeHeaders:    withAll(cfg.ExposeHeaders, "Location"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"AllowOrigins", corsCfg.AllowOrigins,
		"AllowHeaders", corsCfg.AllowHeaders)
	return cors.New(corsCfg)
}

func withAll(list []string, required ...string) []string {
	out := slices.Clone(list)
	for _, r := range required {
		if !slices.ContainsFunc(out, func(s string) bool { return http.CanonicalHeaderKey(s) == http.CanonicalHeaderKey(r) }) {
			out = append(out, r)
		}
	}
	return out
}
