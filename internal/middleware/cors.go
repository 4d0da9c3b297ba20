package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser clients from the given origins. "*" allows any origin
// without credentials; an empty list rejects every cross-origin request.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}

	switch {
	case slices.Contains(allowedOrigins, "*"):
		cfg.AllowAllOrigins = true
	case len(allowedOrigins) == 0:
		cfg.AllowOriginFunc = func(string) bool { return false }
	default:
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
