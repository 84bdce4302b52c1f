package middleware

import (
	"log/slog"

	"sitlink/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy from config. Credentials stay
// enabled because the access token rides in a cookie for browser clients.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS policy configured", "allow_origins", cfg.AllowOrigins)
	return cors.New(policy)
}
