package main

import (
	"os"
	"strings"
	"time"

	"codeberg.org/hairswap/server/api/rest/admin"
	"codeberg.org/hairswap/server/api/rest/auth"
	creditsapi "codeberg.org/hairswap/server/api/rest/credits"
	"codeberg.org/hairswap/server/api/rest/generate"
	"codeberg.org/hairswap/server/api/rest/health"
	"codeberg.org/hairswap/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// generation is expensive upstream, keep the per-client rate modest
const generateRateLimit = "10-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(corsMiddleware())
	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		generate.RegisterRoutes(api, server.creditRepo, server.generator, generateRateLimiter())
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		creditsapi.RegisterRoutes(v1, server.creditRepo)
		admin.RegisterRoutes(v1, server.creditRepo)
	}
}

// configures CORS from ALLOWED_ORIGINS (comma-separated), permissive in development
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := os.Getenv("ALLOWED_ORIGINS")

	if origins == "" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}

	return cors.New(cfg)
}

// per-IP rate limit for the generation endpoint, in-memory store
func generateRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(generateRateLimit)
	if err != nil {
		logger.Fatal("invalid rate limit format", "rate", generateRateLimit, "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
