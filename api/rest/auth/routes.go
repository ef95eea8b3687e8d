package auth

import (
	"codeberg.org/hairswap/server/hairswap/users"
	"codeberg.org/hairswap/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers authentication routes
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	group := router.Group("/auth")

	group.GET("/:provider", BeginAuthHandler())
	group.GET("/:provider/callback", CallbackHandler(userRepo))
	group.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(userRepo))
}
