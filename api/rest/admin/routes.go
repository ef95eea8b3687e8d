package admin

import (
	"codeberg.org/hairswap/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers admin routes
func RegisterRoutes(router *gin.RouterGroup, ledger CreditGranter) {
	group := router.Group("/admin")
	group.Use(auth.AuthMiddleware(), auth.AdminMiddleware())

	group.POST("/credits/grant", GrantCreditsHandler(ledger))
}
