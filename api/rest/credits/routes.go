package credits

import (
	"codeberg.org/hairswap/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers credit balance routes
func RegisterRoutes(router *gin.RouterGroup, ledger BalanceReader) {
	group := router.Group("/credits")
	group.Use(auth.AuthMiddleware())

	group.GET("/balance", BalanceHandler(ledger))
}
