package generate

import (
	"codeberg.org/hairswap/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the hairstyle generation route
func RegisterRoutes(router *gin.RouterGroup, ledger CreditLedger, generator Generator, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, auth.AuthMiddleware(), Handler(ledger, generator))
	router.POST("/generate-hairstyle", handlers...)
}
