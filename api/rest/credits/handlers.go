package credits

import (
	"net/http"

	"codeberg.org/hairswap/server/internal/auth"
	"codeberg.org/hairswap/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// BalanceHandler godoc
// @Summary Get credit balance
// @Description Returns the authenticated user's credit balance. First-time users are granted one free credit.
// @Tags credits
// @Produce json
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/credits/balance [get]
// @Security BearerAuth
func BalanceHandler(ledger BalanceReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		c.JSON(http.StatusOK, BalanceResponse{
			Credits: ledger.GetBalance(c.Request.Context(), userID),
		})
	}
}
