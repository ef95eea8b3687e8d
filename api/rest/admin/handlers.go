package admin

import (
	"fmt"
	"net/http"

	"codeberg.org/hairswap/server/internal/errors"
	"codeberg.org/hairswap/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// GrantCreditsHandler godoc
// @Summary Grant credits to a user
// @Description Atomically adds credits to a user's balance. Admin only. This is the hook for payment integration.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantRequest true "Grant"
// @Success 200 {object} GrantResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/admin/credits/grant [post]
// @Security BearerAuth
func GrantCreditsHandler(ledger CreditGranter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GrantRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !ledger.AddCredits(c.Request.Context(), req.UserID, req.Amount) {
			errors.InternalError(c, "failed to grant credits",
				fmt.Errorf("add_credits rejected grant for user %s", req.UserID))
			return
		}

		logger.Info("credits granted",
			"user_id", req.UserID,
			"amount", req.Amount,
			"granted_by", c.GetString("user_id"),
		)

		c.JSON(http.StatusOK, GrantResponse{
			Success: true,
			UserID:  req.UserID,
			Amount:  req.Amount,
		})
	}
}
