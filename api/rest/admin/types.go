package admin

import "context"

// CreditGranter adds credits to a user's balance
type CreditGranter interface {
	AddCredits(ctx context.Context, userID string, amount int) bool
}

// GrantRequest is the request body for granting credits
type GrantRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Amount int    `json:"amount" binding:"required,gt=0"`
}

// GrantResponse confirms a credit grant
type GrantResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Amount  int    `json:"amount"`
}
