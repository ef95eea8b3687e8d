package credits

import "context"

// BalanceReader exposes the credit balance for display
type BalanceReader interface {
	GetBalance(ctx context.Context, userID string) int
}

// BalanceResponse is the credit balance payload
type BalanceResponse struct {
	Credits int `json:"credits"`
}
