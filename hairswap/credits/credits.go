package credits

import (
	"context"
	"errors"

	"codeberg.org/hairswap/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new credit ledger repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetBalance returns the user's current credit balance.
//
// A user with no balance record gets one created with the first-use grant.
// This read is advisory only: any backing-store error is swallowed and the
// user is treated as having 0 credits, so the request path never crashes on
// a balance lookup. TryDeduct remains the authoritative gate.
func (r *Repository) GetBalance(ctx context.Context, userID string) int {
	var balance int

	err := r.db.QueryRow(ctx, queryGetCredits, userID).Scan(&balance)

	if err == nil {
		return balance
	}

	if errors.Is(err, pgx.ErrNoRows) {
		if _, err := r.db.Exec(ctx, queryInitializeCredits, userID, initialGrant); err != nil {
			logger.ErrorErr(err, "failed to initialize user credits", "user_id", userID)
			return 0
		}

		return initialGrant
	}

	logger.ErrorErr(err, "failed to get user credits", "user_id", userID)
	return 0
}

// TryDeduct atomically decrements the user's balance by one.
//
// The decrement happens in a single database function call so that two
// concurrent requests from the same user cannot both spend the last credit.
// No in-process locking: the database owns the credits >= 0 invariant.
func (r *Repository) TryDeduct(ctx context.Context, userID string) DeductResult {
	var ok bool

	err := r.db.QueryRow(ctx, queryUseCredit, userID).Scan(&ok)
	if err != nil {
		logger.ErrorErr(err, "failed to use credit", "user_id", userID)
		return DeductResult{Success: false, Reason: "failed to use credit"}
	}

	if !ok {
		return DeductResult{Success: false, Reason: "insufficient credits"}
	}

	return DeductResult{Success: true}
}

// AddCredits atomically increments the user's balance by amount.
// Reserved for payment integration; amount must be a positive integer.
func (r *Repository) AddCredits(ctx context.Context, userID string, amount int) bool {
	if amount <= 0 {
		return false
	}

	var ok bool

	err := r.db.QueryRow(ctx, queryAddCredits, userID, amount).Scan(&ok)
	if err != nil {
		logger.ErrorErr(err, "failed to add credits", "user_id", userID, "amount", amount)
		return false
	}

	return ok
}
