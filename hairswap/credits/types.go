package credits

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// number of free credits granted on first balance query
const initialGrant = 1

// handles credit balance database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a user's credit balance record
type UserCredit struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// result of an atomic credit deduction attempt
type DeductResult struct {
	Success bool
	Reason  string
}
