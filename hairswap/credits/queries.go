package credits

const (
	queryGetCredits = `
		SELECT credits
		FROM user_credits
		WHERE user_id = $1
	`

	// ON CONFLICT guards against two first-use queries racing on the insert
	queryInitializeCredits = `
		INSERT INTO user_credits (user_id, credits)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	// use_credit is a database function performing a conditional decrement,
	// see scripts/schema.sql; returns false when the balance is already zero
	queryUseCredit = `
		SELECT use_credit($1)
	`

	queryAddCredits = `
		SELECT add_credits($1, $2)
	`
)
