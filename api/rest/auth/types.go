package auth

import "codeberg.org/hairswap/server/hairswap/users"

// AuthResponse is returned after a successful OAuth callback
type AuthResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// UserResponse wraps a user profile
type UserResponse struct {
	User *users.User `json:"user"`
}
