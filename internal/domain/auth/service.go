package auth

import "context"

type AuthService interface {
	// Login authenticates an employee by NIP and password.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
