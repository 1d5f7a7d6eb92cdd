package auth

import (
	"context"
)

type AuthService interface {
	// Signup registers the organization's admin account.
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)

	// Login resolves the identity by login ID, then by email, and verifies
	// the password. All failure modes surface as ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Me returns the identity for the given user ID.
	Me(ctx context.Context, userID string) (MeResponse, error)

	// ChangePassword verifies the current password before storing the new
	// one. A wrong current password surfaces as ErrInvalidCredentials.
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}
