package auth

import "context"

// AuthService is the boundary layer that turns credentials into
// tokens. Everything past this layer works with an explicit,
// already-authenticated acting user.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// LoginWithGoogle exchanges an OAuth code for tokens, matching the
	// Google account email against a staff member.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
}
