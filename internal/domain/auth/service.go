package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh validates and rotates a refresh token, returning a new pair.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)

	// Logout revokes the refresh token and blacklists the access token.
	Logout(ctx context.Context, refreshToken string, accessToken string) error

	// ForgotPassword emails a reset code. It succeeds silently for unknown
	// addresses so the endpoint cannot be used to probe accounts.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	// Me returns the caller's user plus linked employee decoration.
	Me(ctx context.Context) (UserResponse, error)

	// LoginWithGoogle exchanges a Google OAuth code for a session.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
}

// RefreshTokenRepository persists refresh sessions and reset codes.
type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	Get(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token string) error

	StoreResetCode(ctx context.Context, code ResetCode) error
	GetResetCode(ctx context.Context, userID string, code string) (*ResetCode, error)
	MarkResetCodeUsed(ctx context.Context, id string) error
}
