package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/user"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/email"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/jwt"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/oauth"
	"github.com/talentra-hq/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 15 * time.Minute

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	auth.RefreshTokenRepository
	jwt.Service
	emailService  email.EmailService
	googleService oauth.GoogleService

	now func() time.Time
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepo,
		EmployeeRepository:     employeeRepo,
		RefreshTokenRepository: refreshTokenRepo,
		Service:                jwtService,
		emailService:           emailService,
		googleService:          googleService,
		now:                    time.Now,
	}
}

// userResponse decorates the account with its linked employee profile.
func (a *AuthServiceImpl) userResponse(ctx context.Context, u user.User) (auth.UserResponse, *string) {
	resp := auth.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	}

	emp, err := a.EmployeeRepository.GetByUserID(ctx, u.ID)
	if err != nil || emp == nil {
		return resp, nil
	}

	name := emp.FullName()
	resp.EmployeeID = &emp.ID
	resp.Name = &name
	resp.AvatarURL = emp.AvatarURL
	resp.Designation = emp.Designation
	resp.Department = emp.Department

	return resp, &emp.ID
}

// issueSession generates a token pair and persists the refresh session.
func (a *AuthServiceImpl) issueSession(ctx context.Context, u user.User) (auth.LoginResponse, error) {
	var resp auth.LoginResponse

	userResp, employeeID := a.userResponse(ctx, u)
	resp.User = userResp

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var err error

		resp.AccessToken, resp.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(u.ID, u.Email, employeeID, u.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		resp.RefreshToken, resp.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(u.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.RefreshTokenRepository.Store(txCtx, auth.RefreshToken{
			UserID:    u.ID,
			Token:     resp.RefreshToken,
			ExpiresAt: time.Unix(resp.RefreshTokenExpiresAt, 0),
		})
		if err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}

		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return resp, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil || userData.PasswordHash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueSession(ctx, *userData)
}

// Refresh implements auth.AuthService. Refresh tokens rotate: the presented
// token is revoked and a fresh pair is issued.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	session, err := a.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load refresh session: %w", err)
	}
	if session == nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if session.RevokedAt != nil {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}
	if a.now().After(session.ExpiresAt) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	userData, err := a.UserRepository.GetByID(ctx, session.UserID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return a.issueSession(ctx, userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string, accessToken string) error {
	if refreshToken != "" {
		if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	return nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ForgotPassword implements auth.AuthService. Unknown addresses succeed
// silently so the endpoint cannot be used to enumerate accounts.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil {
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	expiresAt := a.now().Add(resetCodeTTL)
	err = a.RefreshTokenRepository.StoreResetCode(ctx, auth.ResetCode{
		UserID:    userData.ID,
		Code:      code,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	return a.emailService.SendResetCode(userData.Email, code, expiresAt.Format("15:04 MST"))
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil {
		return auth.ErrInvalidResetCode
	}

	code, err := a.RefreshTokenRepository.GetResetCode(ctx, userData.ID, req.Code)
	if err != nil {
		return fmt.Errorf("failed to load reset code: %w", err)
	}
	if code == nil || code.UsedAt != nil {
		return auth.ErrInvalidResetCode
	}
	if a.now().After(code.ExpiresAt) {
		return auth.ErrResetCodeExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.UserRepository.UpdatePassword(txCtx, userData.ID, string(hash)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if err := a.RefreshTokenRepository.MarkResetCodeUsed(txCtx, code.ID); err != nil {
			return fmt.Errorf("failed to mark reset code used: %w", err)
		}
		return nil
	})
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.UserResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	resp, _ := a.userResponse(ctx, userData)
	return resp, nil
}

// LoginWithGoogle implements auth.AuthService. First-time Google sign-ins
// get a bare employee-role account; HR links the employee record later.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData == nil {
		created, err := a.UserRepository.Create(ctx, user.User{
			Email:         info.Email,
			Role:          user.RoleEmployee,
			EmailVerified: true,
			GoogleID:      &info.GoogleID,
		})
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
		userData = &created
	} else if userData.GoogleID == nil {
		if err := a.UserRepository.LinkGoogleID(ctx, userData.ID, info.GoogleID); err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueSession(ctx, *userData)
}
