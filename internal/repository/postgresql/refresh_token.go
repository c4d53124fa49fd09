package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
)

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Store implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) Store(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := q.Exec(ctx, query, token.UserID, token.Token, token.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// Get implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) Get(ctx context.Context, token string) (*auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.RevokedAt, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`,
		token,
	); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// StoreResetCode implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) StoreResetCode(ctx context.Context, code auth.ResetCode) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO password_reset_codes (user_id, code, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := q.Exec(ctx, query, code.UserID, code.Code, code.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	return nil
}

// GetResetCode implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) GetResetCode(ctx context.Context, userID string, code string) (*auth.ResetCode, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, code, expires_at, used_at, created_at
		FROM password_reset_codes
		WHERE user_id = $1 AND code = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rc auth.ResetCode
	err := q.QueryRow(ctx, query, userID, code).Scan(
		&rc.ID, &rc.UserID, &rc.Code, &rc.ExpiresAt, &rc.UsedAt, &rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reset code: %w", err)
	}

	return &rc, nil
}

// MarkResetCodeUsed implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) MarkResetCodeUsed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`UPDATE password_reset_codes SET used_at = NOW() WHERE id = $1`,
		id,
	); err != nil {
		return fmt.Errorf("failed to mark reset code used: %w", err)
	}

	return nil
}
