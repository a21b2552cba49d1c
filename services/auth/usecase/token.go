package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	jwtpkg "github.com/zamcare/medirush/internal/pkg/jwt"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// issueTokenPair mints an access/refresh pair and persists the refresh
// token so it can be resolved (and consumed) at rotation time.
func (u *AuthUC) issueTokenPair(ctx context.Context, userID uuid.UUID, phone string) (*models.TokenPair, error) {
	pair, err := jwtpkg.GenerateTokenPair(userID, phone, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	record := &models.RefreshRecord{
		UserID:    userID.String(),
		Phone:     phone,
		Scope:     models.ScopeRefresh,
		ExpiresAt: pair.RefreshTokenExpiresAt,
	}
	if err := u.authRepo.StoreRefreshToken(ctx, pair.RefreshToken, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return pair, nil
}

// RefreshTokenPair rotates a presented refresh token. The stored record is
// consumed atomically so a token can be rotated at most once; a second use
// fails even when two rotations race.
func (u *AuthUC) RefreshTokenPair(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := jwtpkg.ValidateToken(refreshToken, u.cfg.JWT.Secret)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if jwtpkg.TokenScope(claims) != models.ScopeRefresh {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	record, err := u.authRepo.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if record.Scope != models.ScopeRefresh || time.Now().After(record.ExpiresAt) {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id on refresh record: %w", err)
	}

	return u.issueTokenPair(ctx, userID, record.Phone)
}
