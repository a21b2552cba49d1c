package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/constants"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// passwordResetTTL bounds how long a reset link stays redeemable
const passwordResetTTL = 30 * time.Minute

// StoreRefreshToken persists a refresh record keyed by the token string.
// The key TTL tracks the token expiry so stale records clean themselves up.
func (r *AuthRepo) StoreRefreshToken(ctx context.Context, token string, record *models.RefreshRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh record: %w", err)
	}

	key := fmt.Sprintf(constants.KeyRefreshToken, token)
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store refresh token in Redis: %w", err)
	}

	return nil
}

// ConsumeRefreshToken resolves a presented token and deletes it in one
// atomic operation. Two concurrent rotations of the same token cannot both
// succeed: exactly one caller observes the record.
func (r *AuthRepo) ConsumeRefreshToken(ctx context.Context, token string) (*models.RefreshRecord, error) {
	key := fmt.Sprintf(constants.KeyRefreshToken, token)

	val, err := r.redisClient.GetDel(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to consume refresh token: %w", err)
	}

	var record models.RefreshRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refresh record: %w", err)
	}

	return &record, nil
}

// StorePasswordResetToken stores a reset token so the emailed link can be
// redeemed later.
func (r *AuthRepo) StorePasswordResetToken(ctx context.Context, token, email string) error {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)
	if err := r.redisClient.Set(ctx, key, email, passwordResetTTL); err != nil {
		return fmt.Errorf("failed to store reset token in Redis: %w", err)
	}

	return nil
}
