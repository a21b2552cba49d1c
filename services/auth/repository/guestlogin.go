package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/zamcare/medirush/internal/pkg/constants"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// UpsertGuestLogin writes a guest-login record keyed by the user's stored
// phone number. A single SET replaces any previous record for the same
// phone, so two racing issuances cannot interleave partial state. The key
// TTL tracks the code expiry.
func (r *AuthRepo) UpsertGuestLogin(ctx context.Context, login *models.GuestLogin) error {
	data, err := json.Marshal(login)
	if err != nil {
		return fmt.Errorf("failed to marshal guest login: %w", err)
	}

	key := fmt.Sprintf(constants.KeyGuestOTP, login.PhoneNumber)
	ttl := time.Until(login.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store guest login in Redis: %w", err)
	}

	return nil
}

// GetGuestLogin retrieves the guest-login record for a phone number.
// Returns nil when no live record exists.
func (r *AuthRepo) GetGuestLogin(ctx context.Context, phoneNumber string) (*models.GuestLogin, error) {
	key := fmt.Sprintf(constants.KeyGuestOTP, phoneNumber)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guest login from Redis: %w", err)
	}

	var login models.GuestLogin
	if err := json.Unmarshal([]byte(val), &login); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest login: %w", err)
	}

	return &login, nil
}

// DeleteGuestLogin removes a guest-login record after successful
// verification so the code cannot be replayed.
func (r *AuthRepo) DeleteGuestLogin(ctx context.Context, phoneNumber string) error {
	key := fmt.Sprintf(constants.KeyGuestOTP, phoneNumber)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete guest login from Redis: %w", err)
	}

	return nil
}
