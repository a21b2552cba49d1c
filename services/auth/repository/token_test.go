package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/models"
)

func TestRefreshToken_ConsumeOnce(t *testing.T) {
	repo, _ := setupRedisRepoTest(t)
	ctx := context.Background()

	token := "refresh-token-abc"
	record := &models.RefreshRecord{
		UserID:    uuid.New().String(),
		Phone:     "0971234567",
		Scope:     models.ScopeRefresh,
		ExpiresAt: time.Now().Add(14 * 24 * time.Hour).Truncate(time.Second),
	}

	assert.NoError(t, repo.StoreRefreshToken(ctx, token, record))

	got, err := repo.ConsumeRefreshToken(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, record.UserID, got.UserID)
	assert.Equal(t, models.ScopeRefresh, got.Scope)

	// Consuming deletes the record: a second use must fail.
	_, err = repo.ConsumeRefreshToken(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshToken_UnknownToken(t *testing.T) {
	repo, _ := setupRedisRepoTest(t)

	_, err := repo.ConsumeRefreshToken(context.Background(), "never-issued")

	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshToken_ExpiresWithTTL(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	ctx := context.Background()

	token := "refresh-token-expiring"
	record := &models.RefreshRecord{
		UserID:    uuid.New().String(),
		Scope:     models.ScopeRefresh,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.NoError(t, repo.StoreRefreshToken(ctx, token, record))

	mr.FastForward(2 * time.Hour)

	_, err := repo.ConsumeRefreshToken(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestStorePasswordResetToken(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)

	err := repo.StorePasswordResetToken(context.Background(), "reset-token-xyz", "nurse@example.com")

	assert.NoError(t, err)
	val, err := mr.Get("password:reset:reset-token-xyz")
	assert.NoError(t, err)
	assert.Equal(t, "nurse@example.com", val)
}
