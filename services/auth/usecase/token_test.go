package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/zamcare/medirush/internal/pkg/apperrors"
	jwtpkg "github.com/zamcare/medirush/internal/pkg/jwt"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/auth/mocks"
)

func mintRefreshToken(t *testing.T, cfg *models.Config, userID uuid.UUID, phone string) (string, *models.RefreshRecord) {
	t.Helper()

	pair, err := jwtpkg.GenerateTokenPair(userID, phone, cfg)
	assert.NoError(t, err)

	record := &models.RefreshRecord{
		UserID:    userID.String(),
		Phone:     phone,
		Scope:     models.ScopeRefresh,
		ExpiresAt: pair.RefreshTokenExpiresAt,
	}
	return pair.RefreshToken, record
}

func TestRefreshTokenPair_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	cfg := testConfig()
	uc := NewAuthUC(mockRepo, mockGW, cfg)

	userID := uuid.New()
	token, record := mintRefreshToken(t, cfg, userID, "0971234567")

	mockRepo.EXPECT().
		ConsumeRefreshToken(gomock.Any(), token).
		Return(record, nil)
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, newToken string, newRecord *models.RefreshRecord) error {
			assert.NotEqual(t, token, newToken)
			assert.Equal(t, userID.String(), newRecord.UserID)
			return nil
		})

	// Act
	pair, err := uc.RefreshTokenPair(context.Background(), token)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, token, pair.RefreshToken)
}

func TestRefreshTokenPair_SecondUseRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	cfg := testConfig()
	uc := NewAuthUC(mockRepo, mockGW, cfg)

	token, record := mintRefreshToken(t, cfg, uuid.New(), "0971234567")

	// First consume succeeds, second finds the record already gone.
	gomock.InOrder(
		mockRepo.EXPECT().ConsumeRefreshToken(gomock.Any(), token).Return(record, nil),
		mockRepo.EXPECT().ConsumeRefreshToken(gomock.Any(), token).Return(nil, apperrors.ErrInvalidRefreshToken),
	)
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	_, err := uc.RefreshTokenPair(context.Background(), token)
	assert.NoError(t, err)

	_, err = uc.RefreshTokenPair(context.Background(), token)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshTokenPair_AccessTokenRejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	cfg := testConfig()
	uc := NewAuthUC(mockRepo, mockGW, cfg)

	// An access token carries scope "*", not "refresh".
	pair, err := jwtpkg.GenerateTokenPair(uuid.New(), "0971234567", cfg)
	assert.NoError(t, err)

	// Act
	_, err = uc.RefreshTokenPair(context.Background(), pair.AccessToken)

	// Assert: rejected before any store lookup
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshTokenPair_MalformedToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.RefreshTokenPair(context.Background(), "not-a-jwt")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}

func TestRefreshTokenPair_ExpiredRecord(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	cfg := testConfig()
	uc := NewAuthUC(mockRepo, mockGW, cfg)

	token, record := mintRefreshToken(t, cfg, uuid.New(), "0971234567")
	record.ExpiresAt = time.Now().Add(-time.Hour)

	mockRepo.EXPECT().
		ConsumeRefreshToken(gomock.Any(), token).
		Return(record, nil)

	// Act
	_, err := uc.RefreshTokenPair(context.Background(), token)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
}
