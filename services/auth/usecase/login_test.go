package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/auth/mocks"
)

func staffUser(t *testing.T, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	email := "nurse@example.com"
	return &models.User{
		ID:          uuid.New(),
		PhoneNumber: "0971234567",
		Email:       &email,
		Password:    string(hashed),
	}
}

func TestStaffLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	user := staffUser(t, "secret-pass")
	staff := &models.Staff{
		ID:         uuid.New(),
		UserID:     user.ID,
		IsApproved: models.StaffApproved,
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nurse@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		GetStaffByUserID(gomock.Any(), user.ID).
		Return(staff, nil)
	mockRepo.EXPECT().
		StoreRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	// Act
	resp, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{
		Email:    "nurse@example.com",
		Password: "secret-pass",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, staff.ID, resp.Staff.ID)
	assert.NotEmpty(t, resp.Pair.AccessToken)
}

func TestStaffLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	user := staffUser(t, "secret-pass")

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nurse@example.com").
		Return(user, nil)

	// Act
	_, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{
		Email:    "nurse@example.com",
		Password: "wrong-pass",
	})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestStaffLogin_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound)

	// Act
	_, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{
		Email:    "ghost@example.com",
		Password: "secret-pass",
	})

	// Assert: indistinguishable from a wrong password
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestStaffLogin_NoStaffRecord(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	user := staffUser(t, "secret-pass")

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(user, nil)
	mockRepo.EXPECT().
		GetStaffByUserID(gomock.Any(), user.ID).
		Return(nil, apperrors.ErrStaffRecordNotFound)

	// Act
	_, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{
		Email:    "nurse@example.com",
		Password: "secret-pass",
	})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrStaffRecordNotFound)
}

func TestStaffLogin_PendingApproval(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	user := staffUser(t, "secret-pass")
	staff := &models.Staff{ID: uuid.New(), UserID: user.ID, IsApproved: models.StaffPending}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(user, nil)
	mockRepo.EXPECT().
		GetStaffByUserID(gomock.Any(), user.ID).
		Return(staff, nil)

	// Act
	_, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{
		Email:    "nurse@example.com",
		Password: "secret-pass",
	})

	// Assert
	var aErr *apperrors.ApprovalError
	assert.ErrorAs(t, err, &aErr)
	assert.Equal(t, "pending approval", aErr.StatusText())
}

func TestStaffLogin_Rejected(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	user := staffUser(t, "secret-pass")
	staff := &models.Staff{ID: uuid.New(), UserID: user.ID, IsApproved: models.StaffRejected}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(user, nil)
	mockRepo.EXPECT().
		GetStaffByUserID(gomock.Any(), user.ID).
		Return(staff, nil)

	// Act
	_, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{
		Email:    "nurse@example.com",
		Password: "secret-pass",
	})

	// Assert
	var aErr *apperrors.ApprovalError
	assert.ErrorAs(t, err, &aErr)
	assert.Equal(t, "not approved", aErr.StatusText())
}

func TestStaffLogin_Validation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.StaffLogin(context.Background(), &models.StaffLoginRequest{Password: "tiny"})

	// Assert
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
}

func TestForgotPassword_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	cfg := testConfig()
	cfg.App.BaseURL = "https://app.medirush.example"
	uc := NewAuthUC(mockRepo, mockGW, cfg)

	user := staffUser(t, "secret-pass")

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nurse@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		StorePasswordResetToken(gomock.Any(), gomock.Any(), "nurse@example.com").
		Return(nil)
	mockGW.EXPECT().
		SendPasswordResetEmail(gomock.Any(), "nurse@example.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, resetLink string) error {
			assert.Contains(t, resetLink, "https://app.medirush.example/reset-password?token=")
			return nil
		})

	// Act
	err := uc.ForgotPassword(context.Background(), "nurse@example.com")

	// Assert
	assert.NoError(t, err)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound)

	// Act
	err := uc.ForgotPassword(context.Background(), "ghost@example.com")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
