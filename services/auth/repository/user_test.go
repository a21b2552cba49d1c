package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamcare/medirush/internal/pkg/apperrors"
	"github.com/zamcare/medirush/internal/pkg/database"
	"github.com/zamcare/medirush/internal/pkg/models"
)

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AuthRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "phone_number", "email", "fullname", "password",
		"is_onboarded", "otp_code", "otp_expires_at", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.PhoneNumber, user.Email, user.FullName, user.Password,
		user.IsOnboarded, user.OTPCode, user.OTPExpiresAt, user.CreatedAt, user.UpdatedAt,
	)
}

func TestGetUserByPhoneSuffix_Success(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	expected := &models.User{
		ID:          uuid.New(),
		PhoneNumber: "+260971234567",
		Password:    "hashed",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectQuery(`SELECT (.+) FROM users\s+WHERE phone_number LIKE`).
		WithArgs("971234567").
		WillReturnRows(userRows(expected))

	user, err := repo.GetUserByPhoneSuffix(context.Background(), "971234567")

	assert.NoError(t, err)
	assert.Equal(t, expected.ID, user.ID)
	assert.Equal(t, expected.PhoneNumber, user.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByPhoneSuffix_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM users\s+WHERE phone_number LIKE`).
		WithArgs("971234567").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByPhoneSuffix(context.Background(), "971234567")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetUserByEmail_Success(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	email := "nurse@example.com"
	expected := &models.User{
		ID:          uuid.New(),
		PhoneNumber: "0971234567",
		Email:       &email,
		Password:    "hashed",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectQuery(`SELECT (.+) FROM users\s+WHERE email =`).
		WithArgs(email).
		WillReturnRows(userRows(expected))

	user, err := repo.GetUserByEmail(context.Background(), email)

	assert.NoError(t, err)
	assert.Equal(t, email, *user.Email)
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{
		PhoneNumber: "0971234567",
		Password:    "hashed",
	}
	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID, "an id is assigned on insert")
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetUserOTP(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute)

	mock.ExpectExec(`UPDATE users\s+SET otp_code =`).
		WithArgs("123456", expiresAt, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetUserOTP(context.Background(), userID, "123456", expiresAt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkUserOnboarded(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectExec(`UPDATE users\s+SET is_onboarded = TRUE, otp_code = NULL`).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkUserOnboarded(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStaffByUserID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectQuery(`(?s)SELECT (.+) FROM staff`).
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	staff, err := repo.GetStaffByUserID(context.Background(), userID)

	assert.Nil(t, staff)
	assert.ErrorIs(t, err, apperrors.ErrStaffRecordNotFound)
}
