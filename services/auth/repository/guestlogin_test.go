package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/zamcare/medirush/internal/pkg/database"
	"github.com/zamcare/medirush/internal/pkg/models"
)

func setupRedisRepoTest(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := &AuthRepo{
		cfg:         &models.Config{},
		redisClient: &database.RedisClient{Client: client},
	}

	return repo, mr
}

func TestGuestLogin_RoundTrip(t *testing.T) {
	repo, _ := setupRedisRepoTest(t)
	ctx := context.Background()

	login := &models.GuestLogin{
		PhoneNumber: "+260971234567",
		OTPCode:     "123456",
		ExpiresAt:   time.Now().Add(5 * time.Minute).Truncate(time.Second),
	}

	err := repo.UpsertGuestLogin(ctx, login)
	assert.NoError(t, err)

	got, err := repo.GetGuestLogin(ctx, "+260971234567")
	assert.NoError(t, err)
	assert.Equal(t, login.OTPCode, got.OTPCode)
	assert.Equal(t, login.PhoneNumber, got.PhoneNumber)
}

func TestGuestLogin_UpsertReplacesPrevious(t *testing.T) {
	repo, _ := setupRedisRepoTest(t)
	ctx := context.Background()

	first := &models.GuestLogin{
		PhoneNumber: "0971234567",
		OTPCode:     "111111",
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	second := &models.GuestLogin{
		PhoneNumber: "0971234567",
		OTPCode:     "222222",
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}

	assert.NoError(t, repo.UpsertGuestLogin(ctx, first))
	assert.NoError(t, repo.UpsertGuestLogin(ctx, second))

	got, err := repo.GetGuestLogin(ctx, "0971234567")
	assert.NoError(t, err)
	assert.Equal(t, "222222", got.OTPCode, "a reissue replaces the earlier code")
}

func TestGuestLogin_MissingReturnsNil(t *testing.T) {
	repo, _ := setupRedisRepoTest(t)

	got, err := repo.GetGuestLogin(context.Background(), "0979999999")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGuestLogin_Delete(t *testing.T) {
	repo, _ := setupRedisRepoTest(t)
	ctx := context.Background()

	login := &models.GuestLogin{
		PhoneNumber: "0971234567",
		OTPCode:     "123456",
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	assert.NoError(t, repo.UpsertGuestLogin(ctx, login))
	assert.NoError(t, repo.DeleteGuestLogin(ctx, "0971234567"))

	got, err := repo.GetGuestLogin(ctx, "0971234567")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGuestLogin_ExpiresWithTTL(t *testing.T) {
	repo, mr := setupRedisRepoTest(t)
	ctx := context.Background()

	login := &models.GuestLogin{
		PhoneNumber: "0971234567",
		OTPCode:     "123456",
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	assert.NoError(t, repo.UpsertGuestLogin(ctx, login))

	mr.FastForward(6 * time.Minute)

	got, err := repo.GetGuestLogin(ctx, "0971234567")
	assert.NoError(t, err)
	assert.Nil(t, got, "the record evaporates with the key TTL")
}
