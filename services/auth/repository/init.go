package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/zamcare/medirush/internal/pkg/database"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// AuthRepo persists auth entities. Users and staff live in Postgres;
// guest logins, refresh tokens and reset tokens live in Redis.
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
