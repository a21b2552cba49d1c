package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/zamcare/medirush/internal/pkg/database"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// DispatchRepo persists dispatch entities in Postgres and mirrors staff
// coordinates into the Redis geo set.
type DispatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDispatchRepo creates a new dispatch repository instance
func NewDispatchRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *DispatchRepo {
	return &DispatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
