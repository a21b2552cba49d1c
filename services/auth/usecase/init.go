package usecase

import (
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/auth"
)

type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		cfg:      cfg,
	}
}
