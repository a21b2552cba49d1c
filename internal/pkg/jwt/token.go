package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/zamcare/medirush/internal/pkg/models"
)

// generateToken mints a single HS256 token carrying a capability scope.
func generateToken(userID uuid.UUID, phone, scope string, expiresAt time.Time, cfg *models.Config) (string, error) {
	claims := jwt.MapClaims{
		"jti":     uuid.New().String(),
		"user_id": userID.String(),
		"phone":   phone,
		"scope":   scope,
		"exp":     expiresAt.Unix(),
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateTokenPair mints an access token (scope "*") and a refresh token
// (scope "refresh") for the given user, with independent expirations.
func GenerateTokenPair(userID uuid.UUID, phone string, cfg *models.Config) (*models.TokenPair, error) {
	now := time.Now()
	accessExpiresAt := now.Add(time.Duration(cfg.JWT.AccessExpiryDays) * 24 * time.Hour)
	refreshExpiresAt := now.Add(time.Duration(cfg.JWT.RefreshExpiryDays) * 24 * time.Hour)

	accessToken, err := generateToken(userID, phone, models.ScopeFull, accessExpiresAt, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := generateToken(userID, phone, models.ScopeRefresh, refreshExpiresAt, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		TokenType:             "Bearer",
	}, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

// TokenScope extracts the capability scope from validated claims.
func TokenScope(claims jwt.MapClaims) string {
	scope, _ := claims["scope"].(string)
	return scope
}
