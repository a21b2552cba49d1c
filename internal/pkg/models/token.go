package models

import (
	"time"
)

// Token scopes
const (
	ScopeFull    = "*"
	ScopeRefresh = "refresh"
)

// TokenPair holds a freshly minted access/refresh token pair
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// RefreshRecord is the stored entity a presented refresh token resolves to.
// Consuming it deletes the record, which is what makes rotation single-use.
type RefreshRecord struct {
	UserID    string    `json:"user_id"`
	Phone     string    `json:"phone"`
	Scope     string    `json:"scope"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StaffLoginResponse is returned after a successful staff login
type StaffLoginResponse struct {
	User  *User      `json:"user"`
	Staff *Staff     `json:"staff"`
	Pair  *TokenPair `json:"tokens"`
}
