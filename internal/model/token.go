package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is an opaque OAuth2-style bearer token owned by an account.
// The most recently issued unexpired token is reused instead of minting a
// duplicate; expiry is checked by timestamp comparison at lookup time.
type AccessToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID uuid.UUID `json:"account_id" gorm:"type:uuid;not null;index"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null;size:64"`
	ClientID  string    `json:"client_id" gorm:"size:100;not null"`
	Scope     string    `json:"scope" gorm:"size:100"`
	Expires   time.Time `json:"expires" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	Account Account `json:"-" gorm:"foreignKey:AccountID"`
}

// IsExpired reports whether the token has passed its expiry
func (t *AccessToken) IsExpired(now time.Time) bool {
	return !t.Expires.After(now)
}

// TokenResponse is the wire shape of an issued token
type TokenResponse struct {
	Token  string          `json:"token"`
	User   AccountResponse `json:"user"`
	Status bool            `json:"status"`
}

// ToResponse converts AccessToken to TokenResponse. Status is always true;
// expired tokens are never serialized.
func (t *AccessToken) ToResponse() TokenResponse {
	return TokenResponse{
		Token:  t.Token,
		User:   t.Account.ToResponse(),
		Status: true,
	}
}
