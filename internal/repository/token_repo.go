package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// TokenRepository handles database operations for AccessToken
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create inserts a new token
func (r *TokenRepository) Create(token *model.AccessToken) error {
	return r.db.Create(token).Error
}

// LatestValidForAccount returns the most recently issued unexpired token for
// an account, or gorm.ErrRecordNotFound
func (r *TokenRepository) LatestValidForAccount(accountID uuid.UUID, now time.Time) (*model.AccessToken, error) {
	var token model.AccessToken
	err := r.db.
		Preload("Account").
		Where("account_id = ? AND expires > ?", accountID, now).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// FindValid resolves a bearer token string to its unexpired row
func (r *TokenRepository) FindValid(tokenString string, now time.Time) (*model.AccessToken, error) {
	var token model.AccessToken
	err := r.db.
		Preload("Account").
		Where("token = ? AND expires > ?", tokenString, now).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// TokenStringsForAccount returns every outstanding token string for an account
func (r *TokenRepository) TokenStringsForAccount(accountID uuid.UUID) ([]string, error) {
	var tokens []string
	err := r.db.Model(&model.AccessToken{}).
		Where("account_id = ?", accountID).
		Pluck("token", &tokens).Error
	return tokens, err
}

// DeleteForAccount revokes every token owned by an account
func (r *TokenRepository) DeleteForAccount(accountID uuid.UUID) error {
	return r.db.Where("account_id = ?", accountID).Delete(&model.AccessToken{}).Error
}
