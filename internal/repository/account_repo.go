package repository

import (
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for Account
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account
func (r *AccountRepository) Create(account *model.Account) error {
	return r.db.Create(account).Error
}

// FindByID finds an account by UUID
func (r *AccountRepository) FindByID(id uuid.UUID) (*model.Account, error) {
	var account model.Account
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindActiveByEmail finds the active account registered under an email
func (r *AccountRepository) FindActiveByEmail(email string) (*model.Account, error) {
	var account model.Account
	err := r.db.Where("email = ? AND is_active = true", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindActiveByUsername finds the active account owning a username
func (r *AccountRepository) FindActiveByUsername(username string) (*model.Account, error) {
	var account model.Account
	err := r.db.Where("username = ? AND is_active = true", username).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail reports whether any account uses the email
func (r *AccountRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UsernamesContaining returns existing usernames containing the base handle,
// ordered by creation. The username allocator probes this set.
func (r *AccountRepository) UsernamesContaining(base string) ([]string, error) {
	var usernames []string
	err := r.db.Model(&model.Account{}).
		Where("username LIKE ?", "%"+base+"%").
		Order("created_at ASC").
		Pluck("username", &usernames).Error
	return usernames, err
}

// UpdatePassword overwrites the stored credential for an account
func (r *AccountRepository) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Account{}).
		Where("id = ?", id).
		Update("password", hashedPassword).Error
}
