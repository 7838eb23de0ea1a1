package repository

import (
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for Person and Place
type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create inserts a new person
func (r *PersonRepository) Create(person *model.Person) error {
	return r.db.Create(person).Error
}

// FindByID finds a person by UUID with account and address preloaded
func (r *PersonRepository) FindByID(id uuid.UUID) (*model.Person, error) {
	var person model.Person
	err := r.db.
		Preload("Account").
		Preload("Address").
		Where("id = ?", id).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// FindByAccountID finds the person attached to an account
func (r *PersonRepository) FindByAccountID(accountID uuid.UUID) (*model.Person, error) {
	var person model.Person
	err := r.db.
		Preload("Account").
		Preload("Address").
		Where("account_id = ?", accountID).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// FindByEmail finds persons whose account is registered under an email
func (r *PersonRepository) FindByEmail(email string) ([]model.Person, error) {
	var persons []model.Person
	err := r.db.
		Preload("Account").
		Preload("Address").
		Joins("JOIN accounts ON accounts.id = people.account_id").
		Where("accounts.email = ?", email).
		Find(&persons).Error
	return persons, err
}

// All returns every person with account and address preloaded
func (r *PersonRepository) All() ([]model.Person, error) {
	var persons []model.Person
	err := r.db.
		Preload("Account").
		Preload("Address").
		Find(&persons).Error
	return persons, err
}

// Save persists in-place modifications of a person
func (r *PersonRepository) Save(person *model.Person) error {
	return r.db.Save(person).Error
}

// SaveAccount persists in-place modifications of the nested account
func (r *PersonRepository) SaveAccount(account *model.Account) error {
	return r.db.Save(account).Error
}

// SavePlace persists in-place modifications of the nested address
func (r *PersonRepository) SavePlace(place *model.Place) error {
	return r.db.Save(place).Error
}
