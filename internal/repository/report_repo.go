package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// ReportRepository handles database operations for AnimalReport
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report
func (r *ReportRepository) Create(report *model.AnimalReport) error {
	return r.db.Create(report).Error
}

// FindByID finds a report with person and place preloaded
func (r *ReportRepository) FindByID(id uuid.UUID) (*model.AnimalReport, error) {
	var report model.AnimalReport
	err := r.db.
		Preload("Person.Account").
		Preload("Person.Address").
		Preload("Place").
		Where("id = ?", id).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ByPerson returns a person's reports, abandoned (sentinel pet name) or
// missing (named pet) depending on the flag.
func (r *ReportRepository) ByPerson(personID uuid.UUID, abandoned bool) ([]model.AnimalReport, error) {
	var reports []model.AnimalReport
	query := r.db.
		Preload("Person.Account").
		Preload("Person.Address").
		Preload("Place").
		Where("person_id = ?", personID)
	if abandoned {
		query = query.Where("pet_name = ?", model.NoName)
	} else {
		query = query.Where("pet_name <> ?", model.NoName)
	}
	err := query.Order("date DESC").Find(&reports).Error
	return reports, err
}

// Recent returns reports newer than the cutoff, split by the abandoned flag.
// The public feed uses a one-hour window.
func (r *ReportRepository) Recent(since time.Time, abandoned bool) ([]model.AnimalReport, error) {
	var reports []model.AnimalReport
	query := r.db.
		Preload("Person.Account").
		Preload("Person.Address").
		Preload("Place").
		Where("date > ?", since)
	if abandoned {
		query = query.Where("pet_name = ?", model.NoName)
	} else {
		query = query.Where("pet_name <> ?", model.NoName)
	}
	err := query.Order("date DESC").Find(&reports).Error
	return reports, err
}

// Save persists in-place modifications of a report
func (r *ReportRepository) Save(report *model.AnimalReport) error {
	return r.db.Save(report).Error
}

// SavePlace persists in-place modifications of the report's place
func (r *ReportRepository) SavePlace(place *model.Place) error {
	return r.db.Save(place).Error
}

// Delete removes a report row
func (r *ReportRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.AnimalReport{}, "id = ?", id).Error
}
