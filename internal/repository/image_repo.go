package repository

import (
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// ImageRepository handles database operations for the three image variants.
// "Latest" selection always picks the most recent upload_date.
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// CreatePersonImage inserts a profile image
func (r *ImageRepository) CreatePersonImage(img *model.PersonImage) error {
	return r.db.Create(img).Error
}

// LatestPersonImage returns the newest profile image for a person
func (r *ImageRepository) LatestPersonImage(personID uuid.UUID) (*model.PersonImage, error) {
	var img model.PersonImage
	err := r.db.
		Where("person_id = ?", personID).
		Order("upload_date DESC").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// SavePersonImage persists in-place modifications of a profile image
func (r *ImageRepository) SavePersonImage(img *model.PersonImage) error {
	return r.db.Save(img).Error
}

// CreateReportImage inserts a report image
func (r *ImageRepository) CreateReportImage(img *model.ReportImage) error {
	return r.db.Create(img).Error
}

// LatestReportImage returns the newest image attached to a report
func (r *ImageRepository) LatestReportImage(reportID uuid.UUID) (*model.ReportImage, error) {
	var img model.ReportImage
	err := r.db.
		Where("report_id = ?", reportID).
		Order("upload_date DESC").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// SaveReportImage persists in-place modifications of a report image
func (r *ImageRepository) SaveReportImage(img *model.ReportImage) error {
	return r.db.Save(img).Error
}

// CreateAdoptionImage inserts an adoption image
func (r *ImageRepository) CreateAdoptionImage(img *model.AdoptionImage) error {
	return r.db.Create(img).Error
}

// LatestAdoptionImage returns the newest image attached to a proposal
func (r *ImageRepository) LatestAdoptionImage(proposalID uuid.UUID) (*model.AdoptionImage, error) {
	var img model.AdoptionImage
	err := r.db.
		Where("proposal_id = ?", proposalID).
		Order("upload_date DESC").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// SaveAdoptionImage persists in-place modifications of an adoption image
func (r *ImageRepository) SaveAdoptionImage(img *model.AdoptionImage) error {
	return r.db.Save(img).Error
}
