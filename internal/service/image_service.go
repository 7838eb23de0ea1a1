package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/pkg/storage"
	"gorm.io/gorm"
)

// ImageRecordStore is the database surface the image service needs
type ImageRecordStore interface {
	CreatePersonImage(img *model.PersonImage) error
	LatestPersonImage(personID uuid.UUID) (*model.PersonImage, error)
	SavePersonImage(img *model.PersonImage) error
	CreateReportImage(img *model.ReportImage) error
	LatestReportImage(reportID uuid.UUID) (*model.ReportImage, error)
	SaveReportImage(img *model.ReportImage) error
	CreateAdoptionImage(img *model.AdoptionImage) error
	LatestAdoptionImage(proposalID uuid.UUID) (*model.AdoptionImage, error)
	SaveAdoptionImage(img *model.AdoptionImage) error
}

// ImageService stores base64 image payloads and keeps the latest-image
// bookkeeping for persons, reports and proposals
type ImageService struct {
	records ImageRecordStore
	store   storage.ImageStore
}

func NewImageService(records ImageRecordStore, store storage.ImageStore) *ImageService {
	return &ImageService{records: records, store: store}
}

// ==================== Person images ====================

// CreatePersonImage uploads a profile photo
func (s *ImageService) CreatePersonImage(ctx context.Context, req model.CreatePersonImageRequest) (*model.ImageResponse, error) {
	result, err := s.store.UploadBase64(ctx, "photos/users/profile", req.Image)
	if err != nil {
		return nil, err
	}
	img := &model.PersonImage{
		PersonID:   req.PersonID,
		ObjectKey:  result.Key,
		URL:        result.URL,
		UploadDate: time.Now(),
	}
	if err := s.records.CreatePersonImage(img); err != nil {
		return nil, err
	}
	return &model.ImageResponse{URLImage: img.URL}, nil
}

// GetPersonImage returns a person's current profile photo
func (s *ImageService) GetPersonImage(personID uuid.UUID) (*model.ImageResponse, error) {
	img, err := s.records.LatestPersonImage(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.ImageResponse{
		ID:         img.ID,
		URLImage:   img.URL,
		UploadDate: img.UploadDate.Format("2006-01-02 15:04:05"),
	}, nil
}

// UpdatePersonImage replaces the current profile photo, discarding the
// previous blob
func (s *ImageService) UpdatePersonImage(ctx context.Context, personID uuid.UUID, req model.UpdateImageRequest) (*model.ImageResponse, error) {
	img, err := s.records.LatestPersonImage(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result, err := s.store.UploadBase64(ctx, "photos/users/profile", req.Image)
	if err != nil {
		return nil, err
	}
	_ = s.store.Delete(ctx, img.ObjectKey)

	img.ObjectKey = result.Key
	img.URL = result.URL
	img.UploadDate = time.Now()
	if err := s.records.SavePersonImage(img); err != nil {
		return nil, err
	}
	return &model.ImageResponse{URLImage: img.URL}, nil
}

// ==================== Report images ====================

// CreateReportImage uploads a report photo
func (s *ImageService) CreateReportImage(ctx context.Context, req model.CreateReportImageRequest) (*model.ImageResponse, error) {
	result, err := s.store.UploadBase64(ctx, "photos/reports/pets", req.Image)
	if err != nil {
		return nil, err
	}
	img := &model.ReportImage{
		ReportID:   req.ReportID,
		ObjectKey:  result.Key,
		URL:        result.URL,
		UploadDate: time.Now(),
	}
	if err := s.records.CreateReportImage(img); err != nil {
		return nil, err
	}
	return &model.ImageResponse{URLImage: img.URL}, nil
}

// GetReportImage returns a report's current photo
func (s *ImageService) GetReportImage(reportID uuid.UUID) (*model.ImageResponse, error) {
	img, err := s.records.LatestReportImage(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.ImageResponse{
		ID:         img.ID,
		URLImage:   img.URL,
		UploadDate: img.UploadDate.Format("2006-01-02 15:04:05"),
	}, nil
}

// UpdateReportImage replaces the current report photo
func (s *ImageService) UpdateReportImage(ctx context.Context, reportID uuid.UUID, req model.UpdateImageRequest) (*model.ImageResponse, error) {
	img, err := s.records.LatestReportImage(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result, err := s.store.UploadBase64(ctx, "photos/reports/pets", req.Image)
	if err != nil {
		return nil, err
	}
	_ = s.store.Delete(ctx, img.ObjectKey)

	img.ObjectKey = result.Key
	img.URL = result.URL
	img.UploadDate = time.Now()
	if err := s.records.SaveReportImage(img); err != nil {
		return nil, err
	}
	return &model.ImageResponse{URLImage: img.URL}, nil
}

// ==================== Adoption images ====================

// CreateAdoptionImage uploads an adoption photo
func (s *ImageService) CreateAdoptionImage(ctx context.Context, req model.CreateAdoptionImageRequest) (*model.ImageResponse, error) {
	result, err := s.store.UploadBase64(ctx, "photos/adoptions/pets", req.Image)
	if err != nil {
		return nil, err
	}
	img := &model.AdoptionImage{
		ProposalID: req.ProposalID,
		ObjectKey:  result.Key,
		URL:        result.URL,
		UploadDate: time.Now(),
	}
	if err := s.records.CreateAdoptionImage(img); err != nil {
		return nil, err
	}
	return &model.ImageResponse{URLImage: img.URL}, nil
}

// GetAdoptionImage returns a proposal's current photo
func (s *ImageService) GetAdoptionImage(proposalID uuid.UUID) (*model.ImageResponse, error) {
	img, err := s.records.LatestAdoptionImage(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.ImageResponse{
		ID:         img.ID,
		URLImage:   img.URL,
		UploadDate: img.UploadDate.Format("2006-01-02 15:04:05"),
	}, nil
}

// UpdateAdoptionImage replaces the current adoption photo
func (s *ImageService) UpdateAdoptionImage(ctx context.Context, proposalID uuid.UUID, req model.UpdateImageRequest) (*model.ImageResponse, error) {
	img, err := s.records.LatestAdoptionImage(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	result, err := s.store.UploadBase64(ctx, "photos/adoptions/pets", req.Image)
	if err != nil {
		return nil, err
	}
	_ = s.store.Delete(ctx, img.ObjectKey)

	img.ObjectKey = result.Key
	img.URL = result.URL
	img.UploadDate = time.Now()
	if err := s.records.SaveAdoptionImage(img); err != nil {
		return nil, err
	}
	return &model.ImageResponse{URLImage: img.URL}, nil
}
