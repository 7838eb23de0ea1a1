package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// recentReportWindow bounds the public report feed
const recentReportWindow = time.Hour

// ReportStore is the report surface the report service needs
type ReportStore interface {
	Create(report *model.AnimalReport) error
	FindByID(id uuid.UUID) (*model.AnimalReport, error)
	ByPerson(personID uuid.UUID, abandoned bool) ([]model.AnimalReport, error)
	Recent(since time.Time, abandoned bool) ([]model.AnimalReport, error)
	Save(report *model.AnimalReport) error
	SavePlace(place *model.Place) error
	Delete(id uuid.UUID) error
}

// ReportImageStore resolves the latest image of a report
type ReportImageStore interface {
	LatestReportImage(reportID uuid.UUID) (*model.ReportImage, error)
	LatestPersonImage(personID uuid.UUID) (*model.PersonImage, error)
}

// ReportFilter mirrors the query-string switches of the report listing
type ReportFilter struct {
	PersonID   *uuid.UUID
	Abandoned  bool // abandoned_pet: sentinel pet name
	Missing    bool // missing_pet: named pet
	AllReports bool // public feed, one-hour window
}

// ReportService handles lost/stray animal reports
type ReportService struct {
	reports ReportStore
	places  PlaceCreator
	images  ReportImageStore
}

func NewReportService(reports ReportStore, places PlaceCreator, images ReportImageStore) *ReportService {
	return &ReportService{reports: reports, places: places, images: images}
}

// List returns reports for the filter combination. A filter that selects
// neither a person nor the public feed yields an empty list.
func (s *ReportService) List(filter ReportFilter) ([]model.ReportResponse, error) {
	var reports []model.AnimalReport
	var err error

	switch {
	case filter.PersonID != nil && (filter.Abandoned || filter.Missing):
		reports, err = s.reports.ByPerson(*filter.PersonID, filter.Abandoned)
	case filter.AllReports && (filter.Abandoned || filter.Missing):
		reports, err = s.reports.Recent(time.Now().Add(-recentReportWindow), filter.Abandoned)
	default:
		return []model.ReportResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, reports[i].ToResponse(model.ReportRenderOptions{
			HidePerson:    filter.PersonID != nil,
			HidePetName:   filter.Abandoned,
			CompactPerson: filter.AllReports,
			ImageURL:      s.reportImageURL(reports[i].ID),
		}))
	}
	return responses, nil
}

// Get returns one report with nested person, place and latest image
func (s *ReportService) Get(id uuid.UUID) (*model.ReportResponse, error) {
	report, err := s.reports.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := report.ToResponse(model.ReportRenderOptions{
		ImageURL:       s.reportImageURL(report.ID),
		PersonImageURL: s.personImageURL(report.PersonID),
	})
	return &resp, nil
}

// Create persists the nested place and the report. A missing pet name marks
// the report as abandoned/stray.
func (s *ReportService) Create(req model.CreateReportRequest) (*model.IDResponse, error) {
	place := &model.Place{}
	applyPlaceInput(place, req.Place)
	if err := s.places.Create(place); err != nil {
		return nil, err
	}

	petName := model.NoName
	if req.PetName != nil && *req.PetName != "" {
		petName = *req.PetName
	}

	report := &model.AnimalReport{
		PersonID:    req.PersonID,
		PlaceID:     place.ID,
		PetName:     petName,
		Description: req.Description,
		Date:        time.Now(),
	}
	if err := s.reports.Create(report); err != nil {
		return nil, err
	}
	return &model.IDResponse{ID: report.ID}, nil
}

// Update applies only the fields present in the payload. Absent fields,
// including the report date, stay untouched.
func (s *ReportService) Update(id uuid.UUID, req model.UpdateReportRequest) (*model.ReportResponse, error) {
	report, err := s.reports.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Place != nil {
		applyPlaceInput(&report.Place, *req.Place)
		if err := s.reports.SavePlace(&report.Place); err != nil {
			return nil, err
		}
	}
	if req.PetName != nil {
		report.PetName = *req.PetName
	}
	if req.Description != nil {
		report.Description = *req.Description
	}

	if err := s.reports.Save(report); err != nil {
		return nil, err
	}

	resp := report.ToResponse(model.ReportRenderOptions{
		ImageURL:       s.reportImageURL(report.ID),
		PersonImageURL: s.personImageURL(report.PersonID),
	})
	return &resp, nil
}

// Delete removes a report
func (s *ReportService) Delete(id uuid.UUID) error {
	if _, err := s.reports.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.reports.Delete(id)
}

func (s *ReportService) reportImageURL(reportID uuid.UUID) string {
	img, err := s.images.LatestReportImage(reportID)
	if err != nil {
		return ""
	}
	return img.URL
}

func (s *ReportService) personImageURL(personID uuid.UUID) string {
	img, err := s.images.LatestPersonImage(personID)
	if err != nil {
		return ""
	}
	return img.URL
}
