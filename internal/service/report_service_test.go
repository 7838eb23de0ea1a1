package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ==================== Fakes ====================

type fakeReportStore struct {
	reports []*model.AnimalReport
	deleted []uuid.UUID
}

func (f *fakeReportStore) Create(report *model.AnimalReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportStore) FindByID(id uuid.UUID) (*model.AnimalReport, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportStore) ByPerson(personID uuid.UUID, abandoned bool) ([]model.AnimalReport, error) {
	var out []model.AnimalReport
	for _, r := range f.reports {
		if r.PersonID == personID && r.IsAbandoned() == abandoned {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) Recent(since time.Time, abandoned bool) ([]model.AnimalReport, error) {
	var out []model.AnimalReport
	for _, r := range f.reports {
		if r.Date.After(since) && r.IsAbandoned() == abandoned {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) Save(report *model.AnimalReport) error {
	for i, r := range f.reports {
		if r.ID == report.ID {
			f.reports[i] = report
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeReportStore) SavePlace(_ *model.Place) error { return nil }

func (f *fakeReportStore) Delete(id uuid.UUID) error {
	for i, r := range f.reports {
		if r.ID == id {
			f.reports = append(f.reports[:i], f.reports[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeImageLookup serves latest-image reads for every image kind
type fakeImageLookup struct {
	reportURLs   map[uuid.UUID]string
	personURLs   map[uuid.UUID]string
	adoptionURLs map[uuid.UUID]string
}

func newFakeImageLookup() *fakeImageLookup {
	return &fakeImageLookup{
		reportURLs:   make(map[uuid.UUID]string),
		personURLs:   make(map[uuid.UUID]string),
		adoptionURLs: make(map[uuid.UUID]string),
	}
}

func (f *fakeImageLookup) LatestReportImage(reportID uuid.UUID) (*model.ReportImage, error) {
	url, ok := f.reportURLs[reportID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.ReportImage{ReportID: reportID, URL: url}, nil
}

func (f *fakeImageLookup) LatestPersonImage(personID uuid.UUID) (*model.PersonImage, error) {
	url, ok := f.personURLs[personID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.PersonImage{PersonID: personID, URL: url}, nil
}

func (f *fakeImageLookup) LatestAdoptionImage(proposalID uuid.UUID) (*model.AdoptionImage, error) {
	url, ok := f.adoptionURLs[proposalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.AdoptionImage{ProposalID: proposalID, URL: url}, nil
}

// ==================== Tests ====================

func newTestReportService() (*ReportService, *fakeReportStore, *fakePlaceCreator, *fakeImageLookup) {
	reports := &fakeReportStore{}
	places := &fakePlaceCreator{}
	images := newFakeImageLookup()
	return NewReportService(reports, places, images), reports, places, images
}

func strPtr(s string) *string { return &s }

func TestCreateReport(t *testing.T) {
	svc, reports, places, _ := newTestReportService()

	resp, err := svc.Create(model.CreateReportRequest{
		PersonID:    uuid.New(),
		PetName:     strPtr("Firulais"),
		Description: "Se perdió cerca del parque",
		Place: model.PlaceInput{
			Location:  strPtr("Parque Selva Alegre"),
			Latitude:  strPtr("-16.39"),
			Longitude: strPtr("-71.53"),
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	require.Len(t, reports.reports, 1)
	report := reports.reports[0]
	assert.Equal(t, "Firulais", report.PetName)
	assert.False(t, report.IsAbandoned())
	assert.WithinDuration(t, time.Now(), report.Date, time.Second)

	require.Len(t, places.places, 1)
	assert.Equal(t, places.places[0].ID, report.PlaceID)
	assert.Equal(t, "Parque Selva Alegre", places.places[0].Location)
}

func TestCreateReport_DefaultsPetName(t *testing.T) {
	svc, reports, _, _ := newTestReportService()

	_, err := svc.Create(model.CreateReportRequest{
		PersonID:    uuid.New(),
		Description: "Perro abandonado",
		Place:       model.PlaceInput{Location: strPtr("Calle Mercaderes")},
	})
	require.NoError(t, err)

	_, err = svc.Create(model.CreateReportRequest{
		PersonID:    uuid.New(),
		PetName:     strPtr(""),
		Description: "Otro perro abandonado",
		Place:       model.PlaceInput{Location: strPtr("Calle San Juan")},
	})
	require.NoError(t, err)

	require.Len(t, reports.reports, 2)
	assert.Equal(t, model.NoName, reports.reports[0].PetName)
	assert.True(t, reports.reports[0].IsAbandoned())
	assert.Equal(t, model.NoName, reports.reports[1].PetName)
}

func TestUpdateReport_OnlyPresentFieldsChange(t *testing.T) {
	svc, reports, _, _ := newTestReportService()

	created, err := svc.Create(model.CreateReportRequest{
		PersonID:    uuid.New(),
		PetName:     strPtr("Firulais"),
		Description: "Se perdió cerca del parque",
		Place:       model.PlaceInput{Location: strPtr("Parque Selva Alegre")},
	})
	require.NoError(t, err)

	original := *reports.reports[0]

	_, err = svc.Update(created.ID, model.UpdateReportRequest{
		Description: strPtr("Visto por última vez en la avenida"),
	})
	require.NoError(t, err)

	updated := reports.reports[0]
	assert.Equal(t, "Visto por última vez en la avenida", updated.Description)
	assert.Equal(t, original.PetName, updated.PetName)
	assert.Equal(t, original.PlaceID, updated.PlaceID)
	assert.Equal(t, original.Date, updated.Date)
}

func TestUpdateReport_NotFound(t *testing.T) {
	svc, _, _, _ := newTestReportService()
	_, err := svc.Update(uuid.New(), model.UpdateReportRequest{Description: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListReports_PersonFilter(t *testing.T) {
	svc, _, _, _ := newTestReportService()
	personID := uuid.New()

	_, err := svc.Create(model.CreateReportRequest{
		PersonID: personID,
		PetName:  strPtr("Firulais"),
		Place:    model.PlaceInput{Location: strPtr("A")},
	})
	require.NoError(t, err)
	_, err = svc.Create(model.CreateReportRequest{
		PersonID: personID,
		Place:    model.PlaceInput{Location: strPtr("B")},
	})
	require.NoError(t, err)

	missing, err := svc.List(ReportFilter{PersonID: &personID, Missing: true})
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.NotNil(t, missing[0].PetName)
	assert.Equal(t, "Firulais", *missing[0].PetName)
	assert.Nil(t, missing[0].Person)

	abandoned, err := svc.List(ReportFilter{PersonID: &personID, Abandoned: true})
	require.NoError(t, err)
	require.Len(t, abandoned, 1)
	assert.Nil(t, abandoned[0].PetName)
	assert.Nil(t, abandoned[0].Person)
}

func TestListReports_NoSwitchYieldsEmpty(t *testing.T) {
	svc, _, _, _ := newTestReportService()
	personID := uuid.New()

	_, err := svc.Create(model.CreateReportRequest{
		PersonID: personID,
		Place:    model.PlaceInput{Location: strPtr("A")},
	})
	require.NoError(t, err)

	// person filter without a kind switch
	out, err := svc.List(ReportFilter{PersonID: &personID})
	require.NoError(t, err)
	assert.Empty(t, out)

	// no filter at all
	out, err = svc.List(ReportFilter{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListReports_PublicFeedWindow(t *testing.T) {
	svc, reports, _, _ := newTestReportService()

	_, err := svc.Create(model.CreateReportRequest{
		PersonID: uuid.New(),
		PetName:  strPtr("Firulais"),
		Place:    model.PlaceInput{Location: strPtr("A")},
	})
	require.NoError(t, err)

	// Age a second report beyond the one-hour feed window
	stale := &model.AnimalReport{
		ID:       uuid.New(),
		PersonID: uuid.New(),
		PlaceID:  uuid.New(),
		PetName:  "Rocky",
		Date:     time.Now().Add(-2 * time.Hour),
	}
	reports.reports = append(reports.reports, stale)

	out, err := svc.List(ReportFilter{AllReports: true, Missing: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].PetName)
	assert.Equal(t, "Firulais", *out[0].PetName)
}

func TestGetReport(t *testing.T) {
	svc, reports, _, images := newTestReportService()

	created, err := svc.Create(model.CreateReportRequest{
		PersonID:    uuid.New(),
		PetName:     strPtr("Firulais"),
		Description: "desc",
		Place:       model.PlaceInput{Location: strPtr("A")},
	})
	require.NoError(t, err)
	images.reportURLs[created.ID] = "http://media/reports/firulais.jpg"

	resp, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "http://media/reports/firulais.jpg", resp.ReportImage)

	// A report without an image falls back to the sentinel
	images.reportURLs = map[uuid.UUID]string{}
	resp, err = svc.Get(reports.reports[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.NoImage, resp.ReportImage)
}

func TestDeleteReport(t *testing.T) {
	svc, reports, _, _ := newTestReportService()

	created, err := svc.Create(model.CreateReportRequest{
		PersonID: uuid.New(),
		Place:    model.PlaceInput{Location: strPtr("A")},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.Empty(t, reports.reports)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}
