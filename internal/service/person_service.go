package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// PersonStore is the person surface the person service needs
type PersonStore interface {
	FindByID(id uuid.UUID) (*model.Person, error)
	FindByEmail(email string) ([]model.Person, error)
	All() ([]model.Person, error)
	Save(person *model.Person) error
	SaveAccount(account *model.Account) error
	SavePlace(place *model.Place) error
}

// ProfileImageStore resolves the latest profile image of a person
type ProfileImageStore interface {
	LatestPersonImage(personID uuid.UUID) (*model.PersonImage, error)
}

// PersonService handles person profile reads and partial updates
type PersonService struct {
	persons PersonStore
	images  ProfileImageStore
}

func NewPersonService(persons PersonStore, images ProfileImageStore) *PersonService {
	return &PersonService{persons: persons, images: images}
}

// List returns persons, restricted to an email when the filter is set.
// An email matching nothing yields an empty list, not an error.
func (s *PersonService) List(email string) ([]model.PersonResponse, error) {
	var persons []model.Person
	var err error
	if email != "" {
		persons, err = s.persons.FindByEmail(email)
	} else {
		persons, err = s.persons.All()
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.PersonResponse, 0, len(persons))
	for i := range persons {
		responses = append(responses, persons[i].ToResponse(model.PersonRenderOptions{
			ImageURL: s.profileImageURL(persons[i].ID),
		}))
	}
	return responses, nil
}

// Get returns one person with nested account, address and latest image
func (s *PersonService) Get(id uuid.UUID) (*model.PersonResponse, error) {
	person, err := s.persons.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := person.ToResponse(model.PersonRenderOptions{
		ImageURL: s.profileImageURL(person.ID),
	})
	return &resp, nil
}

// Update applies only the fields present in the payload; nested account and
// address fields update in place the same way.
func (s *PersonService) Update(id uuid.UUID, req model.UpdatePersonRequest) (*model.PersonResponse, error) {
	person, err := s.persons.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.User != nil {
		if req.User.FirstName != nil {
			person.Account.FirstName = *req.User.FirstName
		}
		if req.User.LastName != nil {
			person.Account.LastName = *req.User.LastName
		}
		if req.User.Email != nil {
			person.Account.Email = *req.User.Email
		}
		if err := s.persons.SaveAccount(&person.Account); err != nil {
			return nil, err
		}
	}

	if req.PhoneNumber != nil {
		person.PhoneNumber = *req.PhoneNumber
	}
	if req.BornDate != nil {
		bornDate, err := time.Parse("2006-01-02", *req.BornDate)
		if err != nil {
			return nil, err
		}
		person.BornDate = bornDate
	}

	if req.Address != nil && person.Address != nil {
		applyPlaceInput(person.Address, *req.Address)
		if err := s.persons.SavePlace(person.Address); err != nil {
			return nil, err
		}
	}

	if err := s.persons.Save(person); err != nil {
		return nil, err
	}

	resp := person.ToResponse(model.PersonRenderOptions{
		ImageURL: s.profileImageURL(person.ID),
	})
	return &resp, nil
}

func (s *PersonService) profileImageURL(personID uuid.UUID) string {
	img, err := s.images.LatestPersonImage(personID)
	if err != nil {
		return ""
	}
	return img.URL
}

// applyPlaceInput copies only the present fields of a place payload
func applyPlaceInput(place *model.Place, input model.PlaceInput) {
	if input.Location != nil {
		place.Location = *input.Location
	}
	if input.Latitude != nil {
		place.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		place.Longitude = *input.Longitude
	}
}
