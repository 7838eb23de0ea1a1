package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// DeviceStore is the device surface the device service needs
type DeviceStore interface {
	Create(device *model.PersonDevice) error
	FindByID(id uuid.UUID) (*model.PersonDevice, error)
	ActiveByPerson(personID uuid.UUID) ([]model.PersonDevice, error)
	All() ([]model.PersonDevice, error)
	Save(device *model.PersonDevice) error
}

// DeviceService handles the push-notification device registry
type DeviceService struct {
	devices DeviceStore
}

func NewDeviceService(devices DeviceStore) *DeviceService {
	return &DeviceService{devices: devices}
}

// List returns a person's active devices when the filter is set, otherwise
// every registered device
func (s *DeviceService) List(personID *uuid.UUID) ([]model.DeviceResponse, error) {
	var devices []model.PersonDevice
	var err error
	if personID != nil {
		devices, err = s.devices.ActiveByPerson(*personID)
	} else {
		devices, err = s.devices.All()
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.DeviceResponse, 0, len(devices))
	for i := range devices {
		responses = append(responses, devices[i].ToResponse(personID != nil))
	}
	return responses, nil
}

// Get returns one device
func (s *DeviceService) Get(id uuid.UUID) (*model.DeviceResponse, error) {
	device, err := s.devices.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := device.ToResponse(false)
	return &resp, nil
}

// Create registers a device as active
func (s *DeviceService) Create(req model.CreateDeviceRequest) (*model.DeviceResponse, error) {
	device := &model.PersonDevice{
		PersonID: req.PersonID,
		DeviceID: req.DeviceID,
		IsActive: true,
	}
	if err := s.devices.Create(device); err != nil {
		return nil, err
	}
	resp := device.ToResponse(true)
	return &resp, nil
}

// Update applies only the fields present in the payload
func (s *DeviceService) Update(id uuid.UUID, req model.UpdateDeviceRequest) (*model.DeviceResponse, error) {
	device, err := s.devices.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.DeviceID != nil {
		device.DeviceID = *req.DeviceID
	}
	if req.IsActive != nil {
		device.IsActive = *req.IsActive
	}

	if err := s.devices.Save(device); err != nil {
		return nil, err
	}
	resp := device.ToResponse(false)
	return &resp, nil
}
