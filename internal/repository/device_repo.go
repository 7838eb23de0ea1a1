package repository

import (
	"github.com/google/uuid"
	"github.com/sosfido/sosfido-api/internal/model"
	"gorm.io/gorm"
)

// DeviceRepository handles database operations for PersonDevice
type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Create inserts a new device
func (r *DeviceRepository) Create(device *model.PersonDevice) error {
	return r.db.Create(device).Error
}

// FindByID finds a device by UUID
func (r *DeviceRepository) FindByID(id uuid.UUID) (*model.PersonDevice, error) {
	var device model.PersonDevice
	err := r.db.Where("id = ?", id).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

// ActiveByPerson returns a person's active devices
func (r *DeviceRepository) ActiveByPerson(personID uuid.UUID) ([]model.PersonDevice, error) {
	var devices []model.PersonDevice
	err := r.db.
		Where("person_id = ? AND is_active = true", personID).
		Find(&devices).Error
	return devices, err
}

// ActiveDeviceIDs returns the identifier strings of a person's active
// devices, the target list for push notifications.
func (r *DeviceRepository) ActiveDeviceIDs(personID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.PersonDevice{}).
		Where("person_id = ? AND is_active = true", personID).
		Pluck("device_id", &ids).Error
	return ids, err
}

// All returns every registered device
func (r *DeviceRepository) All() ([]model.PersonDevice, error) {
	var devices []model.PersonDevice
	err := r.db.Find(&devices).Error
	return devices, err
}

// Save persists in-place modifications of a device
func (r *DeviceRepository) Save(device *model.PersonDevice) error {
	return r.db.Save(device).Error
}
