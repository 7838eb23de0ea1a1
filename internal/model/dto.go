package model

import "github.com/google/uuid"

// ========== Auth DTOs ==========

type RegisterRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	BornDate    string `json:"born_date" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required,max=18"`
	Location    string `json:"location" binding:"required,max=180"`
	Latitude    string `json:"latitude" binding:"required,max=50"`
	Longitude   string `json:"longitude" binding:"required,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	PersonID uuid.UUID `json:"person_id" binding:"required"`
}

type UpdatePasswordRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Password string    `json:"password" binding:"required,min=6"`
}

type FindUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthResponse is returned by the registration and login endpoints
type AuthResponse struct {
	Status      bool      `json:"status"`
	AccessToken string    `json:"access_token"`
	PersonID    uuid.UUID `json:"person_id"`
}

// FindUserResponse carries the account id found for an email
type FindUserResponse struct {
	Status bool       `json:"status"`
	UserID *uuid.UUID `json:"user_id"`
}

// ValidateLoginResponse is returned by the web login validation endpoint
type ValidateLoginResponse struct {
	Status    bool       `json:"status"`
	FullName  string     `json:"full_name,omitempty"`
	ShortName string     `json:"short_name,omitempty"`
	IDUser    *uuid.UUID `json:"id_user,omitempty"`
}

// ========== Person DTOs ==========

type UpdateAccountFields struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

type PlaceInput struct {
	Location  *string `json:"location"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

type UpdatePersonRequest struct {
	User        *UpdateAccountFields `json:"user"`
	BornDate    *string              `json:"born_date"`
	PhoneNumber *string              `json:"phone_number"`
	Address     *PlaceInput          `json:"address"`
}

// ========== Report DTOs ==========

type CreateReportRequest struct {
	PersonID    uuid.UUID  `json:"person" binding:"required"`
	PetName     *string    `json:"pet_name"`
	Description string     `json:"description"`
	Place       PlaceInput `json:"place" binding:"required"`
}

type UpdateReportRequest struct {
	PetName     *string     `json:"pet_name"`
	Description *string     `json:"description"`
	Place       *PlaceInput `json:"place"`
}

// ========== Adoption DTOs ==========

type CreateProposalRequest struct {
	OwnerID     uuid.UUID `json:"owner" binding:"required"`
	PetName     *string   `json:"pet_name"`
	Description string    `json:"description"`
}

type UpdateProposalRequest struct {
	PetName     *string         `json:"pet_name"`
	Description *string         `json:"description"`
	Status      *AdoptionStatus `json:"status"`
}

type CreateAdoptionRequestRequest struct {
	ProposalID  uuid.UUID `json:"adoption_proposal" binding:"required"`
	RequesterID uuid.UUID `json:"requester" binding:"required"`
	Description string    `json:"description"`
}

type UpdateAdoptionRequestRequest struct {
	Description *string         `json:"description"`
	Status      *AdoptionStatus `json:"status"`
}

// ========== Image DTOs ==========

type CreatePersonImageRequest struct {
	PersonID uuid.UUID `json:"person" binding:"required"`
	Image    string    `json:"image" binding:"required"`
}

type CreateReportImageRequest struct {
	ReportID uuid.UUID `json:"report" binding:"required"`
	Image    string    `json:"image" binding:"required"`
}

type CreateAdoptionImageRequest struct {
	ProposalID uuid.UUID `json:"adoption_proposal" binding:"required"`
	Image      string    `json:"image" binding:"required"`
}

type UpdateImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// ========== Device DTOs ==========

type CreateDeviceRequest struct {
	PersonID uuid.UUID `json:"person" binding:"required"`
	DeviceID string    `json:"id_device" binding:"required,max=40"`
}

type UpdateDeviceRequest struct {
	DeviceID *string `json:"id_device"`
	IsActive *bool   `json:"is_active"`
}

// ========== Common ==========

// StatusResponse is the legacy {status} shape of the credential endpoints
type StatusResponse struct {
	Status bool `json:"status"`
}

// ErrorResponse is the standard error payload of authenticated endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// IDResponse is returned by creates that expose only the new row's id
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
