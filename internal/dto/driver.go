package dto

import "time"

type Driver struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             *string   `json:"email,omitempty"`
	LicenseNumber     string    `json:"license_number"`
	LicenseType       string    `json:"license_type"`
	LicenseExpiryDate time.Time `json:"license_expiry_date"`
	IsLicenseValid    bool      `json:"is_license_valid"`
	TotalTrips        int64     `json:"total_trips"`
	CompletedTrips    int64     `json:"completed_trips"`
	SafetyScore       float64   `json:"safety_score"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type DriverCreate struct {
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             *string   `json:"email,omitempty"`
	LicenseNumber     string    `json:"license_number"`
	LicenseType       string    `json:"license_type"`
	LicenseExpiryDate time.Time `json:"license_expiry_date"`
	SafetyScore       *float64  `json:"safety_score,omitempty"`
	Status            *string   `json:"status,omitempty"`
}

type DriverCreateResponse struct {
	ID int64 `json:"id"`
}

type DriverUpdate struct {
	ID                int64      `json:"id"`
	FullName          *string    `json:"full_name,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	Email             *string    `json:"email,omitempty"`
	LicenseNumber     *string    `json:"license_number,omitempty"`
	LicenseType       *string    `json:"license_type,omitempty"`
	LicenseExpiryDate *time.Time `json:"license_expiry_date,omitempty"`
	IsLicenseValid    *bool      `json:"is_license_valid,omitempty"`
	SafetyScore       *float64   `json:"safety_score,omitempty"`
	Status            *string    `json:"status,omitempty"`
}
