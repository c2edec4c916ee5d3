package entities

import "time"

type Driver struct {
	ID                int64
	FullName          string
	Phone             string
	Email             *string
	LicenseNumber     string
	LicenseType       VehicleType
	LicenseExpiryDate time.Time
	IsLicenseValid    bool
	TotalTrips        int64
	CompletedTrips    int64
	SafetyScore       float64
	Status            DriverStatusType
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CreatedBy         *int64
	UpdatedBy         *int64
	IsDeleted         bool
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "Available"
	DriverOnTrip    DriverStatusType = "On Trip"
	DriverOffDuty   DriverStatusType = "Off Duty"
	DriverSuspended DriverStatusType = "Suspended"
)

const DefaultDriverStatus = DriverAvailable

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID                *int64
	FullName          *string
	Phone             *string
	Email             *string
	LicenseNumber     *string
	LicenseType       *VehicleType
	LicenseExpiryDate *time.Time
	IsLicenseValid    *bool
	SafetyScore       *float64
	Status            *DriverStatusType
	UpdatedBy         *int64
}
