package entities

import "time"

type Vehicle struct {
	ID              int64
	LicensePlate    string
	Make            string
	Model           string
	Year            int
	Type            VehicleType
	MaxLoadKg       float64
	FuelTankLiters  float64
	OdometerKm      float64
	AcquisitionCost float64
	Status          VehicleStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       *int64
	UpdatedBy       *int64
	IsDeleted       bool
}

type VehicleType string

const (
	VehicleTruck VehicleType = "Truck"
	VehicleVan   VehicleType = "Van"
	VehicleBike  VehicleType = "Bike"
)

func (t VehicleType) String() string {
	return string(t)
}

type VehicleStatusType string

const (
	VehicleAvailable    VehicleStatusType = "Available"
	VehicleOnTrip       VehicleStatusType = "On Trip"
	VehicleInShop       VehicleStatusType = "In Shop"
	VehicleOutOfService VehicleStatusType = "Out of Service"
)

const DefaultVehicleStatus = VehicleAvailable

func (t VehicleStatusType) String() string {
	return string(t)
}

type VehicleModify struct {
	ID              *int64
	LicensePlate    *string
	Make            *string
	Model           *string
	Year            *int
	Type            *VehicleType
	MaxLoadKg       *float64
	FuelTankLiters  *float64
	OdometerKm      *float64
	AcquisitionCost *float64
	Status          *VehicleStatusType
	UpdatedBy       *int64
}
