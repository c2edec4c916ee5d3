package dto

import "time"

type Vehicle struct {
	ID              int64     `json:"id"`
	LicensePlate    string    `json:"license_plate"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	Year            int       `json:"year"`
	Type            string    `json:"type"`
	MaxLoadKg       float64   `json:"max_load_kg"`
	FuelTankLiters  float64   `json:"fuel_tank_liters"`
	OdometerKm      float64   `json:"odometer_km"`
	AcquisitionCost float64   `json:"acquisition_cost"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type VehicleCreate struct {
	LicensePlate    string   `json:"license_plate"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Year            int      `json:"year"`
	Type            string   `json:"type"`
	MaxLoadKg       float64  `json:"max_load_kg"`
	FuelTankLiters  *float64 `json:"fuel_tank_liters,omitempty"`
	OdometerKm      *float64 `json:"odometer_km,omitempty"`
	AcquisitionCost *float64 `json:"acquisition_cost,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

type VehicleCreateResponse struct {
	ID int64 `json:"id"`
}

type VehicleUpdate struct {
	ID              int64    `json:"id"`
	LicensePlate    *string  `json:"license_plate,omitempty"`
	Make            *string  `json:"make,omitempty"`
	Model           *string  `json:"model,omitempty"`
	Year            *int     `json:"year,omitempty"`
	Type            *string  `json:"type,omitempty"`
	MaxLoadKg       *float64 `json:"max_load_kg,omitempty"`
	FuelTankLiters  *float64 `json:"fuel_tank_liters,omitempty"`
	OdometerKm      *float64 `json:"odometer_km,omitempty"`
	AcquisitionCost *float64 `json:"acquisition_cost,omitempty"`
	Status          *string  `json:"status,omitempty"`
}
