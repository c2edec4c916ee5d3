package entities

import "time"

type FuelLog struct {
	ID              int64
	FuelLogCode     string
	VehicleID       int64
	TripID          int64
	DriverID        int64
	FuelType        string
	LitersFilled    float64
	PricePerLiter   float64
	TotalFuelCost   float64
	OdometerAtFuel  float64
	FuelStationName *string
	FuelStationCity *string
	ReceiptNumber   *string
	FueledAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       *int64
	UpdatedBy       *int64
	IsDeleted       bool
}

type FuelLogCreate struct {
	VehicleID       int64
	TripID          int64
	DriverID        int64
	FuelType        string
	LitersFilled    float64
	PricePerLiter   float64
	OdometerAtFuel  float64
	FuelStationName *string
	FuelStationCity *string
	ReceiptNumber   *string
	FueledAt        time.Time
}

type FuelLogModify struct {
	ID              *int64
	FuelType        *string
	LitersFilled    *float64
	PricePerLiter   *float64
	OdometerAtFuel  *float64
	FuelStationName *string
	FuelStationCity *string
	ReceiptNumber   *string
	FueledAt        *time.Time
	UpdatedBy       *int64
}

// PricingChanged — менялись ли поля, влияющие на total_fuel_cost рейса.
func (m FuelLogModify) PricingChanged() bool {
	return m.LitersFilled != nil || m.PricePerLiter != nil
}

type FuelLogFilter struct {
	VehicleID *int64
	TripID    *int64
	DriverID  *int64
	FuelType  *string
	FromDate  *time.Time
	ToDate    *time.Time
}
