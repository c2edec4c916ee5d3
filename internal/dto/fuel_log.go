package dto

import "time"

type FuelLog struct {
	ID              int64     `json:"id"`
	FuelLogCode     string    `json:"fuel_log_code"`
	VehicleID       int64     `json:"vehicle_id"`
	TripID          int64     `json:"trip_id"`
	DriverID        int64     `json:"driver_id"`
	FuelType        string    `json:"fuel_type"`
	LitersFilled    float64   `json:"liters_filled"`
	PricePerLiter   float64   `json:"price_per_liter"`
	TotalFuelCost   float64   `json:"total_fuel_cost"`
	OdometerAtFuel  float64   `json:"odometer_at_fuel"`
	FuelStationName *string   `json:"fuel_station_name,omitempty"`
	FuelStationCity *string   `json:"fuel_station_city,omitempty"`
	ReceiptNumber   *string   `json:"receipt_number,omitempty"`
	FueledAt        time.Time `json:"fueled_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type FuelLogCreate struct {
	VehicleID       int64     `json:"vehicle_id"`
	TripID          int64     `json:"trip_id"`
	DriverID        int64     `json:"driver_id"`
	FuelType        string    `json:"fuel_type"`
	LitersFilled    float64   `json:"liters_filled"`
	PricePerLiter   float64   `json:"price_per_liter"`
	OdometerAtFuel  *float64  `json:"odometer_at_fuel,omitempty"`
	FuelStationName *string   `json:"fuel_station_name,omitempty"`
	FuelStationCity *string   `json:"fuel_station_city,omitempty"`
	ReceiptNumber   *string   `json:"receipt_number,omitempty"`
	FueledAt        time.Time `json:"fueled_at"`
	ActorID         *int64    `json:"actor_id,omitempty"`
}

type FuelLogUpdate struct {
	ID              int64      `json:"id"`
	FuelType        *string    `json:"fuel_type,omitempty"`
	LitersFilled    *float64   `json:"liters_filled,omitempty"`
	PricePerLiter   *float64   `json:"price_per_liter,omitempty"`
	OdometerAtFuel  *float64   `json:"odometer_at_fuel,omitempty"`
	FuelStationName *string    `json:"fuel_station_name,omitempty"`
	FuelStationCity *string    `json:"fuel_station_city,omitempty"`
	ReceiptNumber   *string    `json:"receipt_number,omitempty"`
	FueledAt        *time.Time `json:"fueled_at,omitempty"`
	ActorID         *int64     `json:"actor_id,omitempty"`
}

type FuelLogList struct {
	Success bool      `json:"success"`
	Data    []FuelLog `json:"data"`
	Meta    ListMeta  `json:"meta"`
}
