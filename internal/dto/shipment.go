package dto

import "time"

type Shipment struct {
	ID                 int64     `json:"id"`
	ShipmentCode       string    `json:"shipment_code"`
	Description        *string   `json:"description,omitempty"`
	CargoWeightKg      float64   `json:"cargo_weight_kg"`
	CargoVolumeM3      *float64  `json:"cargo_volume_m3,omitempty"`
	CargoType          *string   `json:"cargo_type,omitempty"`
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	SenderName         *string   `json:"sender_name,omitempty"`
	SenderPhone        *string   `json:"sender_phone,omitempty"`
	ReceiverName       *string   `json:"receiver_name,omitempty"`
	ReceiverPhone      *string   `json:"receiver_phone,omitempty"`
	DeclaredValue      *float64  `json:"declared_value,omitempty"`
	DeliveryCharge     *float64  `json:"delivery_charge,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ShipmentCreate struct {
	ShipmentCode       string   `json:"shipment_code"`
	Description        *string  `json:"description,omitempty"`
	CargoWeightKg      float64  `json:"cargo_weight_kg"`
	CargoVolumeM3      *float64 `json:"cargo_volume_m3,omitempty"`
	CargoType          *string  `json:"cargo_type,omitempty"`
	OriginAddress      string   `json:"origin_address"`
	DestinationAddress string   `json:"destination_address"`
	SenderName         *string  `json:"sender_name,omitempty"`
	SenderPhone        *string  `json:"sender_phone,omitempty"`
	ReceiverName       *string  `json:"receiver_name,omitempty"`
	ReceiverPhone      *string  `json:"receiver_phone,omitempty"`
	DeclaredValue      *float64 `json:"declared_value,omitempty"`
	DeliveryCharge     *float64 `json:"delivery_charge,omitempty"`
}

type ShipmentCreateResponse struct {
	ID int64 `json:"id"`
}

type ShipmentUpdate struct {
	ID                 int64    `json:"id"`
	Description        *string  `json:"description,omitempty"`
	CargoWeightKg      *float64 `json:"cargo_weight_kg,omitempty"`
	CargoVolumeM3      *float64 `json:"cargo_volume_m3,omitempty"`
	CargoType          *string  `json:"cargo_type,omitempty"`
	OriginAddress      *string  `json:"origin_address,omitempty"`
	DestinationAddress *string  `json:"destination_address,omitempty"`
	SenderName         *string  `json:"sender_name,omitempty"`
	SenderPhone        *string  `json:"sender_phone,omitempty"`
	ReceiverName       *string  `json:"receiver_name,omitempty"`
	ReceiverPhone      *string  `json:"receiver_phone,omitempty"`
	DeclaredValue      *float64 `json:"declared_value,omitempty"`
	DeliveryCharge     *float64 `json:"delivery_charge,omitempty"`
}
