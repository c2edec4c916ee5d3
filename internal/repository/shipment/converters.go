package shipment

import (
	"fleetops/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:                 s.ID,
		ShipmentCode:       s.ShipmentCode,
		Description:        s.Description,
		CargoWeightKg:      s.CargoWeightKg,
		CargoVolumeM3:      s.CargoVolumeM3,
		CargoType:          s.CargoType,
		OriginAddress:      s.OriginAddress,
		DestinationAddress: s.DestinationAddress,
		SenderName:         s.SenderName,
		SenderPhone:        s.SenderPhone,
		ReceiverName:       s.ReceiverName,
		ReceiverPhone:      s.ReceiverPhone,
		DeclaredValue:      s.DeclaredValue,
		DeliveryCharge:     s.DeliveryCharge,
		Status:             entities.ShipmentStatusType(s.Status),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		CreatedBy:          s.CreatedBy,
		UpdatedBy:          s.UpdatedBy,
		IsDeleted:          s.IsDeleted,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{
		ID:                 shipmentModify.ID,
		ShipmentCode:       shipmentModify.ShipmentCode,
		Description:        shipmentModify.Description,
		CargoWeightKg:      shipmentModify.CargoWeightKg,
		CargoVolumeM3:      shipmentModify.CargoVolumeM3,
		CargoType:          shipmentModify.CargoType,
		OriginAddress:      shipmentModify.OriginAddress,
		DestinationAddress: shipmentModify.DestinationAddress,
		SenderName:         shipmentModify.SenderName,
		SenderPhone:        shipmentModify.SenderPhone,
		ReceiverName:       shipmentModify.ReceiverName,
		ReceiverPhone:      shipmentModify.ReceiverPhone,
		DeclaredValue:      shipmentModify.DeclaredValue,
		DeliveryCharge:     shipmentModify.DeliveryCharge,
		UpdatedBy:          shipmentModify.UpdatedBy,
	}

	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		shipmentDB.Status = &statusType
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}
