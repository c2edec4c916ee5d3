package shipment

import (
	"context"
	"fmt"
	"strings"

	"fleetops/internal/entities"
)

type Shipment struct {
	repository Repository
}

func New(repository Repository) *Shipment {
	return &Shipment{
		repository: repository,
	}
}

func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (int64, error) {
	if shipmentModify.ShipmentCode == nil ||
		shipmentModify.CargoWeightKg == nil ||
		shipmentModify.OriginAddress == nil ||
		shipmentModify.DestinationAddress == nil {
		return 0, ErrMissingRequiredFields
	}

	if strings.TrimSpace(*shipmentModify.ShipmentCode) == "" ||
		strings.TrimSpace(*shipmentModify.OriginAddress) == "" ||
		strings.TrimSpace(*shipmentModify.DestinationAddress) == "" {
		return 0, ErrMissingRequiredFields
	}
	if !isValidCargoWeight(*shipmentModify.CargoWeightKg) {
		return 0, ErrInvalidCargoWeight
	}
	if shipmentModify.Status != nil && !isValidStatus(*shipmentModify.Status) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return 0, fmt.Errorf("create shipment: %w", err)
	}

	return id, nil
}

func (s *Shipment) UpdateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	if shipmentModify.CargoWeightKg != nil && !isValidCargoWeight(*shipmentModify.CargoWeightKg) {
		return nil, ErrInvalidCargoWeight
	}
	if shipmentModify.Status != nil && !isValidStatus(*shipmentModify.Status) {
		return nil, ErrInvalidStatus
	}

	shipment, err := s.repository.Update(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return shipment, nil
}

func (s *Shipment) UpdateShipmentStatus(ctx context.Context, id int64, from, to entities.ShipmentStatusType, actorID *int64) error {
	if !isValidStatus(from) || !isValidStatus(to) {
		return ErrInvalidStatus
	}

	err := s.repository.UpdateStatus(ctx, id, from, to, actorID)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	return nil
}

func (s *Shipment) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	return shipment, nil
}

func (s *Shipment) GetShipments(ctx context.Context, includeDeleted bool) ([]entities.Shipment, error) {
	shipments, err := s.repository.GetAll(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("get shipments: %w", err)
	}

	return shipments, nil
}

func (s *Shipment) DeleteShipment(ctx context.Context, id int64, actorID *int64) error {
	err := s.repository.SoftDelete(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}
