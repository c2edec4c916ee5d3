package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/shipment"
	"fleetops/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		ShipmentCode:       &shipmentCreateDTO.ShipmentCode,
		Description:        shipmentCreateDTO.Description,
		CargoWeightKg:      &shipmentCreateDTO.CargoWeightKg,
		CargoVolumeM3:      shipmentCreateDTO.CargoVolumeM3,
		CargoType:          shipmentCreateDTO.CargoType,
		OriginAddress:      &shipmentCreateDTO.OriginAddress,
		DestinationAddress: &shipmentCreateDTO.DestinationAddress,
		SenderName:         shipmentCreateDTO.SenderName,
		SenderPhone:        shipmentCreateDTO.SenderPhone,
		ReceiverName:       shipmentCreateDTO.ReceiverName,
		ReceiverPhone:      shipmentCreateDTO.ReceiverPhone,
		DeclaredValue:      shipmentCreateDTO.DeclaredValue,
		DeliveryCharge:     shipmentCreateDTO.DeliveryCharge,
	}

	id, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidCargoWeight),
			errors.Is(err, shipment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
