package shipment_put

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
	var shipmentUpdateDTO dto.ShipmentUpdate
	err := json.NewDecoder(r.Body).Decode(&shipmentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		ID:                 &shipmentUpdateDTO.ID,
		Description:        shipmentUpdateDTO.Description,
		CargoWeightKg:      shipmentUpdateDTO.CargoWeightKg,
		CargoVolumeM3:      shipmentUpdateDTO.CargoVolumeM3,
		CargoType:          shipmentUpdateDTO.CargoType,
		OriginAddress:      shipmentUpdateDTO.OriginAddress,
		DestinationAddress: shipmentUpdateDTO.DestinationAddress,
		SenderName:         shipmentUpdateDTO.SenderName,
		SenderPhone:        shipmentUpdateDTO.SenderPhone,
		ReceiverName:       shipmentUpdateDTO.ReceiverName,
		ReceiverPhone:      shipmentUpdateDTO.ReceiverPhone,
		DeclaredValue:      shipmentUpdateDTO.DeclaredValue,
		DeliveryCharge:     shipmentUpdateDTO.DeliveryCharge,
	}

	res, err := h.service.UpdateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidCargoWeight),
			errors.Is(err, shipment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewShipment(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
