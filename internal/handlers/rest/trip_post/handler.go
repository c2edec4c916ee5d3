package trip_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/driver"
	"fleetops/internal/service/shipment"
	"fleetops/internal/service/trip"
	"fleetops/internal/service/vehicle"
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
	var tripCreateDTO dto.TripCreate
	err := json.NewDecoder(r.Body).Decode(&tripCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tripCreateEntity := entities.TripCreate{
		VehicleID:          tripCreateDTO.VehicleID,
		DriverID:           tripCreateDTO.DriverID,
		ShipmentID:         tripCreateDTO.ShipmentID,
		OriginAddress:      tripCreateDTO.OriginAddress,
		DestinationAddress: tripCreateDTO.DestinationAddress,
		EstimatedDistKm:    tripCreateDTO.EstimatedDistKm,
		CargoWeightKg:      tripCreateDTO.CargoWeightKg,
		ScheduledStart:     tripCreateDTO.ScheduledStart,
		ScheduledEnd:       tripCreateDTO.ScheduledEnd,
	}

	tripEntity, err := h.service.CreateTrip(r.Context(), tripCreateEntity, tripCreateDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingRequiredFields),
			errors.Is(err, trip.ErrCargoTooHeavy),
			errors.Is(err, trip.ErrDriverNotEligible):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrTripNotFound),
			errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, vehicle.ErrVehicleNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, trip.ErrVehicleNotAvailable),
			errors.Is(err, trip.ErrConflict),
			errors.Is(err, shipment.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewTrip(*tripEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
