package fuel_log_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/fuellog"
	"fleetops/internal/service/trip"
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
	var fuelLogCreateDTO dto.FuelLogCreate
	err := json.NewDecoder(r.Body).Decode(&fuelLogCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.FuelLogCreate{
		VehicleID:       fuelLogCreateDTO.VehicleID,
		TripID:          fuelLogCreateDTO.TripID,
		DriverID:        fuelLogCreateDTO.DriverID,
		FuelType:        fuelLogCreateDTO.FuelType,
		LitersFilled:    fuelLogCreateDTO.LitersFilled,
		PricePerLiter:   fuelLogCreateDTO.PricePerLiter,
		FuelStationName: fuelLogCreateDTO.FuelStationName,
		FuelStationCity: fuelLogCreateDTO.FuelStationCity,
		ReceiptNumber:   fuelLogCreateDTO.ReceiptNumber,
		FueledAt:        fuelLogCreateDTO.FueledAt,
	}
	if fuelLogCreateDTO.OdometerAtFuel != nil {
		createEntity.OdometerAtFuel = *fuelLogCreateDTO.OdometerAtFuel
	}

	logEntity, err := h.service.CreateFuelLog(r.Context(), createEntity, fuelLogCreateDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, fuellog.ErrMissingRequiredFields),
			errors.Is(err, fuellog.ErrInvalidLiters),
			errors.Is(err, fuellog.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fuellog.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewFuelLog(*logEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
