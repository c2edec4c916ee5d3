package fuel_log_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/fuellog"
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
	var fuelLogUpdateDTO dto.FuelLogUpdate
	err := json.NewDecoder(r.Body).Decode(&fuelLogUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fuelLogModifyEntity := entities.FuelLogModify{
		ID:              &fuelLogUpdateDTO.ID,
		FuelType:        fuelLogUpdateDTO.FuelType,
		LitersFilled:    fuelLogUpdateDTO.LitersFilled,
		PricePerLiter:   fuelLogUpdateDTO.PricePerLiter,
		OdometerAtFuel:  fuelLogUpdateDTO.OdometerAtFuel,
		FuelStationName: fuelLogUpdateDTO.FuelStationName,
		FuelStationCity: fuelLogUpdateDTO.FuelStationCity,
		ReceiptNumber:   fuelLogUpdateDTO.ReceiptNumber,
		FueledAt:        fuelLogUpdateDTO.FueledAt,
		UpdatedBy:       fuelLogUpdateDTO.ActorID,
	}

	res, err := h.service.UpdateFuelLog(r.Context(), fuelLogModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, fuellog.ErrMissingRequiredFields),
			errors.Is(err, fuellog.ErrInvalidLiters),
			errors.Is(err, fuellog.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fuellog.ErrFuelLogNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewFuelLog(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
