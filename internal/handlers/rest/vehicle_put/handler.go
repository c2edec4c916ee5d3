package vehicle_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
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
	var vehicleUpdateDTO dto.VehicleUpdate
	err := json.NewDecoder(r.Body).Decode(&vehicleUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleModifyEntity := entities.VehicleModify{
		ID:              &vehicleUpdateDTO.ID,
		LicensePlate:    vehicleUpdateDTO.LicensePlate,
		Make:            vehicleUpdateDTO.Make,
		Model:           vehicleUpdateDTO.Model,
		Year:            vehicleUpdateDTO.Year,
		MaxLoadKg:       vehicleUpdateDTO.MaxLoadKg,
		FuelTankLiters:  vehicleUpdateDTO.FuelTankLiters,
		OdometerKm:      vehicleUpdateDTO.OdometerKm,
		AcquisitionCost: vehicleUpdateDTO.AcquisitionCost,
	}

	// Опциональные параметры
	if vehicleUpdateDTO.Type != nil {
		vehicleType := entities.VehicleType(*vehicleUpdateDTO.Type)
		vehicleModifyEntity.Type = &vehicleType
	}
	if vehicleUpdateDTO.Status != nil {
		statusType := entities.VehicleStatusType(*vehicleUpdateDTO.Status)
		vehicleModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateVehicle(r.Context(), vehicleModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidLicensePlate),
			errors.Is(err, vehicle.ErrInvalidType),
			errors.Is(err, vehicle.ErrInvalidStatus),
			errors.Is(err, vehicle.ErrInvalidMaxLoad),
			errors.Is(err, vehicle.ErrInvalidOdometer):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, vehicle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewVehicle(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
