package vehicle_post

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
	var vehicleCreateDTO dto.VehicleCreate
	err := json.NewDecoder(r.Body).Decode(&vehicleCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleType := entities.VehicleType(vehicleCreateDTO.Type)
	vehicleModifyEntity := entities.VehicleModify{
		LicensePlate:    &vehicleCreateDTO.LicensePlate,
		Make:            &vehicleCreateDTO.Make,
		Model:           &vehicleCreateDTO.Model,
		Year:            &vehicleCreateDTO.Year,
		Type:            &vehicleType,
		MaxLoadKg:       &vehicleCreateDTO.MaxLoadKg,
		FuelTankLiters:  vehicleCreateDTO.FuelTankLiters,
		OdometerKm:      vehicleCreateDTO.OdometerKm,
		AcquisitionCost: vehicleCreateDTO.AcquisitionCost,
	}
	if vehicleCreateDTO.Status != nil {
		statusType := entities.VehicleStatusType(*vehicleCreateDTO.Status)
		vehicleModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateVehicle(r.Context(), vehicleModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidLicensePlate),
			errors.Is(err, vehicle.ErrInvalidType),
			errors.Is(err, vehicle.ErrInvalidStatus),
			errors.Is(err, vehicle.ErrInvalidMaxLoad),
			errors.Is(err, vehicle.ErrInvalidOdometer):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.VehicleCreateResponse{
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
