package vehicle_status_log_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/statuslog"
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
	var logCreateDTO dto.VehicleStatusLogCreate
	err := json.NewDecoder(r.Body).Decode(&logCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	changeEntity := entities.VehicleStatusChange{
		VehicleID:      logCreateDTO.VehicleID,
		TripID:         logCreateDTO.TripID,
		MaintenanceID:  logCreateDTO.MaintenanceID,
		PreviousStatus: entities.VehicleStatusType(logCreateDTO.PreviousStatus),
		NewStatus:      entities.VehicleStatusType(logCreateDTO.NewStatus),
		ChangedReason:  entities.VehicleChangeReason(logCreateDTO.ChangedReason),
		Remarks:        logCreateDTO.Remarks,
		ChangedAt:      logCreateDTO.ChangedAt,
		ActorID:        logCreateDTO.ActorID,
	}
	if logCreateDTO.OdometerAtChange != nil {
		changeEntity.OdometerAtChange = *logCreateDTO.OdometerAtChange
	}

	res, err := h.service.RecordVehicleStatusChange(r.Context(), changeEntity)
	if err != nil {
		switch {
		case errors.Is(err, statuslog.ErrMissingRequiredFields),
			errors.Is(err, statuslog.ErrInvalidStatus),
			errors.Is(err, statuslog.ErrInvalidReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrVehicleNotFound),
			errors.Is(err, statuslog.ErrTripNotFound),
			errors.Is(err, statuslog.ErrMaintenanceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, statuslog.ErrStatusConflict),
			errors.Is(err, vehicle.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewVehicleStatusLog(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
