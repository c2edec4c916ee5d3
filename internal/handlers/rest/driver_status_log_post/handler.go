package driver_status_log_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/driver"
	"fleetops/internal/service/statuslog"
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
	var logCreateDTO dto.DriverStatusLogCreate
	err := json.NewDecoder(r.Body).Decode(&logCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	changeEntity := entities.DriverStatusChange{
		DriverID:            logCreateDTO.DriverID,
		TripID:              logCreateDTO.TripID,
		PreviousStatus:      entities.DriverStatusType(logCreateDTO.PreviousStatus),
		NewStatus:           entities.DriverStatusType(logCreateDTO.NewStatus),
		ChangedReason:       entities.DriverChangeReason(logCreateDTO.ChangedReason),
		Remarks:             logCreateDTO.Remarks,
		IncidentDescription: logCreateDTO.IncidentDescription,
		SafetyScoreBefore:   logCreateDTO.SafetyScoreBefore,
		SafetyScoreAfter:    logCreateDTO.SafetyScoreAfter,
		ChangedAt:           logCreateDTO.ChangedAt,
		ActorID:             logCreateDTO.ActorID,
	}
	if logCreateDTO.IncidentType != nil {
		incidentType := entities.IncidentType(*logCreateDTO.IncidentType)
		changeEntity.IncidentType = &incidentType
	}

	res, err := h.service.RecordDriverStatusChange(r.Context(), changeEntity)
	if err != nil {
		switch {
		case errors.Is(err, statuslog.ErrMissingRequiredFields),
			errors.Is(err, statuslog.ErrInvalidStatus),
			errors.Is(err, statuslog.ErrInvalidReason),
			errors.Is(err, statuslog.ErrInvalidIncidentType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound),
			errors.Is(err, statuslog.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, statuslog.ErrStatusConflict),
			errors.Is(err, driver.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDriverStatusLog(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
