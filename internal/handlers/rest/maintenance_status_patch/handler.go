package maintenance_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/maintenance"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.MaintenanceStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	completion := entities.MaintenanceCompletion{
		ActualCompletion: statusUpdateDTO.ActualCompletion,
		CompletionNotes:  statusUpdateDTO.CompletionNotes,
	}

	logEntity, err := h.service.TransitionMaintenance(r.Context(), id,
		entities.MaintenanceStatusType(statusUpdateDTO.Status), completion, statusUpdateDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, maintenance.ErrMaintenanceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, maintenance.ErrMaintenanceTerminal),
			errors.Is(err, maintenance.ErrInvalidTransition),
			errors.Is(err, vehicle.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewMaintenanceLog(*logEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
