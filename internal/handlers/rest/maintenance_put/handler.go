package maintenance_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/maintenance"
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
	var maintenanceUpdateDTO dto.MaintenanceUpdate
	err := json.NewDecoder(r.Body).Decode(&maintenanceUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	maintenanceModifyEntity := entities.MaintenanceModify{
		ID:                   &maintenanceUpdateDTO.ID,
		ServiceType:          maintenanceUpdateDTO.ServiceType,
		ServiceDescription:   maintenanceUpdateDTO.ServiceDescription,
		ServiceProvider:      maintenanceUpdateDTO.ServiceProvider,
		ServiceProviderPhone: maintenanceUpdateDTO.ServiceProviderPhone,
		ServiceDate:          maintenanceUpdateDTO.ServiceDate,
		ExpectedCompletion:   maintenanceUpdateDTO.ExpectedCompletion,
		LabourCost:           maintenanceUpdateDTO.LabourCost,
		PartsCost:            maintenanceUpdateDTO.PartsCost,
		OdometerAtService:    maintenanceUpdateDTO.OdometerAtService,
		CompletionNotes:      maintenanceUpdateDTO.CompletionNotes,
		NextServiceDueKm:     maintenanceUpdateDTO.NextServiceDueKm,
		NextServiceDueDate:   maintenanceUpdateDTO.NextServiceDueDate,
		UpdatedBy:            maintenanceUpdateDTO.ActorID,
	}

	res, err := h.service.UpdateMaintenance(r.Context(), maintenanceModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, maintenance.ErrMaintenanceNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, maintenance.ErrMaintenanceTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewMaintenanceLog(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
