package maintenance_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var maintenanceCreateDTO dto.MaintenanceCreate
	err := json.NewDecoder(r.Body).Decode(&maintenanceCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.MaintenanceCreate{
		VehicleID:            maintenanceCreateDTO.VehicleID,
		ServiceType:          maintenanceCreateDTO.ServiceType,
		ServiceDescription:   maintenanceCreateDTO.ServiceDescription,
		ServiceProvider:      maintenanceCreateDTO.ServiceProvider,
		ServiceProviderPhone: maintenanceCreateDTO.ServiceProviderPhone,
		ServiceDate:          maintenanceCreateDTO.ServiceDate,
		ExpectedCompletion:   maintenanceCreateDTO.ExpectedCompletion,
		NextServiceDueKm:     maintenanceCreateDTO.NextServiceDueKm,
		NextServiceDueDate:   maintenanceCreateDTO.NextServiceDueDate,
	}
	if maintenanceCreateDTO.LabourCost != nil {
		createEntity.LabourCost = *maintenanceCreateDTO.LabourCost
	}
	if maintenanceCreateDTO.PartsCost != nil {
		createEntity.PartsCost = *maintenanceCreateDTO.PartsCost
	}
	if maintenanceCreateDTO.OdometerAtService != nil {
		createEntity.OdometerAtService = *maintenanceCreateDTO.OdometerAtService
	}

	logEntity, err := h.service.StartMaintenance(r.Context(), createEntity, maintenanceCreateDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, maintenance.ErrVehicleOutOfService),
			errors.Is(err, maintenance.ErrConflict),
			errors.Is(err, vehicle.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewMaintenanceLog(*logEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
