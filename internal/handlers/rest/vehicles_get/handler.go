package vehicles_get

import (
	"encoding/json"
	"net/http"

	"fleetops/internal/dto"
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
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	vehicleEntities, err := h.service.GetVehicles(r.Context(), includeDeleted)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	vehicleDTOs := make([]dto.Vehicle, len(vehicleEntities))
	for i, vehicleEntity := range vehicleEntities {
		vehicleDTOs[i] = dto.NewVehicle(vehicleEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
