package drivers_get

import (
	"encoding/json"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
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
	var driverEntities []entities.Driver
	var err error

	// expired_license=true отдаёт водителей с просроченными, но ещё
	// не инвалидированными правами.
	if r.URL.Query().Get("expired_license") == "true" {
		driverEntities, err = h.service.GetExpiredLicenseDrivers(r.Context())
	} else {
		includeDeleted := r.URL.Query().Get("include_deleted") == "true"
		driverEntities, err = h.service.GetDrivers(r.Context(), includeDeleted)
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	driverDTOs := make([]dto.Driver, len(driverEntities))
	for i, driverEntity := range driverEntities {
		driverDTOs[i] = dto.NewDriver(driverEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
