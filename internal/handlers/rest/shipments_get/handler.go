package shipments_get

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

	shipmentEntities, err := h.service.GetShipments(r.Context(), includeDeleted)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	shipmentDTOs := make([]dto.Shipment, len(shipmentEntities))
	for i, shipmentEntity := range shipmentEntities {
		shipmentDTOs[i] = dto.NewShipment(shipmentEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
