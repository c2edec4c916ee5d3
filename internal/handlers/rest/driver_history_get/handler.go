package driver_history_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	driverID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page := pageFromQuery(r)

	logEntities, total, err := h.service.GetDriverHistory(r.Context(), driverID, page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logDTOs := make([]dto.DriverStatusLog, len(logEntities))
	for i, logEntity := range logEntities {
		logDTOs[i] = dto.NewDriverStatusLog(logEntity)
	}

	normalized := page.Normalize()
	response := dto.DriverStatusLogList{
		Success: true,
		Data:    logDTOs,
		Meta:    dto.NewListMeta(total, normalized.Number, normalized.Limit),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func pageFromQuery(r *http.Request) entities.Page {
	var page entities.Page
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page.Number = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page.Limit = n
		}
	}
	return page
}
