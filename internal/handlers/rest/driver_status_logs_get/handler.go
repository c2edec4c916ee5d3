package driver_status_logs_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
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
	query := r.URL.Query()

	var filter entities.DriverStatusLogFilter
	if raw := query.Get("driver_id"); raw != "" {
		driverID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.DriverID = &driverID
	}
	if raw := query.Get("trip_id"); raw != "" {
		tripID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.TripID = &tripID
	}
	if raw := query.Get("reason"); raw != "" {
		reason := entities.DriverChangeReason(raw)
		filter.ChangedReason = &reason
	}
	if raw := query.Get("incident_type"); raw != "" {
		incidentType := entities.IncidentType(raw)
		filter.IncidentType = &incidentType
	}
	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.FromDate = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.ToDate = &to
	}

	page := pageFromQuery(r)

	logEntities, total, err := h.service.GetDriverLogs(r.Context(), filter, page)
	if err != nil {
		switch {
		case errors.Is(err, statuslog.ErrInvalidReason),
			errors.Is(err, statuslog.ErrInvalidIncidentType):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
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
