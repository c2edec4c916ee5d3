package trip_complete_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/trip"
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

	// Все поля закрытия опциональны, пустое тело допустимо.
	var completeDTO dto.TripCompleteRequest
	err = json.NewDecoder(r.Body).Decode(&completeDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	completion := entities.TripCompletion{
		OdometerEndKm:   completeDTO.OdometerEndKm,
		ActualDistKm:    completeDTO.ActualDistKm,
		CompletionNotes: completeDTO.CompletionNotes,
	}

	tripEntity, err := h.service.CompleteTrip(r.Context(), id, completion, completeDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrInvalidOdometer):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, trip.ErrTripNotActive):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewTrip(*tripEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
