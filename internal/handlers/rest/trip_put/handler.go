package trip_put

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var tripUpdateDTO dto.TripUpdate
	err := json.NewDecoder(r.Body).Decode(&tripUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tripModifyEntity := entities.TripModify{
		ID:                 &tripUpdateDTO.ID,
		OriginAddress:      tripUpdateDTO.OriginAddress,
		DestinationAddress: tripUpdateDTO.DestinationAddress,
		EstimatedDistKm:    tripUpdateDTO.EstimatedDistKm,
		CargoWeightKg:      tripUpdateDTO.CargoWeightKg,
		ScheduledStart:     tripUpdateDTO.ScheduledStart,
		ScheduledEnd:       tripUpdateDTO.ScheduledEnd,
		UpdatedBy:          tripUpdateDTO.ActorID,
	}

	res, err := h.service.UpdateTrip(r.Context(), tripModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, trip.ErrTripNotDraft):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewTrip(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
