package driver_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleetops/internal/service/driver"
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

	err = h.service.DeleteDriver(r.Context(), id, actorIDFromQuery(r))
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func actorIDFromQuery(r *http.Request) *int64 {
	raw := r.URL.Query().Get("actor_id")
	if raw == "" {
		return nil
	}
	actorID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &actorID
}
