package expense_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/expense"
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
	var expenseCreateDTO dto.ExpenseCreate
	err := json.NewDecoder(r.Body).Decode(&expenseCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.ExpenseCreate{
		TripID:        expenseCreateDTO.TripID,
		ExpenseType:   expenseCreateDTO.ExpenseType,
		Amount:        expenseCreateDTO.Amount,
		Description:   expenseCreateDTO.Description,
		ExpenseDate:   expenseCreateDTO.ExpenseDate,
		ReceiptNumber: expenseCreateDTO.ReceiptNumber,
	}

	expenseEntity, err := h.service.CreateExpense(r.Context(), createEntity, expenseCreateDTO.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, expense.ErrMissingRequiredFields),
			errors.Is(err, expense.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewExpense(*expenseEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
