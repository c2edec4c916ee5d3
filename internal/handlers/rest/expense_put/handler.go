package expense_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetops/internal/dto"
	"fleetops/internal/entities"
	"fleetops/internal/service/expense"
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
	var expenseUpdateDTO dto.ExpenseUpdate
	err := json.NewDecoder(r.Body).Decode(&expenseUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	expenseModifyEntity := entities.ExpenseModify{
		ID:            &expenseUpdateDTO.ID,
		ExpenseType:   expenseUpdateDTO.ExpenseType,
		Amount:        expenseUpdateDTO.Amount,
		Description:   expenseUpdateDTO.Description,
		ExpenseDate:   expenseUpdateDTO.ExpenseDate,
		ReceiptNumber: expenseUpdateDTO.ReceiptNumber,
		UpdatedBy:     expenseUpdateDTO.ActorID,
	}

	res, err := h.service.UpdateExpense(r.Context(), expenseModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, expense.ErrMissingRequiredFields),
			errors.Is(err, expense.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, expense.ErrExpenseNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewExpense(*res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
