package expenses_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

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
	query := r.URL.Query()

	var filter entities.ExpenseFilter
	if raw := query.Get("trip_id"); raw != "" {
		tripID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.TripID = &tripID
	}
	if raw := query.Get("expense_type"); raw != "" {
		filter.ExpenseType = &raw
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

	expenseEntities, total, err := h.service.GetExpenses(r.Context(), filter, page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	expenseDTOs := make([]dto.Expense, len(expenseEntities))
	for i, expenseEntity := range expenseEntities {
		expenseDTOs[i] = dto.NewExpense(expenseEntity)
	}

	normalized := page.Normalize()
	response := dto.ExpenseList{
		Success: true,
		Data:    expenseDTOs,
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
