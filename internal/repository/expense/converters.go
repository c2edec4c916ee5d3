package expense

import (
	"fleetops/internal/entities"
)

func ToDomain(e *ExpenseDB) *entities.Expense {
	if e == nil {
		return nil
	}

	return &entities.Expense{
		ID:            e.ID,
		TripID:        e.TripID,
		ExpenseType:   e.ExpenseType,
		Amount:        e.Amount,
		Description:   e.Description,
		ExpenseDate:   e.ExpenseDate,
		ReceiptNumber: e.ReceiptNumber,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		CreatedBy:     e.CreatedBy,
		UpdatedBy:     e.UpdatedBy,
		IsDeleted:     e.IsDeleted,
	}
}

func ToDomainList(expensesDB []ExpenseDB) []entities.Expense {
	if len(expensesDB) == 0 {
		return []entities.Expense{}
	}

	result := make([]entities.Expense, len(expensesDB))
	for i, expenseDB := range expensesDB {
		result[i] = *ToDomain(&expenseDB)
	}
	return result
}
