package entities

import "time"

type Expense struct {
	ID            int64
	TripID        *int64
	ExpenseType   string
	Amount        float64
	Description   *string
	ExpenseDate   time.Time
	ReceiptNumber *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     *int64
	UpdatedBy     *int64
	IsDeleted     bool
}

type ExpenseCreate struct {
	TripID        *int64
	ExpenseType   string
	Amount        float64
	Description   *string
	ExpenseDate   time.Time
	ReceiptNumber *string
}

type ExpenseModify struct {
	ID            *int64
	ExpenseType   *string
	Amount        *float64
	Description   *string
	ExpenseDate   *time.Time
	ReceiptNumber *string
	UpdatedBy     *int64
}

type ExpenseFilter struct {
	TripID      *int64
	ExpenseType *string
	FromDate    *time.Time
	ToDate      *time.Time
}
