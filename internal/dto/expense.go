package dto

import "time"

type Expense struct {
	ID            int64     `json:"id"`
	TripID        *int64    `json:"trip_id,omitempty"`
	ExpenseType   string    `json:"expense_type"`
	Amount        float64   `json:"amount"`
	Description   *string   `json:"description,omitempty"`
	ExpenseDate   time.Time `json:"expense_date"`
	ReceiptNumber *string   `json:"receipt_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ExpenseCreate struct {
	TripID        *int64    `json:"trip_id,omitempty"`
	ExpenseType   string    `json:"expense_type"`
	Amount        float64   `json:"amount"`
	Description   *string   `json:"description,omitempty"`
	ExpenseDate   time.Time `json:"expense_date"`
	ReceiptNumber *string   `json:"receipt_number,omitempty"`
	ActorID       *int64    `json:"actor_id,omitempty"`
}

type ExpenseUpdate struct {
	ID            int64      `json:"id"`
	ExpenseType   *string    `json:"expense_type,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	Description   *string    `json:"description,omitempty"`
	ExpenseDate   *time.Time `json:"expense_date,omitempty"`
	ReceiptNumber *string    `json:"receipt_number,omitempty"`
	ActorID       *int64     `json:"actor_id,omitempty"`
}

type ExpenseList struct {
	Success bool      `json:"success"`
	Data    []Expense `json:"data"`
	Meta    ListMeta  `json:"meta"`
}
