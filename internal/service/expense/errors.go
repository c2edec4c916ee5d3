package expense

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("invalid expense amount")

	ErrExpenseNotFound = errors.New("expense not found")
)
