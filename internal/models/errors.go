package models

import "fmt"

// ValidationError indicates a malformed checkout request. The caller must fix
// the input before retrying.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError indicates an unknown customer or catalog item.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError indicates an item that cannot currently be sold, such as a
// withdrawn catalog item. The caller may resubmit with adjusted lines.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InsufficientStockError indicates a merchandise line whose quantity exceeds
// the remaining stock balance at validation time.
type InsufficientStockError struct {
	ItemID    int
	Name      string
	Requested int
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (id %d): requested %d, %d remaining",
		e.Name, e.ItemID, e.Requested, e.Remaining)
}

// CommitError indicates a storage failure while persisting a validated
// checkout. Nothing was written, so the whole checkout is safe to retry.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("checkout commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Common errors used throughout the application
var (
	ErrEmptyCart        = &ValidationError{Message: "cart is empty"}
	ErrInvalidCustomer  = &ValidationError{Message: "customer id must be a positive integer"}
	ErrCustomerNotFound = &NotFoundError{Message: "customer not found"}
)
