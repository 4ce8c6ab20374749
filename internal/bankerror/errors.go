// Package bankerror defines the typed errors returned by the registry,
// store and transaction engine. Callers detect them with errors.As and
// re-prompt; none of them indicates a half-applied mutation.
package bankerror

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidNameError reports an account name that is empty or contains a
// reserved path character.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid account name '%s': %s", e.Name, e.Reason)
}

// AlreadyExistsError reports an attempt to create an account whose
// directory already exists.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("account '%s' already exists", e.Name)
}

// NotFoundError reports an operation on an account that has no directory.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account '%s' not found", e.Name)
}

// InvalidAmountError reports a transaction or target amount that is not
// strictly positive.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must be greater than 0, got %s", e.Amount.String())
}

// TargetExceededError reports a deposit that would push the balance past
// the target. Remaining is the maximum amount still depositable.
type TargetExceededError struct {
	Amount    decimal.Decimal
	Remaining decimal.Decimal
}

func (e *TargetExceededError) Error() string {
	return fmt.Sprintf("deposit of %s exceeds target: at most %s can still be deposited",
		e.Amount.StringFixed(2), e.Remaining.StringFixed(2))
}

// InsufficientFundsError reports a withdrawal larger than the current
// balance. Available is the balance at the time of the attempt.
type InsufficientFundsError struct {
	Amount    decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("withdrawal of %s exceeds current balance of %s",
		e.Amount.StringFixed(2), e.Available.StringFixed(2))
}

// StorageWriteError reports a failed write of the primary record or its
// backup copy. The in-memory mutation is not considered committed.
type StorageWriteError struct {
	Account string
	Path    string
	Err     error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("failed to persist account '%s' to %s: %v", e.Account, e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
