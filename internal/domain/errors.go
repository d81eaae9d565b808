package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPoolNotFound = errors.New("Investment pool not found")
	ErrUserNotFound = errors.New("User not found")
)

// ValidationError reports malformed input: a non-numeric id or a body that
// does not match the expected schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an absent pool or user. It matches ErrPoolNotFound
// or ErrUserNotFound under errors.Is.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrPoolNotFound:
		return e.Entity == "pool"
	case ErrUserNotFound:
		return e.Entity == "user"
	}
	return false
}

// PoolNotFound and UserNotFound build the two NotFoundError kinds.
func PoolNotFound(id int64) error { return &NotFoundError{Entity: "pool", ID: id} }
func UserNotFound(id int64) error { return &NotFoundError{Entity: "user", ID: id} }

// CapacityReason classifies why a pool refused an investment.
type CapacityReason string

const (
	ReasonBelowMinimum     CapacityReason = "BelowMinimum"
	ReasonInvalidIncrement CapacityReason = "InvalidIncrement"
	ReasonCapacityExceeded CapacityReason = "CapacityExceeded"
	ReasonTargetExceeded   CapacityReason = "TargetExceeded"
	ReasonPoolFull         CapacityReason = "PoolFull"
)

// CapacityError carries the refusal reason and a message for the investor.
type CapacityError struct {
	Reason  CapacityReason
	Message string
}

func (e *CapacityError) Error() string {
	return e.Message
}

// IsCapacityReason reports whether err is a CapacityError with the reason.
func IsCapacityReason(err error, reason CapacityReason) bool {
	var ce *CapacityError
	return errors.As(err, &ce) && ce.Reason == reason
}
