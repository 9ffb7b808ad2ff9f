package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a looked-up user does not exist.
// A miss on a valid id is a normal outcome, not a store failure.
var ErrNotFound = errors.New("user not found")

// ValidationError reports a required field left blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ConflictError reports a username or email already held by another user.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// NotFoundError reports that the referenced user id does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user not found with id: %d", e.ID)
}
