package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingFields indicates a required form field was empty.
	ErrMissingFields = errors.New("all fields are required")

	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates no user matches the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccessDenied indicates the requester is not the administrator.
	ErrAccessDenied = errors.New("access denied: only admin can view all data")

	// ErrOutOfRange indicates a measurement outside its accepted domain.
	ErrOutOfRange = errors.New("invalid values entered, please recheck")
)

// InvalidInputError indicates a measurement field that failed to parse as a
// number. It carries the underlying parse error for the response message.
type InvalidInputError struct {
	Field string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
