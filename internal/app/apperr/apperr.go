package apperr

import "errors"

var (
	// ErrNotFound requested entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict entity already exists and belongs to somebody else
	ErrConflict = errors.New("conflict")
	// ErrSoftConflict entity already exists and belongs to the caller
	ErrSoftConflict = errors.New("already exists")
	// ErrInvalidInput payload failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientFunds wallet balance does not cover the requested amount
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnauthorized missing or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConfigUnavailable commission settings are missing, settlement must not start
	ErrConfigUnavailable = errors.New("commission config unavailable")
)
