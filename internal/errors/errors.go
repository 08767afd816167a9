// Package errors provides custom error types for the application.
package errors

import "errors"

// Beauty package errors
var (
	ErrPackageNotFound = errors.New("beauty package not found")
)

// Booking errors
var (
	// ErrAlreadyBooked signals the storage-level uniqueness violation for a
	// (user, package) pair.
	ErrAlreadyBooked = errors.New("beauty package already booked")
	// ErrBookingNotFound is returned for a malformed or unknown booking id on reads.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingMissing covers both an absent booking and a booking owned by
	// another user on delete, so callers can't probe for foreign bookings.
	ErrBookingMissing = errors.New("booking doesn't exist")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrUnauthorized      = errors.New("unauthorized")
)
