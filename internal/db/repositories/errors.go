package repositories

import "errors"

// ErrNotFound is returned when a requested catalog or inventory row does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoBaseCapacity is returned when a flight does not sell the requested
// seat class at all (no BaseFlightSeat row to initialize the ledger from).
var ErrNoBaseCapacity = errors.New("seat class not sold on this flight")

// ErrInsufficientSeats is returned when a decrement would push the ledger
// below zero. The counter is left untouched.
var ErrInsufficientSeats = errors.New("not enough seats available")
