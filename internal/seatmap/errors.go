package seatmap

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested outside
	// 1..MaxRows rows or 1..MaxColumns columns.
	ErrInvalidDimensions = errors.New("invalid seat map dimensions")

	// ErrMalformedSeat is returned when a seat token is not a row letter
	// followed by a column number.
	ErrMalformedSeat = errors.New("malformed seat reference")

	// ErrInvalidSeatReference is returned when a seat names a row or column
	// that does not exist in the grid.
	ErrInvalidSeatReference = errors.New("seat does not exist")

	ErrSeatTaken = errors.New("seat already taken")

	// ErrInvalidSeatCount is returned when a transaction asks for zero,
	// negative or more seats than are still free.
	ErrInvalidSeatCount = errors.New("invalid number of seats")

	// ErrInsufficientSeats is returned when the starting-seat walk runs off
	// the grid before the requested count is reached.
	ErrInsufficientSeats = errors.New("not enough seats after starting seat")

	// ErrStaleTransaction is returned when the live map changed between
	// Begin and Commit.
	ErrStaleTransaction = errors.New("seat map changed during allocation")

	ErrNothingAllocated = errors.New("no seats allocated")
)
