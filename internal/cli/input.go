package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gic-cinema/internal/seatmap"
)

var ErrInvalidMovieSpec = errors.New("expected [Title] [Row] [SeatsPerRow]")

// MovieSpec is the screening defined at startup.
type MovieSpec struct {
	Title   string
	Rows    int
	Columns int
}

// ValidateInput parses a "[Title] [Row] [SeatsPerRow]" line.
func ValidateInput(line string) (MovieSpec, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return MovieSpec{}, fmt.Errorf("%w: got %d values", ErrInvalidMovieSpec, len(fields))
	}

	rows, err := strconv.Atoi(fields[1])
	if err != nil {
		return MovieSpec{}, fmt.Errorf("%w: row count %q is not a number", ErrInvalidMovieSpec, fields[1])
	}
	columns, err := strconv.Atoi(fields[2])
	if err != nil {
		return MovieSpec{}, fmt.Errorf("%w: seats per row %q is not a number", ErrInvalidMovieSpec, fields[2])
	}

	if rows <= 0 || columns <= 0 {
		return MovieSpec{}, fmt.Errorf("%w: rows and seats per row must be positive integers", seatmap.ErrInvalidDimensions)
	}
	if rows > seatmap.MaxRows || columns > seatmap.MaxColumns {
		return MovieSpec{}, fmt.Errorf("%w: rows <= %d, seats per row <= %d",
			seatmap.ErrInvalidDimensions, seatmap.MaxRows, seatmap.MaxColumns)
	}

	return MovieSpec{Title: fields[0], Rows: rows, Columns: columns}, nil
}

// ParseSeatCount accepts a positive integer no larger than available.
func ParseSeatCount(line string, available int) (int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("%w: empty", seatmap.ErrInvalidSeatCount)
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", seatmap.ErrInvalidSeatCount, line)
		}
	}

	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 || n > available {
		return 0, fmt.Errorf("%w: %q with %d available", seatmap.ErrInvalidSeatCount, line, available)
	}
	return n, nil
}
