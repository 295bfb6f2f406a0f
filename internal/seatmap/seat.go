package seatmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat addresses one cell of the grid. Row and Col are zero-based.
type Seat struct {
	Row int
	Col int
}

// Label returns the printed form of the seat, e.g. "C3".
func (s Seat) Label() string {
	return RowLabel(s.Row) + strconv.Itoa(s.Col+1)
}

func (s Seat) String() string {
	return s.Label()
}

// Labels converts seats to their labels, preserving order.
func Labels(seats []Seat) []string {
	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.Label())
	}
	return labels
}

// RowLabel returns the capital letter for a zero-based row index.
func RowLabel(row int) string {
	return string(rune('A' + row))
}

// ParseSeat splits a token such as "C3" or "c3" into a row letter and a
// column number. It does not check the token against any grid.
func ParseSeat(token string) (rowLetter byte, column int, err error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedSeat, token)
	}

	rowLetter = strings.ToUpper(token[:1])[0]
	if rowLetter < 'A' || rowLetter > 'Z' {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedSeat, token)
	}

	digits := token[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedSeat, token)
		}
	}
	column, err = strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedSeat, token)
	}
	return rowLetter, column, nil
}
