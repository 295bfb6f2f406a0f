package seatmap

import (
	"fmt"
)

const (
	MaxRows    = 26
	MaxColumns = 50
)

// State is the booking state of a single seat.
type State uint8

const (
	Free State = iota
	Taken
)

// SeatMap is the booking grid of one auditorium. Its dimensions are fixed at
// creation and seats only ever move from Free to Taken.
type SeatMap struct {
	rows    int
	columns int
	cells   [][]State
	taken   int
}

// New creates an all-Free grid of rows x columns seats.
func New(rows, columns int) (*SeatMap, error) {
	if rows < 1 || rows > MaxRows || columns < 1 || columns > MaxColumns {
		return nil, fmt.Errorf("%w: %d rows x %d seats (rows 1-%d, seats per row 1-%d)",
			ErrInvalidDimensions, rows, columns, MaxRows, MaxColumns)
	}

	cells := make([][]State, rows)
	for r := range cells {
		cells[r] = make([]State, columns)
	}
	return &SeatMap{rows: rows, columns: columns, cells: cells}, nil
}

func (m *SeatMap) Rows() int    { return m.rows }
func (m *SeatMap) Columns() int { return m.columns }

// Capacity is the total number of seats in the grid.
func (m *SeatMap) Capacity() int { return m.rows * m.columns }

// CountTaken returns the number of Taken seats.
func (m *SeatMap) CountTaken() int { return m.taken }

// Available returns the number of Free seats.
func (m *SeatMap) Available() int { return m.Capacity() - m.taken }

// Contains reports whether seat lies inside the grid.
func (m *SeatMap) Contains(seat Seat) bool {
	return seat.Row >= 0 && seat.Row < m.rows && seat.Col >= 0 && seat.Col < m.columns
}

// IsFree reports whether seat is inside the grid and Free.
func (m *SeatMap) IsFree(seat Seat) bool {
	return m.Contains(seat) && m.cells[seat.Row][seat.Col] == Free
}

// StateAt returns the state of seat. Seats outside the grid report Taken.
func (m *SeatMap) StateAt(seat Seat) State {
	if !m.Contains(seat) {
		return Taken
	}
	return m.cells[seat.Row][seat.Col]
}

// MarkTaken moves seat from Free to Taken.
func (m *SeatMap) MarkTaken(seat Seat) error {
	if !m.Contains(seat) {
		return fmt.Errorf("%w: row %d, column %d", ErrInvalidSeatReference, seat.Row, seat.Col)
	}
	if m.cells[seat.Row][seat.Col] == Taken {
		return fmt.Errorf("%w: %s", ErrSeatTaken, seat.Label())
	}
	m.cells[seat.Row][seat.Col] = Taken
	m.taken++
	return nil
}

// RowIndex maps a row letter to its zero-based index within this grid.
func (m *SeatMap) RowIndex(letter byte) (int, bool) {
	idx := int(letter) - 'A'
	if idx < 0 || idx >= m.rows {
		return 0, false
	}
	return idx, true
}

// ColumnIndex maps a one-based column number to its zero-based index within
// this grid.
func (m *SeatMap) ColumnIndex(number int) (int, bool) {
	if number < 1 || number > m.columns {
		return 0, false
	}
	return number - 1, true
}

// Locate resolves a token such as "C3" against the grid.
func (m *SeatMap) Locate(token string) (Seat, error) {
	letter, number, err := ParseSeat(token)
	if err != nil {
		return Seat{}, err
	}
	row, ok := m.RowIndex(letter)
	if !ok {
		return Seat{}, fmt.Errorf("%w: row %c not in A-%s", ErrInvalidSeatReference, letter, RowLabel(m.rows-1))
	}
	col, ok := m.ColumnIndex(number)
	if !ok {
		return Seat{}, fmt.Errorf("%w: seat %d not in 1-%d", ErrInvalidSeatReference, number, m.columns)
	}
	return Seat{Row: row, Col: col}, nil
}

// Clone returns an independent deep copy of the grid.
func (m *SeatMap) Clone() *SeatMap {
	cells := make([][]State, m.rows)
	for r := range m.cells {
		cells[r] = append([]State(nil), m.cells[r]...)
	}
	return &SeatMap{rows: m.rows, columns: m.columns, cells: cells, taken: m.taken}
}

// Equal reports whether both grids have the same dimensions and seat states.
func (m *SeatMap) Equal(other *SeatMap) bool {
	if m.rows != other.rows || m.columns != other.columns || m.taken != other.taken {
		return false
	}
	for r := range m.cells {
		for c := range m.cells[r] {
			if m.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
