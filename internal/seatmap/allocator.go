package seatmap

import (
	"fmt"
)

// allocation is the state of one allocation pass. Each step returns the
// updated value instead of mutating captured counters.
type allocation struct {
	grid   *SeatMap
	want   int
	picked []Seat
}

func newAllocation(snapshot *SeatMap, want int) allocation {
	return allocation{grid: snapshot.Clone(), want: want, picked: make([]Seat, 0, want)}
}

func (a allocation) done() bool {
	return len(a.picked) == a.want
}

// take books seat on the working grid when it is Free.
func (a allocation) take(seat Seat) allocation {
	if a.done() || !a.grid.IsFree(seat) {
		return a
	}
	// IsFree guarantees MarkTaken succeeds.
	_ = a.grid.MarkTaken(seat)
	a.picked = append(a.picked, seat)
	return a
}

// centreOut fills each row from the middle seat outwards, front row first.
func centreOut(a allocation) allocation {
	columns := a.grid.Columns()
	mid := columns / 2
	for row := 0; row < a.grid.Rows() && !a.done(); row++ {
		for offset := 0; offset <= mid && !a.done(); offset++ {
			left, right := mid-offset, mid+offset
			if left >= 0 {
				a = a.take(Seat{Row: row, Col: left})
			}
			if right != left && right < columns {
				a = a.take(Seat{Row: row, Col: right})
			}
		}
	}
	return a
}

// leftToRight walks from start to the end of its row, then every following
// row from the first seat.
func leftToRight(a allocation, start Seat) allocation {
	for row := start.Row; row < a.grid.Rows() && !a.done(); row++ {
		col := 0
		if row == start.Row {
			col = start.Col
		}
		for ; col < a.grid.Columns() && !a.done(); col++ {
			a = a.take(Seat{Row: row, Col: col})
		}
	}
	return a
}

// Transaction is one booking attempt against a SeatMap. Provisional
// selections live on a private copy; the live map changes only in Commit.
type Transaction struct {
	live     *SeatMap
	snapshot *SeatMap
	current  allocation
	closed   bool
}

// Begin opens a transaction for n seats on m.
func Begin(m *SeatMap, n int) (*Transaction, error) {
	if n < 1 || n > m.Available() {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrInvalidSeatCount, n, m.Available())
	}
	snapshot := m.Clone()
	return &Transaction{
		live:     m,
		snapshot: snapshot,
		current:  newAllocation(snapshot, n),
	}, nil
}

// AllocateDefault replaces the provisional selection with the best available
// seats: centre-outward within a row, rows front to back.
func (tx *Transaction) AllocateDefault() []Seat {
	tx.current = centreOut(newAllocation(tx.snapshot, tx.current.want))
	return tx.Seats()
}

// AllocateFrom replaces the provisional selection with seats taken left to
// right starting at start. On error the previous selection is kept.
func (tx *Transaction) AllocateFrom(start Seat) ([]Seat, error) {
	if !tx.snapshot.Contains(start) {
		return nil, fmt.Errorf("%w: row %d, column %d", ErrInvalidSeatReference, start.Row, start.Col)
	}

	next := leftToRight(newAllocation(tx.snapshot, tx.current.want), start)
	if !next.done() {
		return nil, fmt.Errorf("%w: only %d of %d seats free from %s",
			ErrInsufficientSeats, len(next.picked), next.want, start.Label())
	}
	tx.current = next
	return tx.Seats(), nil
}

// Seats returns a copy of the provisional selection in selection order.
func (tx *Transaction) Seats() []Seat {
	return append([]Seat(nil), tx.current.picked...)
}

// Preview returns a copy of the map as it would look after Commit.
func (tx *Transaction) Preview() *SeatMap {
	return tx.current.grid.Clone()
}

// Commit marks the provisional seats Taken on the live map. Nothing is
// mutated when it fails.
func (tx *Transaction) Commit() ([]Seat, error) {
	if tx.closed {
		return nil, fmt.Errorf("%w: transaction already closed", ErrStaleTransaction)
	}
	if len(tx.current.picked) == 0 {
		return nil, ErrNothingAllocated
	}
	if !tx.live.Equal(tx.snapshot) {
		return nil, ErrStaleTransaction
	}

	for _, seat := range tx.current.picked {
		if err := tx.live.MarkTaken(seat); err != nil {
			// Unreachable while the live map equals the snapshot.
			return nil, err
		}
	}
	tx.closed = true
	return tx.Seats(), nil
}

// Rollback discards the provisional selection.
func (tx *Transaction) Rollback() {
	tx.current = newAllocation(tx.snapshot, tx.current.want)
	tx.closed = true
}
