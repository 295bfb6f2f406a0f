package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gic-cinema/internal/booking"
	"gic-cinema/internal/logger"
	"gic-cinema/internal/seatmap"
)

// Session is one movie screening: its title, its seat map and the bookings
// made against it.
type Session struct {
	ID       string
	Title    string
	Map      *seatmap.SeatMap
	Registry *booking.Registry
	logger   *logger.Logger
}

func New(title string, rows, columns int, registry *booking.Registry, log *logger.Logger) (*Session, error) {
	m, err := seatmap.New(rows, columns)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.New().String(),
		Title:    title,
		Map:      m,
		Registry: registry,
		logger:   log,
	}
	log.LogSession(s.ID, fmt.Sprintf("opened %q with %d rows x %d seats", title, rows, columns))
	return s, nil
}

func (s *Session) Capacity() int  { return s.Map.Capacity() }
func (s *Session) Available() int { return s.Map.Available() }

// StartBooking opens an allocation for n seats with the default selection
// already made.
func (s *Session) StartBooking(n int) (*seatmap.Transaction, error) {
	tx, err := seatmap.Begin(s.Map, n)
	if err != nil {
		return nil, err
	}

	seats := tx.AllocateDefault()
	s.logger.LogAllocation("default", fmt.Sprintf("%d seats: %v", n, seatmap.Labels(seats)))
	return tx, nil
}

// Reallocate replaces the selection of tx with seats from the token's
// starting seat onwards.
func (s *Session) Reallocate(tx *seatmap.Transaction, token string) ([]seatmap.Seat, error) {
	start, err := s.Map.Locate(token)
	if err != nil {
		return nil, err
	}

	seats, err := tx.AllocateFrom(start)
	if err != nil {
		s.logger.LogAllocation("starting-seat", fmt.Sprintf("rejected %s: %v", token, err))
		return nil, err
	}
	s.logger.LogAllocation("starting-seat", fmt.Sprintf("from %s: %v", start.Label(), seatmap.Labels(seats)))
	return seats, nil
}

// Confirm stores the booking and then commits tx to the seat map. The map
// is left untouched when either step fails.
func (s *Session) Confirm(ctx context.Context, tx *seatmap.Transaction) (string, []seatmap.Seat, error) {
	selected := tx.Seats()
	if len(selected) == 0 {
		return "", nil, seatmap.ErrNothingAllocated
	}

	id, err := s.Registry.Register(ctx, s.ID, s.Title, seatmap.Labels(selected))
	if err != nil {
		return "", nil, fmt.Errorf("failed to register booking: %w", err)
	}

	seats, err := tx.Commit()
	if err != nil {
		s.logger.Warn("SESSION", fmt.Sprintf("booking %s not committed: %v", id, err))
		if undoErr := s.Registry.Unregister(ctx, id); undoErr != nil {
			return "", nil, errors.Join(err, undoErr)
		}
		return "", nil, err
	}

	s.logger.LogSession(s.ID, fmt.Sprintf("booked %s, %d seats remaining", id, s.Available()))
	return id, seats, nil
}

// Lookup returns the seats of a booking. An unknown ID is not an error.
func (s *Session) Lookup(ctx context.Context, id string) ([]seatmap.Seat, bool, error) {
	labels, found, err := s.Registry.Lookup(ctx, id)
	if err != nil || !found {
		return nil, found, err
	}

	seats := make([]seatmap.Seat, 0, len(labels))
	for _, label := range labels {
		seat, err := s.Map.Locate(label)
		if err != nil {
			return nil, true, fmt.Errorf("booking %s holds seat %s outside the map: %w", id, label, err)
		}
		seats = append(seats, seat)
	}
	return seats, true, nil
}

// BookingIDs lists the IDs booked so far.
func (s *Session) BookingIDs(ctx context.Context) ([]string, error) {
	return s.Registry.IDs(ctx)
}
