package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gic-cinema/internal/logger"
	"gic-cinema/internal/models"
)

var (
	// ErrUnknownBookingID is returned by Get when no booking has the ID.
	ErrUnknownBookingID = errors.New("unknown booking id")

	// ErrBookingIDExhausted is returned when no free ID was found within the
	// configured number of attempts.
	ErrBookingIDExhausted = errors.New("could not generate a free booking id")

	ErrNoSeats = errors.New("booking has no seats")
)

const DefaultMaxAttempts = 100

type DBLayer interface {
	CreateBooking(ctx context.Context, booking models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	BookingExists(ctx context.Context, id string) (bool, error)
	ListBookingIDs(ctx context.Context) ([]string, error)
	DeleteBooking(ctx context.Context, id string) error
}

// Registry maps booking IDs to the seats they own. It is owned by one
// session; there is no process-wide table.
type Registry struct {
	DB          DBLayer
	Logger      *logger.Logger
	NewID       IDGenerator
	MaxAttempts int
	Now         func() time.Time
}

func NewRegistry(db DBLayer, log *logger.Logger, maxAttempts int) *Registry {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Registry{
		DB:          db,
		Logger:      log,
		NewID:       GenerateBookingID,
		MaxAttempts: maxAttempts,
		Now:         time.Now,
	}
}

// Register stores seats under a new booking ID and returns the ID.
func (r *Registry) Register(ctx context.Context, sessionID, movieTitle string, seats []string) (string, error) {
	if len(seats) == 0 {
		return "", ErrNoSeats
	}

	id, err := r.freeID(ctx)
	if err != nil {
		return "", err
	}

	booking := models.Booking{
		BookingID:  id,
		SessionID:  sessionID,
		MovieTitle: movieTitle,
		SeatCount:  len(seats),
		CreatedAt:  r.Now(),
		Seats:      make([]models.BookingSeat, len(seats)),
	}
	for i, label := range seats {
		booking.Seats[i] = models.BookingSeat{BookingID: id, Position: i, SeatLabel: label}
	}

	if err := r.DB.CreateBooking(ctx, booking); err != nil {
		r.Logger.Error("BOOKING", fmt.Sprintf("Failed to store booking %s: %v", id, err))
		return "", fmt.Errorf("failed to store booking %s: %w", id, err)
	}

	r.Logger.LogBooking("REGISTERED", id, fmt.Sprintf("%d seat(s) %v", len(seats), seats))
	return id, nil
}

func (r *Registry) freeID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		id := r.NewID()
		exists, err := r.DB.BookingExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check booking id %s: %w", id, err)
		}
		if !exists {
			return id, nil
		}
		r.Logger.Debug("BOOKING", fmt.Sprintf("Booking id %s already used (attempt %d/%d)", id, attempt, r.MaxAttempts))
	}
	r.Logger.Warn("BOOKING", fmt.Sprintf("No free booking id after %d attempts", r.MaxAttempts))
	return "", ErrBookingIDExhausted
}

// Get returns the full booking record.
func (r *Registry) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := r.DB.GetBookingByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBookingID, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return booking, nil
}

// Lookup returns the seats owned by id. An unknown id reports found=false
// with a nil error.
func (r *Registry) Lookup(ctx context.Context, id string) (seats []string, found bool, err error) {
	booking, err := r.Get(ctx, id)
	if errors.Is(err, ErrUnknownBookingID) {
		r.Logger.Debug("BOOKING", fmt.Sprintf("Lookup miss for %q", id))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return booking.SeatLabels(), true, nil
}

// IDs lists every registered booking ID.
func (r *Registry) IDs(ctx context.Context) ([]string, error) {
	ids, err := r.DB.ListBookingIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return ids, nil
}

// Unregister removes a booking whose seats could not be committed.
func (r *Registry) Unregister(ctx context.Context, id string) error {
	if err := r.DB.DeleteBooking(ctx, id); err != nil {
		r.Logger.Error("BOOKING", fmt.Sprintf("Failed to remove booking %s: %v", id, err))
		return fmt.Errorf("failed to remove booking %s: %w", id, err)
	}
	r.Logger.LogBooking("UNREGISTERED", id, "seats were not committed")
	return nil
}
