package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Booking is one confirmed allocation. Its seats are stored as BookingSeat
// rows and never change after creation.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	BookingID  string    `bun:"booking_id,pk"`
	SessionID  string    `bun:"session_id,notnull"`
	MovieTitle string    `bun:"movie_title,notnull"`
	SeatCount  int       `bun:"seat_count,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`

	Seats []BookingSeat `bun:"rel:has-many,join:booking_id=booking_id"`
}

// BookingSeat is a seat owned by a booking. Position keeps the order in
// which the allocation engine chose the seats.
type BookingSeat struct {
	bun.BaseModel `bun:"table:booking_seats"`

	ID        int64  `bun:"id,pk,autoincrement"`
	BookingID string `bun:"booking_id,notnull"`
	Position  int    `bun:"position,notnull"`
	SeatLabel string `bun:"seat_label,notnull"`
}

// SeatLabels returns the booking's seat labels in position order. Seats must
// already be sorted by Position.
func (b *Booking) SeatLabels() []string {
	labels := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		labels = append(labels, seat.SeatLabel)
	}
	return labels
}
