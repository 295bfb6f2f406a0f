package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"gic-cinema/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateBooking stores the booking and its seats in one transaction.
func (d *DB) CreateBooking(ctx context.Context, booking models.Booking) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&booking).Exec(ctx); err != nil {
			return fmt.Errorf("insert booking %s: %w", booking.BookingID, err)
		}

		if len(booking.Seats) == 0 {
			return nil
		}
		seats := make([]models.BookingSeat, len(booking.Seats))
		for i, seat := range booking.Seats {
			seat.BookingID = booking.BookingID
			seat.Position = i
			seats[i] = seat
		}
		if _, err := tx.NewInsert().Model(&seats).Exec(ctx); err != nil {
			return fmt.Errorf("insert seats for booking %s: %w", booking.BookingID, err)
		}
		return nil
	})
}

// GetBookingByID returns the booking with its seats in selection order. A
// missing booking yields an error wrapping sql.ErrNoRows.
func (d *DB) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	booking := models.Booking{BookingID: id}
	err := d.Bun.NewSelect().
		Model(&booking).
		WherePK().
		Relation("Seats", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("position ASC")
		}).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingExists checks if a booking with the given ID exists in the database
func (d *DB) BookingExists(ctx context.Context, id string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Booking)(nil)).
		Where("booking_id = ?", id).
		Exists(ctx)
}

// ListBookingIDs returns every booking ID in creation order.
func (d *DB) ListBookingIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := d.Bun.NewSelect().
		Model((*models.Booking)(nil)).
		Column("booking_id").
		Order("created_at ASC", "booking_id ASC").
		Scan(ctx, &ids)
	return ids, err
}

// DeleteBooking removes a booking and its seats. Deleting an unknown ID is
// not an error.
func (d *DB) DeleteBooking(ctx context.Context, id string) error {
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.BookingSeat)(nil)).
			Where("booking_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete seats for booking %s: %w", id, err)
		}
		if _, err := tx.NewDelete().
			Model((*models.Booking)(nil)).
			Where("booking_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete booking %s: %w", id, err)
		}
		return nil
	})
}
