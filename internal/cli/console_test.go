package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gic-cinema/internal/booking"
	bookingdb "gic-cinema/internal/booking/db"
	"gic-cinema/internal/config"
	"gic-cinema/internal/database"
	"gic-cinema/internal/logger"
	"gic-cinema/internal/ticket"
)

func init() {
	color.NoColor = true
}

func newRegistry(t *testing.T) *booking.Registry {
	bunDB, err := database.Open(context.Background(), config.DatabaseConfig{DSN: database.MemoryDSN(uuid.NewString()), MaxOpenConns: 4}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { bunDB.Close() })

	registry := booking.NewRegistry(&bookingdb.DB{Bun: bunDB}, logger.Discard(), booking.DefaultMaxAttempts)
	registry.NewID = func() string { return "GIC1234" }
	return registry
}

func runConsole(t *testing.T, input string, configure ...func(*Console)) string {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader(input), &out, newRegistry(t), logger.Discard())
	for _, fn := range configure {
		fn(console)
	}
	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestConsole_BookAndCheck(t *testing.T) {
	out := runConsole(t, "Inception 3 5\n1\n3\n\n2\nGIC1234\n3\n")

	assert.Contains(t, out, "[1] Book tickets for Inception (15 seats available)")
	assert.Contains(t, out, "Selected seats: A3 A2 A4")
	assert.Contains(t, out, "Booking id: GIC1234\nA3 A2 A4\n")
	assert.Contains(t, out, "3 seat(s) booked. 12 seats remaining.")
	assert.Contains(t, out, "[1] Book tickets for Inception (12 seats available)")
	assert.Contains(t, out, "Existing bookings: GIC1234")
	assert.Contains(t, out, "3 seats have been booked.")
	assert.Contains(t, out, "A  .  o  o  o  .")
	assert.True(t, strings.HasSuffix(out, msgGoodbye+"\n"))
}

func TestConsole_StartingSeat(t *testing.T) {
	out := runConsole(t, "M 3 5\n1\n2\nx\nZ9\nC5\nc3\n\n3\n")

	assert.Contains(t, out, "Selected seats: A3 A2")
	assert.Contains(t, out, msgMalformedSeat)
	assert.Contains(t, out, msgInvalidSeat)
	assert.Contains(t, out, "Not enough seats from C5 onwards. Please try again.")
	assert.Contains(t, out, "Selected seats: C3 C4")
	assert.Contains(t, out, "Booking id: GIC1234\nC3 C4\n")
	assert.Contains(t, out, "2 seat(s) booked. 13 seats remaining.")
}

func TestConsole_InvalidInputReprompts(t *testing.T) {
	out := runConsole(t, "Movie 5\nMovie -1 0\nMovie 2 2\n4\n1\nabc\n9\n\n3\n")

	assert.Equal(t, 3, strings.Count(out, promptMovie))
	assert.Equal(t, 2, strings.Count(out, "Invalid value for format:"))
	assert.Contains(t, out, msgInvalidSelection)
	assert.Equal(t, 2, strings.Count(out, msgInvalidCount))
	assert.NotContains(t, out, "Booking id:")
	assert.Contains(t, out, msgGoodbye)
}

func TestConsole_UnknownBooking(t *testing.T) {
	out := runConsole(t, "M 2 2\n2\nGIC9999\n2\n\n3\n")

	assert.Equal(t, 2, strings.Count(out, "No bookings yet."))
	assert.Equal(t, 1, strings.Count(out, msgInvalidBookingID))
	assert.Contains(t, out, msgGoodbye)
}

func TestConsole_FullyBooked(t *testing.T) {
	out := runConsole(t, "M 1 1\n1\n1\n\n1\n3\n")

	assert.Contains(t, out, "1 seat(s) booked. 0 seats remaining.")
	assert.Contains(t, out, "(0 seats available)")
	assert.Contains(t, out, "Sorry, there are no seats left for this screening.")
}

func TestConsole_EndOfInput(t *testing.T) {
	// Test case: EOF at the movie prompt
	out := runConsole(t, "")
	assert.Contains(t, out, promptMovie)
	assert.NotContains(t, out, msgGoodbye)

	// Test case: EOF mid-booking leaves the seats free
	out = runConsole(t, "M 2 2\n1\n2\n")
	assert.Contains(t, out, "Selected seats:")
	assert.NotContains(t, out, "Booking id:")
}

func TestConsole_PrintsTicket(t *testing.T) {
	withTickets := func(c *Console) { c.Tickets = ticket.NewQRGenerator("test-secret") }

	out := runConsole(t, "M 2 2\n1\n1\n\n3\n", withTickets)
	assert.Contains(t, out, "Booking id: GIC1234")
	assert.Contains(t, out, "█")
}

func TestConsole_FailedBookingKeepsSeatsFree(t *testing.T) {
	// Every draw returns the ID already used by the first booking
	out := runConsole(t, "M 2 2\n1\n1\n\n1\n1\n\n3\n", func(c *Console) { c.registry.MaxAttempts = 3 })

	assert.Equal(t, 1, strings.Count(out, "Booking id: GIC1234"))
	assert.Contains(t, out, "Booking failed. Please try again.")
	assert.Equal(t, 2, strings.Count(out, "(3 seats available)"))
	assert.NotContains(t, out, "(2 seats available)")
}
