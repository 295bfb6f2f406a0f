package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gic-cinema/internal/booking"
	"gic-cinema/internal/logger"
	"gic-cinema/internal/render"
	"gic-cinema/internal/seatmap"
	"gic-cinema/internal/session"
	"gic-cinema/internal/ticket"
)

const (
	promptMovie     = "Please define movie title and seating map in [Title] [Row] [SeatsPerRow] format:"
	promptSelection = "Please enter your selection:"
	promptSeatCount = "Enter the number of seats required"
	promptStartSeat = "Enter a seat to start with (e.g., C3, or press Enter to accept the current seating):"
	promptBookingID = "Please enter the booking id"

	msgInvalidSelection = "Invalid selection. Please try again."
	msgInvalidCount     = "Invalid number of seats. Please try again."
	msgInvalidSeat      = "Invalid seat choice. Please try again."
	msgMalformedSeat    = "Invalid seat choice format. Please use format like C3."
	msgInvalidBookingID = "Invalid booking ID. Please try again."
	msgGoodbye          = "Thank you for using GIC Cinemas system. Bye!"
)

// errEndOfInput stops the console when stdin is exhausted.
var errEndOfInput = errors.New("end of input")

// Console runs the interactive menu over a line-oriented reader and writer.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *booking.Registry
	logger   *logger.Logger

	// Tickets prints a QR code after each booking when set.
	Tickets *ticket.QRGenerator

	session *session.Session
}

func NewConsole(in io.Reader, out io.Writer, registry *booking.Registry, log *logger.Logger) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		registry: registry,
		logger:   log,
	}
}

// Run defines the screening and serves the main menu until the user exits
// or input ends. Both end the session without error.
func (c *Console) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, errEndOfInput) {
		if scanErr := c.in.Err(); scanErr != nil {
			return fmt.Errorf("failed to read input: %w", scanErr)
		}
		c.logger.Info("CLI", "Input closed, ending session")
		return nil
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	if err := c.defineMovie(); err != nil {
		return err
	}

	for {
		c.println("Welcome to GIC Cinemas")
		c.printf("[1] Book tickets for %s (%d seats available)\n", c.session.Title, c.session.Available())
		c.println("[2] Check bookings")
		c.println("[3] Exit")
		c.println(promptSelection)

		choice, err := c.readLine()
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.bookTickets(ctx)
		case "2":
			err = c.checkBookings(ctx)
		case "3":
			c.println(msgGoodbye)
			return nil
		default:
			c.println(msgInvalidSelection)
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) defineMovie() error {
	for {
		c.println(promptMovie)
		line, err := c.readLine()
		if err != nil {
			return err
		}

		spec, err := ValidateInput(line)
		if err != nil {
			c.printf("Invalid value for format: %v. Please try again.\n", err)
			continue
		}

		s, err := session.New(spec.Title, spec.Rows, spec.Columns, c.registry, c.logger)
		if err != nil {
			c.printf("Invalid value for format: %v. Please try again.\n", err)
			continue
		}
		c.session = s

		return render.SeatMap(c.out, s.Map, nil)
	}
}

func (c *Console) bookTickets(ctx context.Context) error {
	if c.session.Available() == 0 {
		c.println("Sorry, there are no seats left for this screening.")
		return nil
	}

	c.println("Booking tickets...")
	var n int
	for {
		c.println(promptSeatCount)
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}

		n, err = ParseSeatCount(line, c.session.Available())
		if err == nil {
			break
		}
		c.logger.Debug("CLI", err.Error())
		c.println(msgInvalidCount)
	}

	tx, err := c.session.StartBooking(n)
	if err != nil {
		c.println(msgInvalidCount)
		return nil
	}

	if err := c.chooseSeats(tx); err != nil {
		tx.Rollback()
		return err
	}

	id, seats, err := c.session.Confirm(ctx, tx)
	if err != nil {
		tx.Rollback()
		c.logger.Error("CLI", fmt.Sprintf("Booking failed: %v", err))
		c.println("Booking failed. Please try again.")
		return nil
	}

	c.printf("Booking id: %s\n", id)
	c.println(strings.Join(seatmap.Labels(seats), " "))
	c.printf("%d seat(s) booked. %d seats remaining.\n", len(seats), c.session.Available())
	c.printTicket(id, seats)
	return nil
}

// chooseSeats shows the provisional selection and lets the user move its
// starting seat until they accept it with a blank line.
func (c *Console) chooseSeats(tx *seatmap.Transaction) error {
	for {
		c.printf("Selected seats: %s\n", strings.Join(seatmap.Labels(tx.Seats()), " "))
		if err := render.SeatMap(c.out, tx.Preview(), tx.Seats()); err != nil {
			return err
		}

		for {
			c.println(promptStartSeat)
			line, err := c.readLine()
			if err != nil {
				return err
			}
			token := strings.TrimSpace(line)
			if token == "" {
				return nil
			}

			_, err = c.session.Reallocate(tx, token)
			if err == nil {
				break
			}
			switch {
			case errors.Is(err, seatmap.ErrMalformedSeat):
				c.println(msgMalformedSeat)
			case errors.Is(err, seatmap.ErrInsufficientSeats):
				c.printf("Not enough seats from %s onwards. Please try again.\n", strings.ToUpper(token))
			default:
				c.println(msgInvalidSeat)
			}
		}
	}
}

func (c *Console) checkBookings(ctx context.Context) error {
	c.println("Checking bookings...")
	ids, err := c.session.BookingIDs(ctx)
	if err != nil {
		c.logger.Error("CLI", fmt.Sprintf("Failed to list bookings: %v", err))
	} else if len(ids) == 0 {
		c.println("No bookings yet.")
	} else {
		c.printf("Existing bookings: %s\n", strings.Join(ids, " "))
	}

	c.println(promptBookingID)
	line, err := c.readLine()
	if err != nil {
		return err
	}
	id := strings.TrimSpace(line)
	if id == "" {
		return nil
	}

	seats, found, err := c.session.Lookup(ctx, id)
	if err != nil {
		c.logger.Error("CLI", fmt.Sprintf("Lookup of %s failed: %v", id, err))
		c.println(msgInvalidBookingID)
		return nil
	}
	if !found {
		c.println(msgInvalidBookingID)
		return nil
	}

	c.println(strings.Join(seatmap.Labels(seats), " "))
	if err := render.Legend(c.out); err != nil {
		return err
	}
	c.printf("%d seats have been booked.\n", len(seats))
	return render.SeatMap(c.out, c.session.Map, seats)
}

func (c *Console) printTicket(id string, seats []seatmap.Seat) {
	if c.Tickets == nil {
		return
	}
	art, err := c.Tickets.TerminalQR(ticket.Payload{
		BookingID:  id,
		MovieTitle: c.session.Title,
		Seats:      seatmap.Labels(seats),
	})
	if err != nil {
		c.logger.Warn("TICKET", fmt.Sprintf("Failed to render ticket for %s: %v", id, err))
		return
	}
	c.println(art)
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		return "", errEndOfInput
	}
	return c.in.Text(), nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
