package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gic-cinema/internal/seatmap"
)

const (
	FreeSymbol        = "."
	TakenSymbol       = "#"
	HighlightedSymbol = "o"

	cellWidth = 3
)

var (
	takenColor     = color.New(color.FgRed)
	highlightColor = color.New(color.FgGreen, color.Bold)
	bannerColor    = color.New(color.FgCyan)
)

// ScreenBanner returns the screen line drawn above a grid of the given
// number of columns.
func ScreenBanner(columns int) string {
	if columns < 10 {
		dashes := columns - 2
		if dashes < 0 {
			dashes = 0
		}
		side := strings.Repeat("-", dashes)
		return side + "--SCREEN--" + side
	}

	side := strings.Repeat("-", (columns*3-9)/2)
	return side + "----SCREEN----" + side
}

// SeatMap writes the banner, one line per row starting at row A, and a
// footer of column numbers. Seats in highlight are drawn with
// HighlightedSymbol instead of TakenSymbol.
func SeatMap(w io.Writer, m *seatmap.SeatMap, highlight []seatmap.Seat) error {
	marked := make(map[seatmap.Seat]bool, len(highlight))
	for _, seat := range highlight {
		marked[seat] = true
	}

	var b strings.Builder
	b.WriteString(bannerColor.Sprint(ScreenBanner(m.Columns())))
	b.WriteByte('\n')

	for r := 0; r < m.Rows(); r++ {
		b.WriteString(seatmap.RowLabel(r))
		for c := 0; c < m.Columns(); c++ {
			seat := seatmap.Seat{Row: r, Col: c}
			b.WriteString(strings.Repeat(" ", cellWidth-1))
			b.WriteString(cell(m, seat, marked[seat]))
		}
		b.WriteByte('\n')
	}

	b.WriteByte(' ')
	for c := 1; c <= m.Columns(); c++ {
		fmt.Fprintf(&b, "%*d", cellWidth, c)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func cell(m *seatmap.SeatMap, seat seatmap.Seat, highlighted bool) string {
	switch {
	case highlighted:
		return highlightColor.Sprint(HighlightedSymbol)
	case m.StateAt(seat) == seatmap.Taken:
		return takenColor.Sprint(TakenSymbol)
	default:
		return FreeSymbol
	}
}

// Legend explains the grid symbols used when a booking is highlighted.
func Legend(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Free seats label: %s\nOther seat bookings label: %s\nYour seat bookings label: %s\n",
		FreeSymbol, TakenSymbol, HighlightedSymbol)
	return err
}
