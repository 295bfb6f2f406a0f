package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gic-cinema/internal/seatmap"
)

func init() {
	color.NoColor = true
}

func TestScreenBanner(t *testing.T) {
	tests := []struct {
		columns int
		want    string
	}{
		{5, "-----SCREEN-----"},
		{1, "--SCREEN--"},
		{2, "--SCREEN--"},
		{9, strings.Repeat("-", 7) + "--SCREEN--" + strings.Repeat("-", 7)},
		{10, strings.Repeat("-", 10) + "----SCREEN----" + strings.Repeat("-", 10)},
		{20, strings.Repeat("-", 29) + "SCREEN" + strings.Repeat("-", 29)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScreenBanner(tt.columns), "columns=%d", tt.columns)
	}
}

func TestSeatMap(t *testing.T) {
	m, err := seatmap.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.MarkTaken(seatmap.Seat{Row: 0, Col: 1}))
	require.NoError(t, m.MarkTaken(seatmap.Seat{Row: 1, Col: 2}))

	var buf bytes.Buffer
	require.NoError(t, SeatMap(&buf, m, []seatmap.Seat{{Row: 1, Col: 2}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "---SCREEN---", lines[0])
	assert.Equal(t, "A  .  #  .", lines[1])
	assert.Equal(t, "B  .  .  o", lines[2])
	assert.Equal(t, "   1  2  3", lines[3])
}

func TestSeatMap_WideGridAlignsFooter(t *testing.T) {
	m, err := seatmap.New(1, 12)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, SeatMap(&buf, m, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, len(lines[1]), len(lines[2]))
	assert.True(t, strings.HasSuffix(lines[2], " 12"))
	assert.NotContains(t, lines[1], TakenSymbol)
}

func TestLegend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Legend(&buf))

	assert.Contains(t, buf.String(), "Other seat bookings label: #")
	assert.Contains(t, buf.String(), "Your seat bookings label: o")
}
