package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gic-cinema/internal/seatmap"
)

func TestValidateInput(t *testing.T) {
	spec, err := ValidateInput("Movie 5 10")
	require.NoError(t, err)
	assert.Equal(t, MovieSpec{Title: "Movie", Rows: 5, Columns: 10}, spec)

	spec, err = ValidateInput("  Inception   26 50 ")
	require.NoError(t, err)
	assert.Equal(t, MovieSpec{Title: "Inception", Rows: 26, Columns: 50}, spec)
}

func TestValidateInput_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing seats per row", "Movie 5", ErrInvalidMovieSpec},
		{"empty", "", ErrInvalidMovieSpec},
		{"too many values", "The Movie 5 10", ErrInvalidMovieSpec},
		{"non-integer rows", "Movie five 10", ErrInvalidMovieSpec},
		{"non-integer seats", "Movie 5 10.5", ErrInvalidMovieSpec},
		{"negative and zero", "Movie -1 0", seatmap.ErrInvalidDimensions},
		{"zero rows", "Movie 0 10", seatmap.ErrInvalidDimensions},
		{"too many rows", "Movie 27 10", seatmap.ErrInvalidDimensions},
		{"too many seats", "Movie 5 51", seatmap.ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateInput(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSeatCount(t *testing.T) {
	n, err := ParseSeatCount("4", 10)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = ParseSeatCount(" 10 ", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	for _, input := range []string{"", "0", "11", "-1", "+3", "two", "3.0"} {
		_, err := ParseSeatCount(input, 10)
		assert.ErrorIs(t, err, seatmap.ErrInvalidSeatCount, "input %q", input)
	}
}
