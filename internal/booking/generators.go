package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	IDPrefix = "GIC"
	idMin    = 1000
	idMax    = 9999
)

// IDGenerator produces candidate booking IDs. Candidates are not unique on
// their own; Registry retries until it finds a free one.
type IDGenerator func() string

// GenerateBookingID returns "GIC" followed by a random number in 1000-9999.
func GenerateBookingID() string {
	randomNum, err := rand.Int(rand.Reader, big.NewInt(idMax-idMin+1))
	if err != nil {
		return fmt.Sprintf("%s%04d", IDPrefix, idMin)
	}
	return fmt.Sprintf("%s%04d", IDPrefix, idMin+randomNum.Int64())
}
