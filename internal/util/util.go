package util

import (
	"crypto/sha256"
	"fmt"
	"math"
)

// RoundCents rounds a dollar amount to whole cents.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatUSD formats a dollar amount with two decimals, e.g. "$1,896.00".
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digits[i])
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped, frac)
}

// Checksum returns the hex SHA256 digest of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
