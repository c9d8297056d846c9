// Package speech holds small text helpers for sentences that will be read
// aloud by the voice platform.
package speech

import (
	"fmt"
	"strings"
)

// Dollars formats an amount to two decimals, e.g. 100 -> "$100.00".
func Dollars(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// SpellDigits separates every digit with a single space so the synthesizer
// reads a number digit by digit, e.g. "123456789" -> "1 2 3 4 5 6 7 8 9".
func SpellDigits(number string) string {
	digits := make([]string, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, string(r))
		}
	}
	return strings.Join(digits, " ")
}

// MaskAccount keeps only the last four characters of an account number,
// e.g. "0012345678" -> "ending in 5678".
func MaskAccount(number string) string {
	if len(number) <= 4 {
		return "ending in " + number
	}
	return "ending in " + number[len(number)-4:]
}

// JoinSentences concatenates phrases into one utterance, normalizing spacing.
func JoinSentences(phrases ...string) string {
	parts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
