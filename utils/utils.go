package utils

import (
	rndm "math/rand"
	"strings"
)

// --- Random String and ID Generators ---

var base36Runes = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateReference creates a booking reference such as "#CHF4K2Z9Q".
// It is random and carries no information about the booking.
func GenerateReference() string {
	return "#CHF" + randomFrom(base36Runes, 6)
}

func randomFrom(set []rune, n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = set[rndm.Intn(len(set))]
	}
	return string(b)
}

// --- String Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

// AnyContainsIgnoreCase reports whether any of values contains substr.
func AnyContainsIgnoreCase(values []string, substr string) bool {
	for _, v := range values {
		if ContainsIgnoreCase(v, substr) {
			return true
		}
	}
	return false
}
