package utils

import (
	"github.com/google/uuid"
)

// NewID returns a random id for wizard sessions and feed hearts.
func NewID() string {
	return uuid.NewString()
}
