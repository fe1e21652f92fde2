package utils

import (
	"github.com/google/uuid"
)

// GenerateToken returns a random token for confirmation and
// unsubscribe links.
func GenerateToken() string {
	return uuid.NewString()
}
