package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewHandle returns a channel handle for a freshly opened connection.
// Handles are unique per connection and never reused.
func NewHandle() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	// Fallback to timestamp if the random source is unavailable.
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
