package scoring

import "github.com/google/uuid"

// NewID returns a collision-resistant opaque identifier for players and
// ledger entries.
func NewID() string {
	return uuid.New().String()
}
