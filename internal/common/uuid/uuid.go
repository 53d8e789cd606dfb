// Package uuid issues time-ordered identifiers (UUIDv7) for account records.
// It wraps github.com/google/uuid so the rest of the module never has to pick
// a UUID version.
package uuid

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

// UUID is github.com/google/uuid.UUID.
type UUID = uuid.UUID

// Nil is the zero UUID.
var Nil = uuid.Nil

// New returns a new UUIDv7 and panics if the random source fails.
func New() UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}

// NewRandom returns a new UUIDv7.
func NewRandom() (UUID, error) {
	return uuid.NewV7()
}

// Parse decodes s in any of the forms accepted by google/uuid.
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// IsUUIDv7 reports whether id is a version 7 UUID.
func IsUUIDv7(id UUID) bool {
	return id.Version() == uuid.Version(7)
}

// Timestamp returns the creation time encoded in the top 48 bits of a UUIDv7.
// The result is meaningless for other versions.
func Timestamp(id UUID) time.Time {
	millis := binary.BigEndian.Uint64(id[0:8]) >> 16
	return time.UnixMilli(int64(millis))
}
