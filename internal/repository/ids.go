package repository

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers that are unique for the lifetime of a
// collection.
type IDGenerator interface {
	NextID() string
}

// Sequence issues decimal ids ("7", "8", …) from a monotonic counter. Unlike
// deriving the id from the collection length it never repeats a value.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first id is one greater than the
// largest numeric id in existing. Non-numeric ids are ignored.
func NewSequence(existing []string) *Sequence {
	var highest int64
	for _, id := range existing {
		n, err := strconv.ParseInt(id, 10, 64)
		if err == nil && n > highest {
			highest = n
		}
	}
	s := &Sequence{}
	s.last.Store(highest)
	return s
}

// NextID implements IDGenerator.
func (s *Sequence) NextID() string {
	return strconv.FormatInt(s.last.Add(1), 10)
}

// UUIDs issues random version 4 UUIDs.
type UUIDs struct{}

// NextID implements IDGenerator.
func (UUIDs) NextID() string {
	return uuid.New().String()
}
