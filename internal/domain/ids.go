package domain

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out workout identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues increasing decimal identifiers.
type SequenceGenerator struct {
	last atomic.Int64
}

// NewSequenceGenerator returns a generator whose first id is after+1.
func NewSequenceGenerator(after int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.last.Store(after)
	return g
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() string {
	return strconv.FormatInt(g.last.Add(1), 10)
}

// MaxSequenceID returns the largest decimal id among records, ignoring non-numeric ids.
// Use it to start a SequenceGenerator after seeded records.
func MaxSequenceID(records []Workout) int64 {
	var maxID int64
	for _, record := range records {
		if n, err := strconv.ParseInt(record.ID, 10, 64); err == nil && n > maxID {
			maxID = n
		}
	}
	return maxID
}
