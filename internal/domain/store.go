package domain

import (
	"fmt"
	"sync"
	"time"
)

// maxIDAttempts bounds how many ids Add draws before giving up on a colliding generator.
const maxIDAttempts = 8

// Clock returns the current time.
type Clock func() time.Time

// Store holds the workouts of a single dashboard session in insertion order.
type Store struct {
	mu      sync.RWMutex
	records []Workout
	ids     map[string]struct{}
	gen     IDGenerator
	now     Clock
	seed    []Workout
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) {
		s.gen = gen
	}
}

// WithClock overrides the clock used to date new workouts.
func WithClock(clock Clock) StoreOption {
	return func(s *Store) {
		s.now = clock
	}
}

// WithSeed populates the store with records before first use.
func WithSeed(records []Workout) StoreOption {
	return func(s *Store) {
		s.seed = records
	}
}

// NewStore constructs an empty Store, or a seeded one when WithSeed is given.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{
		ids: make(map[string]struct{}),
		gen: UUIDGenerator{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, record := range s.seed {
		if err := record.validate(); err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		if _, exists := s.ids[record.ID]; exists {
			return nil, fmt.Errorf("seed record %d: %w: %s", i, ErrDuplicateID, record.ID)
		}
		s.insert(record)
	}
	s.seed = nil
	return s, nil
}

// Add validates the input and appends a new workout dated today.
func (s *Store) Add(in NewWorkout) (Workout, error) {
	if err := in.Validate(); err != nil {
		return Workout{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID()
	if err != nil {
		return Workout{}, err
	}

	record := Workout{
		ID:       id,
		Date:     s.now().UTC().Format(DateLayout),
		Type:     in.Type,
		Duration: in.Duration,
		Calories: in.Calories,
		Steps:    in.Steps,
	}
	s.insert(record)
	return record.clone(), nil
}

// Remove deletes the workout with the given id and reports whether one was removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[id]; !exists {
		return false
	}
	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	delete(s.ids, id)
	return true
}

// List returns a copy of all workouts in insertion order.
func (s *Store) List() []Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Workout, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record.clone())
	}
	return out
}

// Len returns the number of stored workouts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) nextID() (string, error) {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = s.gen.NewID()
		if _, exists := s.ids[id]; !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
}

// insert stores a detached copy so callers never share the Steps pointer.
func (s *Store) insert(record Workout) {
	s.records = append(s.records, record.clone())
	s.ids[record.ID] = struct{}{}
}
