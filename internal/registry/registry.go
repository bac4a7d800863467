package registry

import (
	"fmt"
	"sync"

	"school-activities/internal/domain"
	apperrors "school-activities/pkg/errors"
)

// Errors returned by the registry. Compare with errors.Is.
var (
	ErrActivityNotFound = apperrors.NewNotFoundError("Activity not found")
	ErrAlreadySignedUp  = apperrors.NewConflictError("Student is already signed up")
	ErrActivityFull     = apperrors.NewConflictError("Activity is full")
	ErrNotSignedUp      = apperrors.NewConflictError("Student is not signed up for this activity")
)

// Registry holds every activity keyed by name. The set of activity names is
// fixed at construction; only participant lists change.
type Registry struct {
	mu         sync.RWMutex
	activities domain.Activities
	version    uint64 // bumped on every successful mutation
}

// New creates a registry seeded with a copy of seed
func New(seed domain.Activities) (*Registry, error) {
	if err := Validate(seed); err != nil {
		return nil, err
	}
	return &Registry{activities: seed.Clone()}, nil
}

// List returns a snapshot of all activities with their current participants
func (r *Registry) List() domain.Activities {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activities.Clone()
}

// Snapshot returns a copy of all activities together with the version it
// was taken at
func (r *Registry) Snapshot() (domain.Activities, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activities.Clone(), r.version
}

// Version returns the current mutation counter
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Get returns a snapshot of a single activity
func (r *Registry) Get(name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the activity's participants.
// The duplicate check runs before the capacity check.
func (r *Registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return "", ErrAlreadySignedUp
	}
	if a.IsFull() {
		return "", ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	r.version++
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the activity's participants
func (r *Registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", ErrActivityNotFound
	}
	if !a.RemoveParticipant(email) {
		return "", ErrNotSignedUp
	}
	r.version++
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// Reset replaces all activities with a copy of seed
func (r *Registry) Reset(seed domain.Activities) error {
	if err := Validate(seed); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = seed.Clone()
	r.version++
	return nil
}

// Validate checks that a dataset satisfies the registry invariants
func Validate(activities domain.Activities) error {
	for name, a := range activities {
		if a == nil {
			return fmt.Errorf("activity %q: missing definition", name)
		}
		if a.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive, got %d", name, a.MaxParticipants)
		}
		if len(a.Participants) > a.MaxParticipants {
			return fmt.Errorf("activity %q: %d participants exceed capacity %d", name, len(a.Participants), a.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := seen[p]; dup {
				return fmt.Errorf("activity %q: duplicate participant %q", name, p)
			}
			seen[p] = struct{}{}
		}
	}
	return nil
}
