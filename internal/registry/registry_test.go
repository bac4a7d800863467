package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"school-activities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	r, err := New(DefaultSeed())
	require.NoError(t, err)
	return r
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	assert.Len(t, seed, 9)
	require.NoError(t, Validate(seed))

	for name, a := range seed {
		assert.LessOrEqual(t, len(a.Participants), a.MaxParticipants, name)
	}

	chess := seed["Chess Club"]
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestRegistry_Signup(t *testing.T) {
	tests := []struct {
		name      string
		activity  string
		email     string
		wantErr   error
		wantCount int
	}{
		{
			name:      "new student",
			activity:  "Chess Club",
			email:     "new@x.edu",
			wantCount: 3,
		},
		{
			name:      "already signed up",
			activity:  "Chess Club",
			email:     "michael@mergington.edu",
			wantErr:   ErrAlreadySignedUp,
			wantCount: 2,
		},
		{
			name:      "email match is case sensitive",
			activity:  "Chess Club",
			email:     "Michael@mergington.edu",
			wantCount: 3,
		},
		{
			name:      "unknown activity",
			activity:  "Nonexistent Activity",
			email:     "test@mergington.edu",
			wantErr:   ErrActivityNotFound,
			wantCount: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t)
			before := r.List()

			msg, err := r.Signup(tt.activity, tt.email)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, msg)
				assert.Equal(t, before, r.List())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("Signed up %s for %s", tt.email, tt.activity), msg)

			a, err := r.Get(tt.activity)
			require.NoError(t, err)
			assert.Len(t, a.Participants, tt.wantCount)
			assert.Equal(t, tt.email, a.Participants[len(a.Participants)-1])
		})
	}
}

func TestRegistry_SignupUntilFull(t *testing.T) {
	r := newTestRegistry(t)

	// Math Olympiad: capacity 10, one seeded participant
	for i := 0; i < 8; i++ {
		_, err := r.Signup("Math Olympiad", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}

	a, _ := r.Get("Math Olympiad")
	require.Len(t, a.Participants, 9)

	_, err := r.Signup("Math Olympiad", "tenth@mergington.edu")
	require.NoError(t, err)

	_, err = r.Signup("Math Olympiad", "overflow@mergington.edu")
	assert.True(t, errors.Is(err, ErrActivityFull))

	a, _ = r.Get("Math Olympiad")
	assert.Len(t, a.Participants, 10)
	assert.NotContains(t, a.Participants, "overflow@mergington.edu")
}

func TestRegistry_DuplicateOnFullActivityReportsDuplicate(t *testing.T) {
	r, err := New(domain.Activities{
		"Tiny": {MaxParticipants: 1, Participants: []string{"only@x.edu"}},
	})
	require.NoError(t, err)

	_, err = r.Signup("Tiny", "only@x.edu")
	assert.True(t, errors.Is(err, ErrAlreadySignedUp))

	_, err = r.Signup("Tiny", "other@x.edu")
	assert.True(t, errors.Is(err, ErrActivityFull))
}

func TestRegistry_Unregister(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{"registered student", "Chess Club", "daniel@mergington.edu", nil},
		{"not registered", "Chess Club", "notregistered@mergington.edu", ErrNotSignedUp},
		{"unknown activity", "Nonexistent Activity", "test@mergington.edu", ErrActivityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t)
			before := r.List()

			msg, err := r.Unregister(tt.activity, tt.email)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, before, r.List())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("Unregistered %s from %s", tt.email, tt.activity), msg)

			a, _ := r.Get(tt.activity)
			assert.Len(t, a.Participants, len(before[tt.activity].Participants)-1)
			assert.NotContains(t, a.Participants, tt.email)
		})
	}
}

func TestRegistry_SignupUnregisterRoundTrip(t *testing.T) {
	r := newTestRegistry(t)

	for name := range DefaultSeed() {
		before, _ := r.Get(name)

		_, err := r.Signup(name, "roundtrip@mergington.edu")
		require.NoError(t, err)
		_, err = r.Unregister(name, "roundtrip@mergington.edu")
		require.NoError(t, err)

		after, _ := r.Get(name)
		assert.Equal(t, before.Participants, after.Participants, name)
	}
}

func TestRegistry_UnregisterPreservesOrder(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Signup("Chess Club", "third@mergington.edu")
	require.NoError(t, err)
	_, err = r.Unregister("Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	a, _ := r.Get("Chess Club")
	assert.Equal(t, []string{"daniel@mergington.edu", "third@mergington.edu"}, a.Participants)
}

func TestRegistry_ListReturnsSnapshot(t *testing.T) {
	r := newTestRegistry(t)

	list := r.List()
	list["Chess Club"].Participants = append(list["Chess Club"].Participants, "intruder@x.edu")
	delete(list, "Drama Club")

	fresh := r.List()
	assert.Len(t, fresh, 9)
	assert.Len(t, fresh["Chess Club"].Participants, 2)
}

func TestRegistry_ConcurrentSignups(t *testing.T) {
	r := newTestRegistry(t)

	// Math Olympiad has 9 free spots; 50 racing students must never overfill it.
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := r.Signup("Math Olympiad", fmt.Sprintf("racer%d@mergington.edu", i)); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	a, _ := r.Get("Math Olympiad")
	assert.Equal(t, 9, accepted)
	assert.Len(t, a.Participants, 10)
}

func TestRegistry_Reset(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Signup("Chess Club", "new@x.edu")
	require.NoError(t, err)

	require.NoError(t, r.Reset(DefaultSeed()))
	assert.Equal(t, DefaultSeed(), r.List())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    domain.Activities
		wantErr bool
	}{
		{"valid", domain.Activities{"A": {MaxParticipants: 1}}, false},
		{"zero capacity", domain.Activities{"A": {MaxParticipants: 0}}, true},
		{"over capacity", domain.Activities{"A": {MaxParticipants: 1, Participants: []string{"a", "b"}}}, true},
		{"duplicate participant", domain.Activities{"A": {MaxParticipants: 3, Participants: []string{"a", "a"}}}, true},
		{"nil activity", domain.Activities{"A": nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"Robotics": {"description": "Build robots", "schedule": "Mondays", "max_participants": 4, "participants": ["a@x.edu"]}
	}`), 0o600))

	overfull := filepath.Join(dir, "overfull.json")
	require.NoError(t, os.WriteFile(overfull, []byte(`{
		"Robotics": {"max_participants": 1, "participants": ["a@x.edu", "b@x.edu"]}
	}`), 0o600))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0o600))

	t.Run("empty path uses default", func(t *testing.T) {
		seed, err := LoadSeed("")
		require.NoError(t, err)
		assert.Equal(t, DefaultSeed(), seed)
	})

	t.Run("valid file", func(t *testing.T) {
		seed, err := LoadSeed(valid)
		require.NoError(t, err)
		require.Contains(t, seed, "Robotics")
		assert.Equal(t, 4, seed["Robotics"].MaxParticipants)
	})

	for _, path := range []string{overfull, broken, empty, filepath.Join(dir, "missing.json")} {
		t.Run("rejects "+filepath.Base(path), func(t *testing.T) {
			_, err := LoadSeed(path)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_VersionTracksMutations(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, uint64(0), r.Version())

	_, err := r.Signup("Chess Club", "michael@mergington.edu")
	require.Error(t, err)
	assert.Equal(t, uint64(0), r.Version(), "rejected operations leave the version alone")

	_, err = r.Signup("Chess Club", "new@x.edu")
	require.NoError(t, err)
	_, err = r.Unregister("Chess Club", "new@x.edu")
	require.NoError(t, err)

	snap, version := r.Snapshot()
	assert.Equal(t, uint64(2), version)
	assert.Len(t, snap["Chess Club"].Participants, 2)
}
