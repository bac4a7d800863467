package domain

// Activity represents an extracurricular activity students can join
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull reports whether the activity has reached its capacity
func (a *Activity) IsFull() bool {
	return a.SpotsLeft() <= 0
}

// HasParticipant reports whether email is already registered (exact match)
func (a *Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

func (a *Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// RemoveParticipant removes email, preserving the order of the remaining
// participants. It returns false if email was not registered.
func (a *Activity) RemoveParticipant(email string) bool {
	i := a.indexOf(email)
	if i < 0 {
		return false
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return true
}

// Clone returns a deep copy so callers can't mutate the participant list
func (a *Activity) Clone() *Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return &Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// Activities is the listing keyed by activity name
type Activities map[string]*Activity

// Clone deep-copies every activity in the listing
func (as Activities) Clone() Activities {
	out := make(Activities, len(as))
	for name, a := range as {
		out[name] = a.Clone()
	}
	return out
}

// SignupRequest is the validated input of a signup or unregister call
type SignupRequest struct {
	Activity string
	Email    string
}

// MessageResponse is the body returned on successful signup/unregister
type MessageResponse struct {
	Message string `json:"message"`
}
