package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"school-activities/internal/domain"
)

// DefaultSeed returns the Mergington High School activities
func DefaultSeed() domain.Activities {
	return domain.Activities{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Join the school basketball team and compete in local leagues",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Practice swimming techniques and participate in meets",
			Schedule:        "Mondays, 5:00 PM - 6:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"mia@mergington.edu"},
		},
		"Art Workshop": {
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Math Olympiad": {
			Description:     "Prepare for math competitions and solve challenging problems",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"elijah@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"charlotte@mergington.edu"},
		},
	}
}

// LoadSeed reads a dataset shaped like the GET /activities response.
// An empty path yields DefaultSeed.
func LoadSeed(path string) (domain.Activities, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var activities domain.Activities
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}
	if err := Validate(activities); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	return activities, nil
}
