package service

import (
	"context"

	"school-activities/internal/domain"
)

// ActivityService defines the operations exposed over HTTP
type ActivityService interface {
	// ListActivities returns every activity with its current participants
	ListActivities(ctx context.Context) domain.Activities

	// ListActivitiesJSON returns the serialized listing, served from cache when available
	ListActivitiesJSON(ctx context.Context) ([]byte, error)

	// Signup adds a student to an activity
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.MessageResponse, error)

	// Unregister removes a student from an activity
	Unregister(ctx context.Context, req domain.SignupRequest) (*domain.MessageResponse, error)
}

// Services aggregates all service interfaces
type Services struct {
	Activity ActivityService
}
