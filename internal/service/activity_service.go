package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"school-activities/internal/domain"
	"school-activities/internal/registry"
	"school-activities/pkg/logger"
	"school-activities/pkg/metrics"
)

// activityService fronts the registry with logging, metrics and the
// optional listing cache
type activityService struct {
	registry *registry.Registry
	cache    *CacheService // nil when Redis is not configured
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewActivityService creates a new activity service. cache and m may be nil.
func NewActivityService(reg *registry.Registry, cache *CacheService, m *metrics.Metrics, logger *logger.Logger) ActivityService {
	s := &activityService{
		registry: reg,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}

	for name, a := range reg.List() {
		s.observeParticipants(name, len(a.Participants))
	}

	return s
}

// ListActivities returns every activity with its current participants
func (s *activityService) ListActivities(ctx context.Context) domain.Activities {
	return s.registry.List()
}

// ListActivitiesJSON returns the serialized listing
func (s *activityService) ListActivitiesJSON(ctx context.Context) ([]byte, error) {
	if s.cache != nil {
		return s.cache.GetActivitiesJSON(ctx, s.registry.Version(), s.registry.Snapshot)
	}

	data, err := json.Marshal(s.registry.List())
	if err != nil {
		return nil, fmt.Errorf("failed to encode activities: %w", err)
	}
	return data, nil
}

// Signup adds a student to an activity
func (s *activityService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.MessageResponse, error) {
	log := s.logger.WithActivity(req.Activity, req.Email)

	message, err := s.registry.Signup(req.Activity, req.Email)
	if err != nil {
		s.countSignup(resultFor(err))
		log.WithError(err).Warn("Signup rejected")
		return nil, err
	}

	s.countSignup(metrics.ResultSuccess)
	s.refreshParticipants(req.Activity)
	log.Info("Student signed up")

	return &domain.MessageResponse{Message: message}, nil
}

// Unregister removes a student from an activity
func (s *activityService) Unregister(ctx context.Context, req domain.SignupRequest) (*domain.MessageResponse, error) {
	log := s.logger.WithActivity(req.Activity, req.Email)

	message, err := s.registry.Unregister(req.Activity, req.Email)
	if err != nil {
		s.countUnregistration(resultFor(err))
		log.WithError(err).Warn("Unregister rejected")
		return nil, err
	}

	s.countUnregistration(metrics.ResultSuccess)
	s.refreshParticipants(req.Activity)
	log.Info("Student unregistered")

	return &domain.MessageResponse{Message: message}, nil
}

func (s *activityService) countSignup(result string) {
	if s.metrics != nil {
		s.metrics.Signups.WithLabelValues(result).Inc()
	}
}

func (s *activityService) countUnregistration(result string) {
	if s.metrics != nil {
		s.metrics.Unregistrations.WithLabelValues(result).Inc()
	}
}

func (s *activityService) refreshParticipants(name string) {
	a, err := s.registry.Get(name)
	if err != nil {
		return
	}
	s.observeParticipants(name, len(a.Participants))
}

func (s *activityService) observeParticipants(name string, n int) {
	if s.metrics != nil {
		s.metrics.Participants.WithLabelValues(name).Set(float64(n))
	}
}

// resultFor maps a registry error to its metrics label
func resultFor(err error) string {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, registry.ErrAlreadySignedUp):
		return metrics.ResultAlreadyJoined
	case errors.Is(err, registry.ErrActivityFull):
		return metrics.ResultFull
	case errors.Is(err, registry.ErrNotSignedUp):
		return metrics.ResultNotJoined
	default:
		return metrics.ResultError
	}
}
