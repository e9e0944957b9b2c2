package service

import (
	"context"

	"github.com/rjharshittiwari/A2P-website/internal/repository"
)

type HealthService struct {
	repo repository.RegistrationRepository
}

// NewHealthService creates a new instance of HealthService.
func NewHealthService(repo repository.RegistrationRepository) *HealthService {
	return &HealthService{repo: repo}
}

// CheckStorage probes the database with a cheap count query.
func (s *HealthService) CheckStorage(ctx context.Context) error {
	if _, err := s.repo.CountRegistrations(ctx); err != nil {
		logger.Error().Err(err).Msg("Health check storage probe failed")
		return &StorageError{Err: err}
	}
	return nil
}
