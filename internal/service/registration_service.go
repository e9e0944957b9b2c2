package service

import (
	"context"
	"os"
	"strings"

	"github.com/rjharshittiwari/A2P-website/internal/entity"
	"github.com/rjharshittiwari/A2P-website/internal/repository"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type RegistrationService struct {
	repo repository.RegistrationRepository
}

// NewRegistrationService creates a new instance of RegistrationService.
func NewRegistrationService(repo repository.RegistrationRepository) *RegistrationService {
	return &RegistrationService{repo: repo}
}

// RegistrationInput is a raw form submission, before validation.
type RegistrationInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Course   string `json:"course"`
	Message  string `json:"message"`
}

// SubmitRegistration validates the submission and persists it. It returns a
// *ValidationError on bad input and a *StorageError on database failure.
func (s *RegistrationService) SubmitRegistration(ctx context.Context, in RegistrationInput) (*entity.Registration, error) {
	errs := requireFields(map[string]string{
		"full_name": in.FullName,
		"email":     in.Email,
		"course":    in.Course,
	}, []string{"full_name", "email", "course"})
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	email := strings.TrimSpace(in.Email)
	if !validEmail(email) {
		return nil, &ValidationError{
			Message: "Invalid email format",
			Fields:  map[string]string{"email": "Invalid email format"},
		}
	}

	reg := entity.Registration{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Course:   strings.TrimSpace(in.Course),
		Message:  strings.TrimSpace(in.Message),
	}

	created, err := s.repo.CreateRegistration(ctx, &reg)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating registration")
		return nil, &StorageError{Err: err}
	}

	return created, nil
}

// ListRegistrations returns every registration, newest first.
func (s *RegistrationService) ListRegistrations(ctx context.Context) ([]entity.Registration, error) {
	registrations, err := s.repo.ListRegistrations(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing registrations")
		return nil, &StorageError{Err: err}
	}

	return registrations, nil
}
