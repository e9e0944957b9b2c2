package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rjharshittiwari/A2P-website/internal/entity"
	"github.com/rjharshittiwari/A2P-website/internal/repository"
)

type ContactService struct {
	repo repository.InquiryRepository
}

// NewContactService creates a new instance of ContactService.
func NewContactService(repo repository.InquiryRepository) *ContactService {
	return &ContactService{repo: repo}
}

// ContactInput is a raw contact form submission, before validation.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitInquiry validates the submission and persists it.
func (s *ContactService) SubmitInquiry(ctx context.Context, in ContactInput) (*entity.ContactInquiry, error) {
	errs := requireFields(map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"message": in.Message,
	}, []string{"name", "email", "message"})
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

	inquiry := entity.ContactInquiry{
		Name:    strings.TrimSpace(in.Name),
		Email:   email,
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}

	created, err := s.repo.CreateInquiry(ctx, &inquiry)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating contact inquiry")
		return nil, &StorageError{Err: err}
	}

	return created, nil
}

// GetInquiry returns one inquiry, or ErrNotFound for an unknown ID.
func (s *ContactService) GetInquiry(ctx context.Context, id int) (*entity.ContactInquiry, error) {
	inquiry, err := s.repo.GetInquiryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting inquiry %d", id)
		return nil, &StorageError{Err: err}
	}

	return inquiry, nil
}

// ListInquiries returns every contact inquiry, newest first.
func (s *ContactService) ListInquiries(ctx context.Context) ([]entity.ContactInquiry, error) {
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing inquiries")
		return nil, &StorageError{Err: err}
	}

	return inquiries, nil
}
