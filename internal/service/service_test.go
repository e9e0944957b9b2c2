package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rjharshittiwari/A2P-website/internal/repository"
	"github.com/rjharshittiwari/A2P-website/migrations"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.AutoMigrateAll(db))
	return db
}

func TestSubmitRegistrationValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(*repository.NewRegistrationRepository(db))
	ctx := context.Background()

	tests := []struct {
		name       string
		in         RegistrationInput
		wantFields []string
	}{
		{
			name:       "missing course",
			in:         RegistrationInput{FullName: "Student", Email: "s@example.com"},
			wantFields: []string{"course"},
		},
		{
			name:       "blank full name",
			in:         RegistrationInput{FullName: "   ", Email: "s@example.com", Course: "Go"},
			wantFields: []string{"full_name"},
		},
		{
			name:       "everything missing",
			in:         RegistrationInput{},
			wantFields: []string{"full_name", "email", "course"},
		},
		{
			name:       "email without at sign",
			in:         RegistrationInput{FullName: "Student", Email: "not-an-email", Course: "Go"},
			wantFields: []string{"email"},
		},
		{
			name:       "email without dot",
			in:         RegistrationInput{FullName: "Student", Email: "student@examplecom", Course: "Go"},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitRegistration(ctx, tt.in)
			validationErr := &ValidationError{}
			require.ErrorAs(t, err, &validationErr)
			for _, field := range tt.wantFields {
				assert.Contains(t, validationErr.Fields, field)
			}
		})
	}

	// Nothing was persisted by the failed submissions.
	listed, err := svc.ListRegistrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSubmitRegistrationTrimsAndDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(*repository.NewRegistrationRepository(db))

	created, err := svc.SubmitRegistration(context.Background(), RegistrationInput{
		FullName: "  Student One  ",
		Email:    " student@example.com ",
		Course:   " Go Basics ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Student One", created.FullName)
	assert.Equal(t, "student@example.com", created.Email)
	assert.Equal(t, "Go Basics", created.Course)
	assert.Equal(t, "", created.Phone)
	assert.Equal(t, "", created.Message)
	assert.Equal(t, "pending", created.Status)
}

func TestSubmitInquiryValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(*repository.NewInquiryRepository(db))
	ctx := context.Background()

	_, err := svc.SubmitInquiry(ctx, ContactInput{Name: "Asker", Email: "asker@example.com"})
	validationErr := &ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "message")

	_, err = svc.SubmitInquiry(ctx, ContactInput{Name: "Asker", Email: "not-an-email", Message: "hi"})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
}

func TestGetInquiryNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(*repository.NewInquiryRepository(db))

	_, err := svc.GetInquiry(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHealthCheck(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthService(*repository.NewRegistrationRepository(db))
	require.NoError(t, svc.CheckStorage(context.Background()))

	// A closed database must surface as a storage failure.
	require.NoError(t, db.Close())
	err := svc.CheckStorage(context.Background())
	storageErr := &StorageError{}
	require.ErrorAs(t, err, &storageErr)
}
