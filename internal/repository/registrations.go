package repository

import (
	"context"
	"time"

	"github.com/rjharshittiwari/A2P-website/internal/entity"
)

// CreateRegistration inserts a registration and fills in its generated ID.
// created_at is written by the application so that newest-first ordering
// stays stable for submissions landing within the same second.
func (r *RegistrationRepository) CreateRegistration(ctx context.Context, reg *entity.Registration) (*entity.Registration, error) {
	if reg.Status == "" {
		reg.Status = "pending"
	}
	reg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO registrations (full_name, email, phone, course, message, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		reg.FullName, reg.Email, reg.Phone, reg.Course, reg.Message, reg.Status, reg.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	reg.ID = int(id)
	return reg, nil
}

// ListRegistrations returns every registration, newest first.
func (r *RegistrationRepository) ListRegistrations(ctx context.Context) ([]entity.Registration, error) {
	query := `SELECT id, full_name, email, phone, course, message, status, created_at FROM registrations ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := []entity.Registration{}
	for rows.Next() {
		reg := entity.Registration{}
		err := rows.Scan(&reg.ID, &reg.FullName, &reg.Email, &reg.Phone, &reg.Course, &reg.Message, &reg.Status, &reg.CreatedAt)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}

	return registrations, rows.Err()
}

func (r *RegistrationRepository) CountRegistrations(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count)
	return count, err
}
