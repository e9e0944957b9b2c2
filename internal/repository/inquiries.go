package repository

import (
	"context"
	"time"

	"github.com/rjharshittiwari/A2P-website/internal/entity"
)

// CreateInquiry inserts a contact inquiry and fills in its generated ID.
func (r *InquiryRepository) CreateInquiry(ctx context.Context, inquiry *entity.ContactInquiry) (*entity.ContactInquiry, error) {
	if inquiry.Status == "" {
		inquiry.Status = "new"
	}
	inquiry.CreatedAt = time.Now().UTC()

	query := `INSERT INTO contact_inquiries (name, email, phone, subject, message, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Subject, inquiry.Message, inquiry.Status, inquiry.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	inquiry.ID = int(id)
	return inquiry, nil
}

// GetInquiryByID returns one inquiry, or sql.ErrNoRows when the ID is unknown.
func (r *InquiryRepository) GetInquiryByID(ctx context.Context, id int) (*entity.ContactInquiry, error) {
	inquiry := entity.ContactInquiry{}
	query := `SELECT id, name, email, phone, subject, message, status, created_at FROM contact_inquiries WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Subject, &inquiry.Message, &inquiry.Status, &inquiry.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &inquiry, nil
}

// ListInquiries returns every contact inquiry, newest first.
func (r *InquiryRepository) ListInquiries(ctx context.Context) ([]entity.ContactInquiry, error) {
	query := `SELECT id, name, email, phone, subject, message, status, created_at FROM contact_inquiries ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []entity.ContactInquiry{}
	for rows.Next() {
		inquiry := entity.ContactInquiry{}
		err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Subject, &inquiry.Message, &inquiry.Status, &inquiry.CreatedAt)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, rows.Err()
}
