package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rjharshittiwari/A2P-website/internal/entity"

	"github.com/mattn/go-sqlite3"
)

// UpsertUser inserts the user, or when the email or google_id already
// exists, refreshes the existing row.
func (r *UserRepository) UpsertUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.CreatedAt = time.Now().UTC()

	query := `INSERT INTO users (email, name, google_id, profile_picture, created_at) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Email, user.Name, user.GoogleID, user.ProfilePicture, user.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
			return nil, err
		}

		update := `UPDATE users SET name = ?, profile_picture = ? WHERE google_id = ?`
		updateRes, err := r.db.ExecContext(ctx, update, user.Name, user.ProfilePicture, user.GoogleID)
		if err != nil {
			return nil, err
		}

		if n, err := updateRes.RowsAffected(); err != nil {
			return nil, err
		} else if n == 0 {
			// The insert conflicted on email, not google_id: the account
			// re-authenticated under a new Google identity. Claim the row
			// by email so the login still completes.
			reclaim := `UPDATE users SET name = ?, google_id = ?, profile_picture = ? WHERE email = ?`
			if _, err := r.db.ExecContext(ctx, reclaim, user.Name, user.GoogleID, user.ProfilePicture, user.Email); err != nil {
				return nil, err
			}
		}
		return r.GetUserByGoogleID(ctx, user.GoogleID)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	user := entity.User{}
	query := `SELECT id, email, name, google_id, profile_picture, created_at FROM users WHERE google_id = ?`
	err := r.db.QueryRowContext(ctx, query, googleID).Scan(
		&user.ID, &user.Email, &user.Name, &user.GoogleID, &user.ProfilePicture, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
