package migrations

import "database/sql"

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			name TEXT,
			google_id TEXT UNIQUE,
			profile_picture TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateRegistrations creates the registrations table if it does not exist.
func AutoMigrateRegistrations(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS registrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			course TEXT,
			message TEXT,
			status TEXT DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateContactInquiries creates the contact_inquiries table if it does not exist.
func AutoMigrateContactInquiries(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS contact_inquiries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			subject TEXT,
			message TEXT NOT NULL,
			status TEXT DEFAULT 'new',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := db.Exec(query)
	return err
}

// AutoMigrateAll creates every table the service needs.
func AutoMigrateAll(db *sql.DB) error {
	for _, migrate := range []func(*sql.DB) error{
		AutoMigrateUsers,
		AutoMigrateRegistrations,
		AutoMigrateContactInquiries,
	} {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}
