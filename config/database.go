package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'USER',
			totp_secret VARCHAR(255),
			totp_enabled BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			doc_type VARCHAR(20) DEFAULT 'DNI',
			dni VARCHAR(30),
			cuit VARCHAR(30),
			gender VARCHAR(30),
			birth_date TIMESTAMP,
			birth_place VARCHAR(255),
			nationality VARCHAR(100),
			occupation VARCHAR(255),
			civil_status VARCHAR(50),
			address VARCHAR(255),
			location VARCHAR(255),
			phone VARCHAR(50),
			email VARCHAR(255),
			family_phone VARCHAR(50),
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS cases (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
			caratula TEXT NOT NULL,
			code VARCHAR(100) DEFAULT '',
			juzgado VARCHAR(255) DEFAULT '',
			description TEXT DEFAULT '',
			area VARCHAR(30) DEFAULT 'CIVIL',
			status VARCHAR(20) DEFAULT 'ACTIVE',
			total_fee NUMERIC(14,2),
			drive_link TEXT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS movements (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			case_id UUID NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			date TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			case_id UUID NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			type VARCHAR(20) NOT NULL,
			date TIMESTAMP NOT NULL,
			is_done BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			case_id UUID NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			description TEXT DEFAULT '',
			type VARCHAR(20) NOT NULL,
			amount NUMERIC(14,2) NOT NULL CHECK (amount >= 0),
			date TIMESTAMP NOT NULL DEFAULT NOW(),
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_client_id ON cases(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cases_area ON cases(area)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_case_id ON movements(case_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_case_id ON events(case_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_pending ON events(date) WHERE is_done = FALSE`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_case_id ON transactions(case_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
