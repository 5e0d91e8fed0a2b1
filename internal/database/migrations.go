package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createVenuesTable,
		createCourtsTable,
		createCourtMappingsTable,
		createBookingsTable,
		createEquipmentTable,
		createEquipmentRentalsTable,
		createMaintenancesTable,
		createNewsTable,
		createNotificationsTable,
		createBookingLookupIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    user_id SERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(64) NOT NULL,
    full_name VARCHAR(255) NOT NULL,
    phone VARCHAR(20),
    role VARCHAR(20) NOT NULL DEFAULT 'student',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (role IN ('student', 'staff', 'manager', 'admin'))
);`

const createVenuesTable = `
CREATE TABLE IF NOT EXISTS venues (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    location TEXT,
    description TEXT,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('active', 'inactive'))
);`

const createCourtsTable = `
CREATE TABLE IF NOT EXISTS courts (
    id SERIAL PRIMARY KEY,
    venue_id INTEGER NOT NULL REFERENCES venues(id),
    name VARCHAR(255) NOT NULL,
    code VARCHAR(50) UNIQUE NOT NULL,
    type VARCHAR(50) NOT NULL,
    hourly_rate BIGINT NOT NULL DEFAULT 0,
    status VARCHAR(20) NOT NULL DEFAULT 'available',
    description TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('available', 'booked', 'maintenance'))
);`

const createCourtMappingsTable = `
CREATE TABLE IF NOT EXISTS court_mappings (
    id SERIAL PRIMARY KEY,
    parent_court_id INTEGER NOT NULL REFERENCES courts(id),
    child_court_id INTEGER NOT NULL REFERENCES courts(id),
    position VARCHAR(50),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE(parent_court_id, child_court_id),
    UNIQUE(child_court_id),
    CHECK (parent_court_id <> child_court_id)
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    court_id INTEGER NOT NULL REFERENCES courts(id),
    user_id INTEGER REFERENCES users(user_id),
    date VARCHAR(10) NOT NULL,
    start_time VARCHAR(5) NOT NULL,
    end_time VARCHAR(5) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
    payment_status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
    total_amount BIGINT NOT NULL DEFAULT 0,
    renter_name VARCHAR(255) NOT NULL,
    renter_email VARCHAR(255) NOT NULL,
    renter_phone VARCHAR(20) NOT NULL,
    notes TEXT,
    booking_code VARCHAR(20) UNIQUE NOT NULL,
    payment_id VARCHAR(255),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
    CHECK (payment_status IN ('unpaid', 'paid', 'refunded'))
);`

const createEquipmentTable = `
CREATE TABLE IF NOT EXISTS equipment (
    id SERIAL PRIMARY KEY,
    venue_id INTEGER NOT NULL REFERENCES venues(id),
    name VARCHAR(255) NOT NULL,
    code VARCHAR(50) UNIQUE NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 0,
    available_quantity INTEGER NOT NULL DEFAULT 0,
    rental_fee BIGINT NOT NULL DEFAULT 0,
    status VARCHAR(20) NOT NULL DEFAULT 'available',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (available_quantity >= 0),
    CHECK (available_quantity <= quantity)
);`

const createEquipmentRentalsTable = `
CREATE TABLE IF NOT EXISTS equipment_rentals (
    id SERIAL PRIMARY KEY,
    equipment_id INTEGER NOT NULL REFERENCES equipment(id),
    booking_id INTEGER REFERENCES bookings(id),
    quantity INTEGER NOT NULL,
    start_date VARCHAR(10) NOT NULL,
    end_date VARCHAR(10) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    total_fee BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (quantity > 0),
    CHECK (status IN ('active', 'returned', 'overdue'))
);`

const createMaintenancesTable = `
CREATE TABLE IF NOT EXISTS maintenances (
    id SERIAL PRIMARY KEY,
    court_id INTEGER NOT NULL REFERENCES courts(id),
    title VARCHAR(255) NOT NULL,
    description TEXT,
    scheduled_date VARCHAR(10) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (status IN ('scheduled', 'in_progress', 'completed', 'cancelled'))
);`

const createNewsTable = `
CREATE TABLE IF NOT EXISTS news (
    id SERIAL PRIMARY KEY,
    title VARCHAR(500) NOT NULL,
    content TEXT NOT NULL,
    category VARCHAR(50) NOT NULL DEFAULT 'general',
    published BOOLEAN NOT NULL DEFAULT FALSE,
    view_count BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createNotificationsTable = `
CREATE TABLE IF NOT EXISTS notifications (
    id SERIAL PRIMARY KEY,
    user_id INTEGER REFERENCES users(user_id),
    type VARCHAR(50) NOT NULL,
    title VARCHAR(255) NOT NULL,
    message TEXT NOT NULL,
    read BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

// The conflict check locks candidate rows by (court_id, date); the index
// keeps that scan narrow.
const createBookingLookupIndex = `
CREATE INDEX IF NOT EXISTS bookings_court_date_idx
ON bookings (court_id, date);`
