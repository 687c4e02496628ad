package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS offices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL UNIQUE,
		address TEXT,
		contact_number VARCHAR(32),
		email VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL UNIQUE,
		chassis_number VARCHAR(64),
		registration_number VARCHAR(64),
		driver_name VARCHAR(255) NOT NULL,
		office_name VARCHAR(255) NOT NULL,
		vehicle_type VARCHAR(100) NOT NULL,
		engine_type VARCHAR(32) NOT NULL,
		wheels INTEGER NOT NULL,
		contact_number VARCHAR(32),
		remarks TEXT,
		latest_test_date TIMESTAMPTZ,
		latest_test_quarter INTEGER,
		latest_test_year INTEGER,
		latest_test_result BOOLEAN,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_office_name ON vehicles (office_name);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_deleted_at ON vehicles (deleted_at);`,
	`CREATE TABLE IF NOT EXISTS emission_tests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		test_date TIMESTAMPTZ NOT NULL,
		quarter INTEGER NOT NULL CHECK (quarter BETWEEN 1 AND 4),
		year INTEGER NOT NULL,
		result BOOLEAN NOT NULL,
		co_level DOUBLE PRECISION,
		hc_level DOUBLE PRECISION,
		opacimeter_result DOUBLE PRECISION,
		technician VARCHAR(255),
		testing_center VARCHAR(255),
		created_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_emission_tests_vehicle_id ON emission_tests (vehicle_id);`,
	// Not unique: the data model allows multiple tests per vehicle/quarter/year.
	`CREATE INDEX IF NOT EXISTS idx_emission_tests_year_quarter ON emission_tests (year, quarter);`,
	`CREATE TABLE IF NOT EXISTS emission_test_schedules (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		year INTEGER NOT NULL,
		quarter INTEGER NOT NULL CHECK (quarter BETWEEN 1 AND 4),
		assigned_personnel VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		conducted_on TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_test_schedules_year_quarter ON emission_test_schedules (year, quarter);`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL UNIQUE,
		full_name VARCHAR(255),
		password_hash TEXT NOT NULL,
		roles TEXT[] NOT NULL DEFAULT '{}',
		is_super_admin BOOLEAN NOT NULL DEFAULT FALSE,
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS email_verifications (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		code VARCHAR(12) NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		consumed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_email_verifications_user_id ON email_verifications (user_id);`,
	`CREATE TABLE IF NOT EXISTS air_quality_violations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL,
		driver_name VARCHAR(255),
		ordinance_level INTEGER NOT NULL DEFAULT 1,
		smoke_belching BOOLEAN NOT NULL DEFAULT TRUE,
		apprehended_at TIMESTAMPTZ NOT NULL,
		location VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		fine_amount DOUBLE PRECISION,
		paid_at TIMESTAMPTZ,
		recorded_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_violations_plate_number ON air_quality_violations (plate_number);`,
	`CREATE INDEX IF NOT EXISTS idx_violations_apprehended_at ON air_quality_violations (apprehended_at);`,
	`CREATE TABLE IF NOT EXISTS planting_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		record_type VARCHAR(20) NOT NULL,
		species VARCHAR(255) NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1,
		location VARCHAR(255) NOT NULL,
		planted_at TIMESTAMPTZ NOT NULL,
		maintained_by VARCHAR(255),
		recorded_by UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	DECLARE
		tbl TEXT;
	BEGIN
		FOREACH tbl IN ARRAY ARRAY['offices', 'vehicles', 'emission_tests', 'emission_test_schedules', 'users', 'air_quality_violations', 'planting_records']
		LOOP
			IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_' || tbl || '_updated_at') THEN
				EXECUTE format('CREATE TRIGGER trg_%I_updated_at BEFORE UPDATE ON %I FOR EACH ROW EXECUTE PROCEDURE set_updated_at()', tbl, tbl);
			END IF;
		END LOOP;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
