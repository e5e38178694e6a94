package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// Keep this in sync with migrations: when adding a column or table, add a
// migration in migrations.go and update SchemaSQL here.
const SchemaSQL = `
-- Numbers handed out by 'trid generate --unique'
CREATE TABLE IF NOT EXISTS issued_numbers (
	number TEXT PRIMARY KEY CHECK (length(number) = 11),
	batch_id TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_issued_numbers_batch ON issued_numbers(batch_id);
CREATE INDEX IF NOT EXISTS idx_issued_numbers_created ON issued_numbers(created_at);
`

// InitSchema creates the schema on a fresh database and runs pending
// migrations on an existing one.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(database)
	}

	// Fresh install - create modern schema directly and mark every migration applied
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if _, err := database.Exec(schemaVersionSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", latestVersion()); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema. Tests use it so their
// tables can't drift from production.
func GetSchemaSQL() string {
	return SchemaSQL
}
