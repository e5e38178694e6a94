// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/ssg/trid/internal/ports/secondary"
)

// LedgerRepository implements secondary.LedgerRepository with SQLite.
type LedgerRepository struct {
	db *sql.DB
}

// NewLedgerRepository creates a new SQLite ledger repository.
func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const insertIssuedSQL = "INSERT INTO issued_numbers (number, batch_id) VALUES (?, ?)"

// Record persists an issued number.
func (r *LedgerRepository) Record(ctx context.Context, record *secondary.IssuedRecord) error {
	_, err := r.db.ExecContext(ctx, insertIssuedSQL, record.Number, record.BatchID)
	return recordError(record, err)
}

// RecordBatch persists records in a single transaction.
func (r *LedgerRepository) RecordBatch(ctx context.Context, records []*secondary.IssuedRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, record := range records {
		if _, err := tx.ExecContext(ctx, insertIssuedSQL, record.Number, record.BatchID); err != nil {
			tx.Rollback()
			return recordError(record, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit issued numbers: %w", err)
	}
	return nil
}

func recordError(record *secondary.IssuedRecord, err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
		return fmt.Errorf("%s: %w", record.Number, secondary.ErrAlreadyIssued)
	}
	return fmt.Errorf("failed to record issued number: %w", err)
}

// Exists reports whether number has been issued.
func (r *LedgerRepository) Exists(ctx context.Context, number string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM issued_numbers WHERE number = ?",
		number,
	).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up issued number: %w", err)
	}
	return true, nil
}

// List retrieves issued numbers matching the filters, newest first.
func (r *LedgerRepository) List(ctx context.Context, filters secondary.IssuedFilters) ([]*secondary.IssuedRecord, error) {
	query := "SELECT number, batch_id, created_at FROM issued_numbers WHERE 1=1"
	args := []any{}

	if filters.BatchID != "" {
		query += " AND batch_id = ?"
		args = append(args, filters.BatchID)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list issued numbers: %w", err)
	}
	defer rows.Close()

	var records []*secondary.IssuedRecord
	for rows.Next() {
		record := &secondary.IssuedRecord{}
		if err := rows.Scan(&record.Number, &record.BatchID, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan issued number: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the number of issued numbers.
func (r *LedgerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM issued_numbers").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count issued numbers: %w", err)
	}
	return n, nil
}

// Clear deletes every issued number.
func (r *LedgerRepository) Clear(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM issued_numbers")
	if err != nil {
		return 0, fmt.Errorf("failed to clear issued numbers: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(n), nil
}

var _ secondary.LedgerRepository = (*LedgerRepository)(nil)
