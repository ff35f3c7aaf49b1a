package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"go.uber.org/zap"
)

type progressMySQLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProgressMySQLRepository creates a progress repository backed by the progress_records table
func NewProgressMySQLRepository(db *sql.DB, logger *zap.Logger) *progressMySQLRepository {
	return &progressMySQLRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts the record or overwrites the row with the same (topic, week, day).
//
// The row keeps its id on update, so ordering by id preserves insertion order.
func (r *progressMySQLRepository) Upsert(ctx context.Context, record models.ProgressRecord) error {
	query := `
		INSERT INTO progress_records
			(topic, week, day, completion_percentage, time_spent_hours, confidence_level, last_updated, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			completion_percentage = VALUES(completion_percentage),
			time_spent_hours = VALUES(time_spent_hours),
			confidence_level = VALUES(confidence_level),
			last_updated = VALUES(last_updated),
			notes = VALUES(notes)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.Topic,
		record.Week,
		record.Day,
		record.CompletionPercentage,
		record.TimeSpentHours,
		record.ConfidenceLevel,
		record.LastUpdated,
		record.Notes,
	)
	if err != nil {
		r.logger.Error("failed to upsert progress record",
			zap.String("topic", record.Topic),
			zap.Int("week", record.Week),
			zap.Int("day", record.Day),
			zap.Error(err),
		)
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}

	return nil
}

// GetAll retrieves every progress record in insertion order
func (r *progressMySQLRepository) GetAll(ctx context.Context) ([]models.ProgressRecord, error) {
	query := `
		SELECT topic, week, day, completion_percentage, time_spent_hours, confidence_level, last_updated, notes
		FROM progress_records
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query progress records", zap.Error(err))
		return nil, fmt.Errorf("failed to query progress records: %w", err)
	}
	defer rows.Close()

	records := []models.ProgressRecord{}
	for rows.Next() {
		var rec models.ProgressRecord
		var notes sql.NullString
		if err := rows.Scan(
			&rec.Topic,
			&rec.Week,
			&rec.Day,
			&rec.CompletionPercentage,
			&rec.TimeSpentHours,
			&rec.ConfidenceLevel,
			&rec.LastUpdated,
			&notes,
		); err != nil {
			r.logger.Error("failed to scan progress record", zap.Error(err))
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		rec.Notes = notes.String
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
