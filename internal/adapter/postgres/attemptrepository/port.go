// Package attemptrepository persists graded attempts in PostgreSQL
package attemptrepository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/domain"
)

const defaultAttemptLimit = 50

var _ secondary.AttemptRepository = (*AttemptRepository)(nil)

// AttemptRepository implements the AttemptRepository interface with PostgreSQL
type AttemptRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	table  string
}

// NewAttemptRepository creates a new PostgreSQL attempt repository
func NewAttemptRepository(db *sqlx.DB, schema string, logger primary.Logger) *AttemptRepository {
	if schema == "" {
		schema = "public"
	}
	return &AttemptRepository{
		db:     db,
		logger: logger,
		table:  pq.QuoteIdentifier(schema) + ".grading_attempts",
	}
}

// SaveAttempt inserts a graded attempt
func (r *AttemptRepository) SaveAttempt(ctx context.Context, attempt *domain.Attempt) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, submission_id, user_id, assessment_id, language,
			score, status, passed_cases, total_cases, created_at
		) VALUES (
			:id, :submission_id, :user_id, :assessment_id, :language,
			:score, :status, :passed_cases, :total_cases, :created_at
		)
	`, r.table)

	if _, err := r.db.NamedExecContext(ctx, query, attempt); err != nil {
		r.logger.Error("Failed to save attempt", "attemptId", attempt.ID, "error", err)
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

// GetAttemptsByUser returns a user's most recent attempts, newest first
func (r *AttemptRepository) GetAttemptsByUser(ctx context.Context, userID string, limit int) ([]*domain.Attempt, error) {
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	query := fmt.Sprintf(`
		SELECT
			id, submission_id, user_id, assessment_id, language,
			score, status, passed_cases, total_cases, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, r.table)

	var attempts []*domain.Attempt
	if err := r.db.SelectContext(ctx, &attempts, query, userID, limit); err != nil {
		r.logger.Error("Failed to get attempts", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	return attempts, nil
}
