// Package assessmentrepository reads assessment oracles from PostgreSQL
package assessmentrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

var _ secondary.AssessmentRepository = (*AssessmentRepository)(nil)

// AssessmentRepository implements the AssessmentRepository interface with PostgreSQL
type AssessmentRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewAssessmentRepository creates a new PostgreSQL assessment repository
func NewAssessmentRepository(db *sqlx.DB, schema string, logger primary.Logger) *AssessmentRepository {
	if schema == "" {
		schema = "public"
	}
	return &AssessmentRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// GetAssessment loads an assessment and its test cases in declared order
func (r *AssessmentRepository) GetAssessment(ctx context.Context, assessmentID string) (*domain.Assessment, error) {
	query := fmt.Sprintf(`
		SELECT id, title, expected_output
		FROM %s.assessments
		WHERE id = $1
	`, pq.QuoteIdentifier(r.schema))

	var assessment domain.Assessment
	if err := r.db.GetContext(ctx, &assessment, query, assessmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", errs.ErrAssessmentNotFound, assessmentID)
		}
		r.logger.Error("Failed to get assessment", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	casesQuery := fmt.Sprintf(`
		SELECT input, expected_output, description
		FROM %s.assessment_test_cases
		WHERE assessment_id = $1
		ORDER BY position
	`, pq.QuoteIdentifier(r.schema))

	var testCases []domain.TestCase
	if err := r.db.SelectContext(ctx, &testCases, casesQuery, assessmentID); err != nil {
		r.logger.Error("Failed to get assessment test cases", "assessmentId", assessmentID, "error", err)
		return nil, fmt.Errorf("failed to get assessment test cases: %w", err)
	}
	assessment.TestCases = testCases

	return &assessment, nil
}
