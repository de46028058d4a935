package resultstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/ports/secondary"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

const resultKeyPrefix = "submission:result:"

var _ secondary.ResultRepository = (*ResultRepository)(nil)

// ResultRepository implements the ResultRepository interface with Redis
type ResultRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

// NewResultRepository creates a new Redis result repository. Entries expire after ttl.
func NewResultRepository(redisClient *redis.Client, ttl time.Duration, logger primary.Logger) *ResultRepository {
	return &ResultRepository{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

func resultKey(submissionID string) string {
	return fmt.Sprintf("%s%s", resultKeyPrefix, submissionID)
}

// SaveResult saves a submission response to Redis
func (r *ResultRepository) SaveResult(ctx context.Context, submissionID string, response *domain.SubmissionResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		r.logger.Error("Failed to marshal submission result", "error", err)
		return fmt.Errorf("failed to marshal submission result: %w", err)
	}

	if err := r.redisClient.Set(ctx, resultKey(submissionID), payload, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save submission result", "submissionId", submissionID, "error", err)
		return fmt.Errorf("failed to save submission result: %w", err)
	}
	return nil
}

// GetResult retrieves a submission response from Redis by submission ID
func (r *ResultRepository) GetResult(ctx context.Context, submissionID string) (*domain.SubmissionResponse, error) {
	payload, err := r.redisClient.Get(ctx, resultKey(submissionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrResultNotFound
		}
		r.logger.Error("Failed to get submission result", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission result: %w", err)
	}

	var response domain.SubmissionResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		r.logger.Error("Failed to unmarshal submission result", "error", err)
		return nil, fmt.Errorf("failed to unmarshal submission result: %w", err)
	}
	return &response, nil
}
