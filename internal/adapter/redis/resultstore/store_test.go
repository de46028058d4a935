package resultstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"gitlab.com/learnhub-grader.net/internal/adapter/logging"
	"gitlab.com/learnhub-grader.net/internal/adapter/redis/resultstore"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

func newStore(t *testing.T, ttl time.Duration) (*resultstore.ResultRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return resultstore.NewResultRepository(client, ttl, logging.NewNopLogger()), mr
}

func TestSaveAndGetResult(t *testing.T) {
	store, _ := newStore(t, time.Minute)
	ctx := context.Background()

	resp := &domain.SubmissionResponse{
		Success: true,
		Result: &domain.SubmissionResult{
			ID:       "abc",
			Status:   "Accepted",
			Output:   "héllo\n",
			Score:    100,
			Feedback: "Correct!",
			TestResults: []domain.TestCaseResult{
				{TestCase: domain.TestCase{Input: "1", ExpectedOutput: "héllo"}, Passed: true, ActualOutput: "héllo\n"},
			},
		},
	}
	if err := store.SaveResult(ctx, "abc", resp); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.GetResult(ctx, "abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Success || got.Result.Score != 100 || got.Result.Output != "héllo\n" {
		t.Fatalf("unexpected result %+v", got.Result)
	}
	if len(got.Result.TestResults) != 1 || !got.Result.TestResults[0].Passed {
		t.Fatalf("test results lost: %+v", got.Result.TestResults)
	}
}

func TestGetResultMissing(t *testing.T) {
	store, _ := newStore(t, time.Minute)
	if _, err := store.GetResult(context.Background(), "nope"); !errors.Is(err, errs.ErrResultNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResultExpires(t *testing.T) {
	store, mr := newStore(t, 10*time.Second)
	ctx := context.Background()

	if err := store.SaveResult(ctx, "ttl", &domain.SubmissionResponse{Success: false, Error: "invalid request"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if ttl := mr.TTL("submission:result:ttl"); ttl != 10*time.Second {
		t.Fatalf("unexpected ttl %s", ttl)
	}
	mr.FastForward(11 * time.Second)
	if _, err := store.GetResult(ctx, "ttl"); !errors.Is(err, errs.ErrResultNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}
