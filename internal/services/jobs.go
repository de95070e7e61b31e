package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/internal/workload"
	"github.com/kubev2v/threadpool/pkg/threadpool"
)

// JobService submits synthetic workloads to the pool and reports its state.
type JobService struct {
	pool   *threadpool.Pool
	runner *workload.Runner
}

func NewJobService(pool *threadpool.Pool, runner *workload.Runner) *JobService {
	return &JobService{pool: pool, runner: runner}
}

func (s *JobService) Submit(ctx context.Context, spec workload.Spec) ([]uuid.UUID, error) {
	ids, err := s.runner.Submit(ctx, spec)
	if err != nil {
		zap.S().Named("job_service").Errorw("failed to submit workload", "accepted", len(ids), "error", err)
		return ids, err
	}
	zap.S().Named("job_service").Infow("workload submitted", "count", len(ids), "duration", spec.Duration)
	return ids, nil
}

func (s *JobService) Status() (threadpool.Stats, workload.Summary) {
	return s.pool.Stats(), s.runner.Summary()
}
