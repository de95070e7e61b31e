package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kubev2v/threadpool/internal/workload"
	"github.com/kubev2v/threadpool/pkg/threadpool"
)

// NewPoolStatus converts the pool and workload counters to the API status.
func NewPoolStatus(stats threadpool.Stats, summary workload.Summary) PoolStatus {
	return PoolStatus{
		Size:       stats.Size,
		Pending:    stats.Pending,
		Submitted:  stats.Submitted,
		Completed:  stats.Completed,
		Panicked:   stats.Panicked,
		Busy:       stats.Busy,
		Terminated: stats.Terminated,
		Workload: WorkloadSummary{
			Submitted: summary.Submitted,
			Succeeded: summary.Succeeded,
			Failed:    summary.Failed,
			Retried:   summary.Retried,
		},
	}
}

// ToSpec converts the request to a workload spec. An empty duration means
// the job does not sleep.
func (r JobsRequest) ToSpec() (workload.Spec, error) {
	spec := workload.Spec{
		Count:     r.Count,
		FailRate:  r.FailRate,
		PanicRate: r.PanicRate,
		Retries:   r.Retries,
	}
	if r.Duration != "" {
		d, err := time.ParseDuration(r.Duration)
		if err != nil {
			return workload.Spec{}, fmt.Errorf("invalid duration %q: %w", r.Duration, err)
		}
		spec.Duration = d
	}
	return spec, spec.Validate()
}

func NewJobsResponse(ids []uuid.UUID) JobsResponse {
	return JobsResponse{IDs: idStrings(ids)}
}

// NewPartialErrorResponse reports a batch that stopped after ids were accepted.
func NewPartialErrorResponse(msg string, ids []uuid.UUID) ErrorResponse {
	resp := ErrorResponse{Error: msg}
	if len(ids) > 0 {
		resp.AcceptedIDs = idStrings(ids)
	}
	return resp
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
