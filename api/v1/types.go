package v1

// PoolStatus is the body of GET /pool.
type PoolStatus struct {
	Size       int             `json:"size"`
	Pending    int             `json:"pending"`
	Submitted  int64           `json:"submitted"`
	Completed  int64           `json:"completed"`
	Panicked   int64           `json:"panicked"`
	Busy       int64           `json:"busy"`
	Terminated int64           `json:"terminated"`
	Workload   WorkloadSummary `json:"workload"`
}

type WorkloadSummary struct {
	Submitted int64 `json:"submitted"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Retried   int64 `json:"retried"`
}

// JobsRequest is the body of POST /jobs.
type JobsRequest struct {
	Count     int     `json:"count" binding:"required,min=1,max=10000"`
	Duration  string  `json:"duration"`
	FailRate  float64 `json:"fail_rate" binding:"min=0,max=1"`
	PanicRate float64 `json:"panic_rate" binding:"min=0,max=1"`
	Retries   uint    `json:"retries" binding:"max=10"`
}

// JobsResponse is the body of a 202 answer to POST /jobs.
type JobsResponse struct {
	IDs []string `json:"ids"`
}

// ErrorResponse carries the ids of the jobs accepted before a batch was
// cut short. Those jobs still run.
type ErrorResponse struct {
	Error       string   `json:"error"`
	AcceptedIDs []string `json:"accepted_ids,omitempty"`
}
