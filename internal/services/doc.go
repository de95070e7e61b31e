// Package services implements the business logic layer of the threadpool
// command.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	JobService ──► workload.Runner ──► threadpool.Pool
//	    │
//	    └────────► threadpool.Pool (Stats)
//
// # JobService
//
// JobService turns workload specs into jobs on the shared pool and reports
// the pool counters together with the workload outcome. Submission returns as
// soon as the jobs are queued; their outcome shows up later in Status.
//
// Usage:
//
//	jobSrv := services.NewJobService(pool, workload.NewRunner(pool))
//	ids, err := jobSrv.Submit(ctx, workload.Spec{Count: 10, Duration: time.Second})
//	stats, summary := jobSrv.Status()
package services
