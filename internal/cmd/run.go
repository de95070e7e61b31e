package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/internal/config"
	"github.com/kubev2v/threadpool/internal/metrics"
	"github.com/kubev2v/threadpool/internal/workload"
	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
	"github.com/kubev2v/threadpool/pkg/threadpool"
)

func newRunCommand(a *app, defaults *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Submit a batch of synthetic jobs, wait for them and print a summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkload(cmd, a.cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("jobs", defaults.Workload.Jobs, "Number of jobs to submit")
	flags.Duration("job-duration", defaults.Workload.JobDuration, "Time each job spends working")
	flags.Float64("fail-rate", defaults.Workload.FailRate, "Probability an attempt of a job fails")
	flags.Float64("panic-rate", defaults.Workload.PanicRate, "Probability a job panics")
	flags.Uint("retries", defaults.Workload.Retries, "Retries of a failed attempt inside a job")

	return cmd
}

func runWorkload(cmd *cobra.Command, cfg *config.Configuration) error {
	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	pool, err := threadpool.New(cfg.Pool.Workers,
		threadpool.WithLogger(zap.L()),
		threadpool.WithObserver(m),
		threadpool.WithPanicHandler(func(err *srvErrors.JobPanicError) {
			zap.S().Named("run").Warnw("job fault isolated", "worker_id", err.WorkerID, "error", err)
		}),
	)
	if err != nil {
		return err
	}
	defer pool.Close()

	runner := workload.NewRunner(pool)
	spec := workload.Spec{
		Count:     cfg.Workload.Jobs,
		Duration:  cfg.Workload.JobDuration,
		FailRate:  cfg.Workload.FailRate,
		PanicRate: cfg.Workload.PanicRate,
		Retries:   cfg.Workload.Retries,
	}

	start := time.Now()
	if _, err := runner.Submit(cmd.Context(), spec); err != nil {
		return err
	}
	pool.Close()

	printSummary(cmd.OutOrStdout(), pool.Stats(), runner.Summary(), time.Since(start))
	return nil
}

func printSummary(w io.Writer, stats threadpool.Stats, summary workload.Summary, elapsed time.Duration) {
	title := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	title.Fprintf(w, "Ran %d jobs on %d workers in %s\n", stats.Submitted, stats.Size, elapsed.Round(time.Millisecond))
	ok.Fprintf(w, "  succeeded: %d\n", summary.Succeeded)
	warn.Fprintf(w, "  retried:   %d\n", summary.Retried)
	bad.Fprintf(w, "  failed:    %d\n", summary.Failed)
	bad.Fprintf(w, "  panicked:  %d\n", stats.Panicked)
	fmt.Fprintf(w, "  workers terminated: %d/%d\n", stats.Terminated, stats.Size)
}
