package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/internal/config"
	"github.com/kubev2v/threadpool/internal/handlers"
	"github.com/kubev2v/threadpool/internal/metrics"
	"github.com/kubev2v/threadpool/internal/server"
	"github.com/kubev2v/threadpool/internal/services"
	"github.com/kubev2v/threadpool/internal/workload"
	"github.com/kubev2v/threadpool/pkg/threadpool"
)

func newServeCommand(a *app, defaults *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pool behind an HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), a.cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("http-port", defaults.Server.HTTPPort, "HTTP server listen port")
	flags.String("server-mode", defaults.Server.ServerMode, "Server mode: 'dev' or 'prod'")
	flags.Duration("shutdown-timeout", defaults.Server.ShutdownTimeout, "Grace period for in-flight requests")

	return cmd
}

func serve(ctx context.Context, cfg *config.Configuration) error {
	log := zap.S().Named("serve")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	pool, err := threadpool.New(cfg.Pool.Workers, threadpool.WithLogger(zap.L()), threadpool.WithObserver(m))
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := metrics.RegisterQueueGauge(reg, pool); err != nil {
		return err
	}

	h := handlers.New(services.NewJobService(pool, workload.NewRunner(pool)))
	srv := server.NewServer(cfg.Server, reg, func(router *gin.RouterGroup) {
		handlers.RegisterHandlers(router, h)
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Errorw("failed to stop server", "error", err)
	}

	log.Infow("waiting for queued jobs", "pending", pool.Pending())
	pool.Close()
	log.Info("pool stopped")
	return nil
}
