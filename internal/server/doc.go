// Package server provides the HTTP admin server of the threadpool command.
//
// The server uses the Gin web framework. It exposes the pool API under
// /api/v1, Prometheus metrics under /metrics and a liveness probe.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap.Ginzap, "http" logger)                  │  │
//	│  │  Recovery (ginzap.RecoveryWithZap, stack traces)        │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  GET /health      │ 200 while the process serves              │
//	│  GET /metrics     │ Prometheus exposition                     │
//	│  /api/v1/*        │ Handlers (registered via callback)        │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development mode ("dev") runs Gin in debug mode, production mode ("prod")
// runs it in release mode.
//
// # Server Lifecycle
//
//	srv := server.NewServer(cfg.Server, registry, func(router *gin.RouterGroup) {
//	    handlers.RegisterHandlers(router, h)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests.
package server
