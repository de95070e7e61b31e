// Package config defines the configuration structure of the threadpool command.
//
// Configuration is organized into logical sections (Pool, Server, Workload)
// plus the logging settings. Defaults are declared with `default` struct tags
// and applied by github.com/creasty/defaults; viper overlays a config file,
// THREADPOOL_* environment variables and command line flags.
//
// # Configuration Structure
//
//	Configuration
//	├── Pool           - Worker pool settings
//	├── Server         - HTTP admin server settings
//	├── Workload       - Synthetic workload settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Pool Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ Workers          │ 4       │ Number of pool workers (>= 1)          │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8080    │ HTTP server listen port                │
//	│ ShutdownTimeout  │ 10s     │ Grace period for in-flight requests    │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Workload Configuration
//
//	┌─────────────┬─────────┬─────────────────────────────────────────────┐
//	│ Field       │ Default │ Description                                 │
//	├─────────────┼─────────┼─────────────────────────────────────────────┤
//	│ Jobs        │ 100     │ Number of jobs submitted by "run"           │
//	│ JobDuration │ 10ms    │ Time each job spends working                │
//	│ FailRate    │ 0       │ Probability an attempt of a job fails       │
//	│ PanicRate   │ 0       │ Probability a job panics                    │
//	│ Retries     │ 3       │ Retries of a failed attempt inside the job  │
//	└─────────────┴─────────┴─────────────────────────────────────────────┘
//
// # Sources and Precedence
//
// From lowest to highest:
//
//  1. struct tag defaults
//  2. config file (--config, YAML)
//  3. environment: THREADPOOL_<SECTION>_<KEY>, e.g. THREADPOOL_POOL_WORKERS
//  4. environment named after a flag, e.g. THREADPOOL_WORKERS, synced into
//     unset flags by cobrautil.SyncViperPreRunE
//  5. command line flags set by the user
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Server Workload
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithPool(Pool), WithServer(Server), WithWorkers(int), etc.
//   - ToOption() - Copy a configuration into another one
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Debug Logging
//
// All fields are tagged with `debugmap:"visible"`:
//
//	zap.S().Infow("configuration loaded", "config", helpers.Flatten(cfg.DebugMap()))
package config
