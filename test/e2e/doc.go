/*
Package main provides end-to-end testing for the threadpool command.

# Package Structure

	test/e2e/
	├── main.go          Entry point: flags, config, InfraManager setup, Ginkgo runner
	├── tests.go         Ginkgo test specs (API, fault isolation)
	├── doc.go           This file
	├── infra/
	│   └── infra.go     InfraManager interface, in-process and external implementations
	└── service/
	    └── service.go   PoolSvc: HTTP client for the /api/v1 endpoints

# InfraManager

InfraManager owns the lifecycle of the server under test:

	type InfraManager interface {
	    StartServer() (string, error)
	    StopServer() error
	}

Two implementations:
  - ProcessInfraManager: runs "threadpool serve" inside the test process (default).
  - ExternalInfraManager: no-op, the server is started by someone else.

Selected via the -infra-mode flag ("process" or "external").

# Running

	go run ./test/e2e -infra-mode process -http-port 18080
	go run ./test/e2e -infra-mode external -api-url http://localhost:8080
*/
package main
