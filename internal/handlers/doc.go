// Package handlers implements the HTTP API layer of the threadpool command.
//
// Handlers delegate to the services layer and focus on request validation,
// response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request binding and validation                               │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion (api/v1)                             │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer (JobService)                │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ GET    │ /pool    │ Pool counters and workload summary          │
//	│ POST   │ /jobs    │ Submit a batch of synthetic jobs            │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// # Error Mapping
//
//	┌─────────────────────────────┬──────────────────────────────────┐
//	│ Error                       │ HTTP Status                      │
//	├─────────────────────────────┼──────────────────────────────────┤
//	│ Invalid body or spec        │ 400 Bad Request                  │
//	│ PoolClosedError             │ 503 Service Unavailable          │
//	│ Other errors                │ 500 Internal Server Error        │
//	└─────────────────────────────┴──────────────────────────────────┘
//
// Jobs are accepted with 202: the response carries their ids, not their
// outcome, since the pool does not report job results.
package handlers
