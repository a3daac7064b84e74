// Package handlers implements the read-only HTTP API of region-wizard.
//
// Handlers delegate to the InventoryService and only deal with parameter
// parsing, error mapping to HTTP status codes and model-to-API conversion.
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
//	│  - Parameter parsing                                            │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion (credentials dropped)                │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                  services.InventoryService                      │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬─────────────────────┬──────────────────────────────────────────┐
//	│ Method │ Endpoint            │ Description                              │
//	├────────┼─────────────────────┼──────────────────────────────────────────┤
//	│ GET    │ /regions            │ Registered regions, without credentials  │
//	│ GET    │ /regions/status     │ Auth status, type and host count         │
//	│ GET    │ /hosts?region=<url> │ Hosts, optionally of one region          │
//	└────────┴─────────────────────┴──────────────────────────────────────────┘
//
// GET /regions/status contacts every region, one after the other, on each
// call. Nothing is cached.
//
// # Error Responses
//
// Errors are returned as:
//
//	{ "error": "region \"https://x\" not found" }
//
//   - 404 Not Found: the region query parameter names an unknown region
//   - 500 Internal Server Error: the record files could not be read
package handlers
