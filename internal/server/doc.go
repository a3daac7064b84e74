// Package server provides the HTTP server hosting the read-only API.
//
// # Server Lifecycle
//
// Creation:
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
// The registerHandlerFn callback receives a RouterGroup prefixed with /api/v1.
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete.
//
// # Middleware
//
// Logger Middleware (ginzap.Ginzap):
//   - Logs method, path, query, IP, user-agent, status code and latency
//   - Uses the zap logger named "http"
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// Unknown routes get a 404 JSON error.
//
// # Modes
//
//	┌──────┬─────────────────┐
//	│ Mode │ gin mode        │
//	├──────┼─────────────────┤
//	│ dev  │ gin.DebugMode   │
//	│ prod │ gin.ReleaseMode │
//	└──────┴─────────────────┘
//
// The server only reads the record files. Regions and hosts are registered
// through the interactive CLI.
package server
