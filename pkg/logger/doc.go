// Package logger builds the process-wide structured logger for the service.
//
// It is a thin layer over log/slog: a single factory, New, assembles a
// handler from functional options and renders records with the wire schema
// used by the rest of the system:
//
//	{"event": ..., "level": ..., "logger": ..., "timestamp": ..., ...}
//
// The standard msg/time keys are renamed, level names are lowercased
// (debug, info, warning, error), and timestamps keep sub-second precision.
//
// The configured handler is wrapped so that ContextExtractor callbacks run
// on every record, injecting request-scoped attributes such as the request
// id or the authenticated user straight from the log call's context.
//
// Binding is non-destructive: deriving a handle with With returns a new
// logger and leaves the original untouched, and per-call attributes shadow
// bound ones for any consumer that decodes the JSON record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "reqlog-demo"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Attr helpers (Error, User, RequestID, StatusCode, ...) keep field naming
// consistent across packages.
package logger
