// Package requestid assigns a correlation identifier to every inbound HTTP
// request and propagates it through the request context.
//
// The Middleware reuses a valid client-supplied "X-Request-ID" header or
// generates a UUIDv4, stores the chosen ID in the context, and echoes it in
// the response. WithContext/FromContext move the ID in and out of a
// context.Context, and LoggerExtractor surfaces it in structured log
// records so every event of one request carries the same request_id.
//
// The package never returns errors; invalid inbound IDs are silently
// replaced.
package requestid
