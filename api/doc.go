// Package api defines the demo HTTP surface: a handful of endpoints that
// exercise request-scoped structured logging, assembled on a chi router
// behind the requestid, recovery, and requestlog middleware stack.
package api
