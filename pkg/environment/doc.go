// Package environment carries the application environment (development,
// staging, production) through request contexts.
//
// It provides WithContext/FromContext helpers, an HTTP middleware that tags
// every request, and a LoggerExtractor that surfaces the environment in
// structured log records.
package environment
