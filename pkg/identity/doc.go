// Package identity resolves a username from inbound HTTP requests for
// demonstration purposes.
//
// Three schemes are tried in order: a custom username header (X-User-Name
// by default), HTTP Basic credentials, and a Bearer token carrying the
// username in a fixed "user_<name>_..." textual pattern. The first match
// wins; when nothing matches the request is anonymous, represented as the
// absence of a value rather than a sentinel string.
//
// None of the schemes validate anything. This is a deliberately simplified
// stand-in used to demonstrate context propagation through request-scoped
// logging. It must not be used as, or mistaken for, real authentication.
package identity
