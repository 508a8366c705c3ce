// Package requestlog binds a request-scoped structured logger to every
// inbound HTTP request.
//
// The middleware resolves the caller's identity (see the identity
// package), derives a logger handle pre-populated with
//
//	user (when present), route, method, request_id, user_agent
//
// and stores it in the request context. It emits exactly one
// "request started" event before invoking the next handler and one
// "request completed" event (status_code, duration) after it returns. A
// panicking handler instead produces a "request failed" event with the
// error, its type, and the duration; the panic is then re-raised so the
// outer recovery layer renders the 5xx response.
//
// Handlers retrieve the bound handle with FromRequest (or FromContext) and
// emit their own events through it, optionally adding per-call fields:
//
//	func hello(w http.ResponseWriter, r *http.Request) {
//		log := requestlog.FromRequest(r)
//		log.InfoContext(r.Context(), "hello endpoint accessed",
//			slog.String("target_name", name))
//	}
//
// Each request owns its handle exclusively; events of one request are
// strictly ordered, and no ordering exists across requests.
package requestlog
