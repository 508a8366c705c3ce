// Package response renders JSON response bodies for plain net/http
// handlers: JSON for arbitrary payloads, Message and Error for the
// {"message": ...} and {"detail": ...} conventions used by the API.
package response
